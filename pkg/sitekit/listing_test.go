package sitekit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
	"github.com/jhairstudio/jhair-server/pkg/sitekit"
)

// recordingLister captures the last query and returns a fixed page.
type recordingLister struct {
	lastQuery sitekit.BlogQuery
	result    *sitekit.BlogList
}

func (l *recordingLister) Blogs(ctx context.Context, q sitekit.BlogQuery) (*sitekit.BlogList, error) {
	l.lastQuery = q
	return l.result, nil
}

func fixedPage() *sitekit.BlogList {
	return &sitekit.BlogList{
		Posts: []sitekit.BlogPost{
			{ID: 1, Slug: "summer-balayage", Title: "Summer Balayage", Description: "Sun kissed color"},
			{ID: 2, Slug: "curl-care", Title: "Curl Care", Description: "Routines for curls"},
		},
		Meta: &pagination.Meta{Page: 2, Limit: 6, Total: 13, TotalPages: 3},
	}
}

func TestListing_FetchSendsStateAndLocale(t *testing.T) {
	lister := &recordingLister{result: fixedPage()}
	store := sitekit.NewLangStore(&memoryStorage{value: "es"})
	listing := sitekit.NewListing(lister, store)

	listing.SetTags("color")
	listing.SetSearch("  balayage  ")
	listing.SetPage(2)

	_, err := listing.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, locale.ES, lister.lastQuery.Lang)
	assert.Equal(t, []string{"color"}, lister.lastQuery.Tags)
	assert.Equal(t, "balayage", lister.lastQuery.Search, "search text is trimmed")
	assert.Equal(t, 2, lister.lastQuery.Page)
}

/*
TestListing_FilterChangesResetPage verifies that changing the tag selection
or the search text always sends the visitor back to page 1.
*/
func TestListing_FilterChangesResetPage(t *testing.T) {
	lister := &recordingLister{result: fixedPage()}
	listing := sitekit.NewListing(lister, sitekit.NewLangStore(nil))

	listing.SetPage(4)
	listing.SetTags("care")
	_, err := listing.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lister.lastQuery.Page)

	listing.SetPage(4)
	listing.SetSearch("curls")
	_, err = listing.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lister.lastQuery.Page)
}

func TestListing_ClearQuery(t *testing.T) {
	lister := &recordingLister{result: fixedPage()}
	listing := sitekit.NewListing(lister, sitekit.NewLangStore(nil))

	listing.SetTags("color", "care")
	listing.SetSearch("balayage")
	listing.SetPage(3)

	listing.ClearQuery()
	_, err := listing.Fetch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, lister.lastQuery.Tags)
	assert.Empty(t, lister.lastQuery.Search)
	assert.Equal(t, 1, lister.lastQuery.Page)
}

func TestListing_Window(t *testing.T) {
	lister := &recordingLister{result: fixedPage()}
	listing := sitekit.NewListing(lister, sitekit.NewLangStore(nil))

	assert.Nil(t, listing.Window(), "no window before the first fetch")

	_, err := listing.Fetch(context.Background())
	require.NoError(t, err)

	window := listing.Window()
	require.NotEmpty(t, window)
	assert.Equal(t, 1, window[0].Page)
	assert.Equal(t, 3, window[len(window)-1].Page)
}

/*
TestListing_FilterVisible covers the page-local quick filter: it narrows
only the posts already on screen and never triggers a fetch.
*/
func TestListing_FilterVisible(t *testing.T) {
	lister := &recordingLister{result: fixedPage()}
	listing := sitekit.NewListing(lister, sitekit.NewLangStore(nil))

	_, err := listing.Fetch(context.Background())
	require.NoError(t, err)

	matched := listing.FilterVisible("CURL")
	require.Len(t, matched, 1)
	assert.Equal(t, "curl-care", matched[0].Slug)

	assert.Len(t, listing.FilterVisible("  "), 2, "blank filter shows everything")
	assert.Empty(t, listing.FilterVisible("wedding"))
}
