// Copyright (c) 2026 Jhair Studio. All rights reserved.

package sitekit

import (
	"context"
	"strings"
	"sync"

	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

// BlogLister is the slice of [Client] the listing needs.
type BlogLister interface {
	Blogs(ctx context.Context, q BlogQuery) (*BlogList, error)
}

// Listing holds the query state of the blog index page: selected tags,
// search text, and the current page. Changing a filter resets to page 1.
//
// Tag filtering and search are executed server side, so result counts and
// page numbers always describe the full filtered set.
type Listing struct {
	lister BlogLister
	store  *LangStore

	mu      sync.Mutex
	tags    []string
	search  string
	page    int
	current *BlogList
}

// NewListing returns a Listing starting at page 1 with no filters.
func NewListing(lister BlogLister, store *LangStore) *Listing {
	return &Listing{
		lister: lister,
		store:  store,
		page:   1,
	}
}

// SetTags replaces the selected tag slugs and resets to the first page.
func (listing *Listing) SetTags(slugs ...string) {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	listing.tags = append([]string(nil), slugs...)
	listing.page = 1
}

// SetSearch replaces the search text and resets to the first page.
func (listing *Listing) SetSearch(text string) {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	listing.search = strings.TrimSpace(text)
	listing.page = 1
}

// SetPage moves to the given page. Values below 1 clamp to 1.
func (listing *Listing) SetPage(page int) {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	if page < 1 {
		page = 1
	}
	listing.page = page
}

// ClearQuery drops all filters and returns to the first page.
func (listing *Listing) ClearQuery() {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	listing.tags = nil
	listing.search = ""
	listing.page = 1
}

// Fetch loads the page matching the current query state in the active
// locale and remembers it for Window and Posts.
func (listing *Listing) Fetch(ctx context.Context) (*BlogList, error) {
	listing.mu.Lock()
	query := BlogQuery{
		Lang:   listing.store.Current(),
		Tags:   append([]string(nil), listing.tags...),
		Search: listing.search,
		Page:   listing.page,
	}
	listing.mu.Unlock()

	result, err := listing.lister.Blogs(ctx, query)
	if err != nil {
		return nil, err
	}

	listing.mu.Lock()
	listing.current = result
	listing.mu.Unlock()
	return result, nil
}

// Posts returns the last fetched page, nil before the first Fetch.
func (listing *Listing) Posts() []BlogPost {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	if listing.current == nil {
		return nil
	}
	return listing.current.Posts
}

// Window returns the pagination control for the last fetched page, empty
// when the server did not report pagination meta.
func (listing *Listing) Window() []pagination.Item {
	listing.mu.Lock()
	defer listing.mu.Unlock()
	if listing.current == nil || listing.current.Meta == nil {
		return nil
	}
	return pagination.Window(listing.current.Meta.Page, listing.current.Meta.TotalPages)
}

// FilterVisible narrows the already fetched posts by a second, page-local
// search. This mirrors the behavior of the original blog index, where the
// quick filter box only searched the posts on screen. It never triggers a
// fetch; use SetSearch for a full-archive search.
func (listing *Listing) FilterVisible(text string) []BlogPost {
	posts := listing.Posts()
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return posts
	}

	matched := make([]BlogPost, 0, len(posts))
	for _, post := range posts {
		title := strings.ToLower(post.Title)
		description := strings.ToLower(post.Description)
		if strings.Contains(title, needle) || strings.Contains(description, needle) {
			matched = append(matched, post)
		}
	}
	return matched
}
