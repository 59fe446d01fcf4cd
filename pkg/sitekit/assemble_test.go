package sitekit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/sitekit"
)

// fakeFetcher serves canned content per locale. An optional gate channel
// holds page loads for gateLocale open while another load runs.
type fakeFetcher struct {
	gate        chan struct{}
	gateLocale  locale.Locale
	started     sync.Once
	startedCh   chan struct{}
	partnersErr error
	pageErr     error
}

func (f *fakeFetcher) Page(ctx context.Context, name string, loc locale.Locale) (map[string]string, error) {
	if f.gate != nil && loc == f.gateLocale {
		if f.startedCh != nil {
			f.started.Do(func() { close(f.startedCh) })
		}
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return map[string]string{"title": name + " " + string(loc)}, nil
}

func (f *fakeFetcher) Services(ctx context.Context, loc locale.Locale) ([]sitekit.Service, error) {
	return []sitekit.Service{{ID: 1, Slug: "balayage", Title: "Balayage " + string(loc)}}, nil
}

func (f *fakeFetcher) Tags(ctx context.Context, loc locale.Locale) ([]sitekit.Tag, error) {
	return []sitekit.Tag{{ID: 1, Slug: "care", Name: "Care " + string(loc)}}, nil
}

func (f *fakeFetcher) Partners(ctx context.Context) ([]sitekit.Partner, error) {
	if f.partnersErr != nil {
		return nil, f.partnersErr
	}
	return []sitekit.Partner{{ID: 1, Name: "Olaplex"}}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssembler_RefreshLoadsActiveLocale(t *testing.T) {
	store := sitekit.NewLangStore(&memoryStorage{value: "es"})
	assembler := sitekit.NewAssembler(&fakeFetcher{}, store, discardLogger())

	site, err := assembler.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, locale.ES, site.Locale)
	assert.Equal(t, "home es", site.Home["title"])
	assert.Equal(t, "global es", site.Global["title"])
	assert.Equal(t, "Balayage es", site.Services[0].Title)
	assert.Equal(t, "Care es", site.Tags[0].Name)
	assert.Equal(t, "Olaplex", site.Partners[0].Name)
	assert.Same(t, site, assembler.Snapshot())
}

/*
TestAssembler_SectionDegradation verifies that one failing section leaves
the rest of the site intact: the failed section is nil, not an error.
*/
func TestAssembler_SectionDegradation(t *testing.T) {
	store := sitekit.NewLangStore(nil)
	fetcher := &fakeFetcher{partnersErr: errors.New("upstream 503")}
	assembler := sitekit.NewAssembler(fetcher, store, discardLogger())

	site, err := assembler.Refresh(context.Background())
	require.NoError(t, err)

	assert.Nil(t, site.Partners)
	assert.NotNil(t, site.Services)
	assert.NotNil(t, site.Home)
}

/*
TestAssembler_StaleLoadDiscarded reproduces the language switch race: a
slow load for the old locale finishes after a newer load already
committed. The slow result must be discarded, never overwriting the
fresher snapshot.
*/
func TestAssembler_StaleLoadDiscarded(t *testing.T) {
	storage := &memoryStorage{value: "en"}
	store := sitekit.NewLangStore(storage)

	// English page loads block until the gate opens; Dutch ones sail through.
	gate := make(chan struct{})
	started := make(chan struct{})
	slowFetcher := &fakeFetcher{gate: gate, gateLocale: locale.EN, startedCh: started}
	assembler := sitekit.NewAssembler(slowFetcher, store, discardLogger())

	type refreshResult struct {
		site *sitekit.Site
		err  error
	}
	firstDone := make(chan refreshResult, 1)

	// First load (English) blocks inside the fetcher.
	go func() {
		site, err := assembler.Refresh(context.Background())
		firstDone <- refreshResult{site: site, err: err}
	}()

	// Wait until the English load is actually in flight.
	<-started

	// Visitor switches to Dutch; a second load starts and completes.
	store.Set(locale.NL)

	second, err := assembler.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, locale.NL, second.Locale)

	// Release the first load. It finishes late and must be discarded.
	close(gate)
	first := <-firstDone
	require.ErrorIs(t, first.err, sitekit.ErrSuperseded)

	snapshot := assembler.Snapshot()
	require.NotNil(t, snapshot)
	assert.Equal(t, locale.NL, snapshot.Locale, "late English load must not clobber Dutch content")
}
