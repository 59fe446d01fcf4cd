// Copyright (c) 2026 Jhair Studio. All rights reserved.

package sitekit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// ErrSuperseded is returned by Refresh when a newer load started while this
// one was in flight. The caller should use the newer result.
var ErrSuperseded = errors.New("sitekit: load superseded by a newer one")

// ContentFetcher is the slice of [Client] the assembler needs. Tests
// substitute a controllable fake.
type ContentFetcher interface {
	Page(ctx context.Context, name string, loc locale.Locale) (map[string]string, error)
	Services(ctx context.Context, loc locale.Locale) ([]Service, error)
	Tags(ctx context.Context, loc locale.Locale) ([]Tag, error)
	Partners(ctx context.Context) ([]Partner, error)
}

// Site is the assembled shared content for one locale: everything the
// layout needs before any route-specific data.
//
// Sections that failed to load are nil. The front end renders what it has;
// a broken partners endpoint must not blank the whole site.
type Site struct {
	Locale locale.Locale

	Home     map[string]string
	Global   map[string]string
	Services []Service
	Tags     []Tag
	Partners []Partner
}

// Assembler loads the shared site content for the active locale.
//
// Language switches race with in-flight loads: the visitor can switch to
// Spanish while the English content is still downloading. Each Refresh
// takes a generation number; a load that finishes after a newer one
// started is discarded instead of overwriting fresher content.
type Assembler struct {
	fetcher ContentFetcher
	store   *LangStore
	logger  *slog.Logger

	mu         sync.Mutex
	generation uint64
	snapshot   *Site
}

// NewAssembler wires the assembler to the fetcher and the language store.
func NewAssembler(fetcher ContentFetcher, store *LangStore, logger *slog.Logger) *Assembler {
	return &Assembler{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// Snapshot returns the last committed site content, nil before the first
// successful Refresh.
func (assembler *Assembler) Snapshot() *Site {
	assembler.mu.Lock()
	defer assembler.mu.Unlock()
	return assembler.snapshot
}

// Refresh loads all shared sections for the active locale concurrently and
// commits the result as the new snapshot.
//
// Individual section failures are logged and leave that section nil; they
// never fail the whole load. The only error conditions are a cancelled
// context and [ErrSuperseded].
func (assembler *Assembler) Refresh(ctx context.Context) (*Site, error) {
	assembler.mu.Lock()
	assembler.generation++
	generation := assembler.generation
	assembler.mu.Unlock()

	loc := assembler.store.Current()
	site := &Site{Locale: loc}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		site.Home = assembler.fetchPage(groupCtx, "home", loc)
		return nil
	})
	group.Go(func() error {
		site.Global = assembler.fetchPage(groupCtx, "global", loc)
		return nil
	})
	group.Go(func() error {
		services, err := assembler.fetcher.Services(groupCtx, loc)
		if err != nil {
			assembler.warn("services", err)
			return nil
		}
		site.Services = services
		return nil
	})
	group.Go(func() error {
		tags, err := assembler.fetcher.Tags(groupCtx, loc)
		if err != nil {
			assembler.warn("tags", err)
			return nil
		}
		site.Tags = tags
		return nil
	})
	group.Go(func() error {
		partners, err := assembler.fetcher.Partners(groupCtx)
		if err != nil {
			assembler.warn("partners", err)
			return nil
		}
		site.Partners = partners
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assembler.mu.Lock()
	defer assembler.mu.Unlock()

	if generation != assembler.generation {
		// A newer load started while this one ran. Its result wins.
		return nil, ErrSuperseded
	}

	assembler.snapshot = site
	assembler.logger.Info("site_content_assembled", slog.String("locale", string(loc)))
	return site, nil
}

func (assembler *Assembler) fetchPage(ctx context.Context, name string, loc locale.Locale) map[string]string {
	fields, err := assembler.fetcher.Page(ctx, name, loc)
	if err != nil {
		assembler.warn("page:"+name, err)
		return nil
	}
	return fields
}

func (assembler *Assembler) warn(section string, err error) {
	assembler.logger.Warn("site_section_failed",
		slog.String("section", section),
		slog.Any("error", err),
	)
}
