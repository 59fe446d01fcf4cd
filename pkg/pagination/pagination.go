// Copyright (c) 2026 Jhair Studio. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how the resulting metadata is delivered in the API response envelope, and
// how a numbered pagination control is laid out (see [Window]).
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// windowRadius is how many page numbers are shown on each side of the
	// current page in a [Window].
	windowRadius = 2
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	return FromRequestDefault(r, DefaultLimit)
}

// FromRequestDefault is [FromRequest] with a caller-chosen default page size.
// "per_page" is accepted as an alias of "limit" for frontend compatibility.
func FromRequestDefault(r *http.Request, defaultLimit int) Params {
	page := parseIntParam(r, "page", DefaultPage)

	limit := parseIntParam(r, "limit", 0)
	if limit == 0 {
		limit = parseIntParam(r, "per_page", defaultLimit)
	}

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}

// # Pagination Window

// Item is one slot in a numbered pagination control: either a concrete page
// number or an ellipsis gap.
type Item struct {
	// Page is the page number this slot links to. Zero when Gap is true.
	Page int `json:"page,omitempty"`
	// Gap marks an ellipsis between non-adjacent page numbers.
	Gap bool `json:"gap,omitempty"`
}

// Window lays out the numbered pagination control for the given current page.
//
// It always includes the first and last page, plus up to two neighbors on
// each side of the current page. Skipped ranges are collapsed into single
// ellipsis gaps:
//
//	Window(1, 10)  → 1 2 3 … 10
//	Window(5, 10)  → 1 … 3 4 5 6 7 … 10
//	Window(10, 10) → 1 … 8 9 10
//
// The current page clamps to [1, totalPages]. A non-positive totalPages
// yields an empty window.
func Window(page, totalPages int) []Item {
	if totalPages <= 0 {
		return nil
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lower := page - windowRadius
	if lower < 1 {
		lower = 1
	}
	upper := page + windowRadius
	if upper > totalPages {
		upper = totalPages
	}

	window := make([]Item, 0, (upper-lower)+5)

	// Leading edge
	if lower > 1 {
		window = append(window, Item{Page: 1})
		if lower > 2 {
			window = append(window, Item{Gap: true})
		}
	}

	for p := lower; p <= upper; p++ {
		window = append(window, Item{Page: p})
	}

	// Trailing edge
	if upper < totalPages {
		if upper < totalPages-1 {
			window = append(window, Item{Gap: true})
		}
		window = append(window, Item{Page: totalPages})
	}

	return window
}

// HasPrev reports whether a previous page exists.
func HasPrev(page int) bool { return page > 1 }

// HasNext reports whether a next page exists.
func HasNext(page, totalPages int) bool { return page < totalPages }
