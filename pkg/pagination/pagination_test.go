// Copyright (c) 2026 Jhair Studio. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

/*
TestFromRequest verifies query parameter parsing and clamping behavior.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/blogs", 1, 20},
		{"explicit", "/api/blogs?page=3&limit=10", 3, 10},
		{"per_page_alias", "/api/blogs?page=2&per_page=6", 2, 6},
		{"limit_wins_over_alias", "/api/blogs?limit=15&per_page=6", 1, 15},
		{"negative_page_clamped", "/api/blogs?page=-1", 1, 20},
		{"zero_page_clamped", "/api/blogs?page=0", 1, 20},
		{"excessive_limit_clamped", "/api/blogs?limit=5000", 1, 20},
		{"garbage_ignored", "/api/blogs?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(r)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 6}.Offset())
	assert.Equal(t, 6, pagination.Params{Page: 2, Limit: 6}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 6}.Offset())
}

/*
TestNewMeta verifies total page calculation, including the partial last page.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 6, 13)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 6, meta.Limit)
	assert.Equal(t, 13, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	// Empty result set still carries valid metadata
	empty := pagination.NewMeta(1, 6, 0)
	assert.Equal(t, 0, empty.TotalPages)
}

// pages is a test helper turning a window into a compact comparable form,
// with 0 representing an ellipsis gap.
func pages(window []pagination.Item) []int {
	out := make([]int, 0, len(window))
	for _, item := range window {
		if item.Gap {
			out = append(out, 0)
			continue
		}
		out = append(out, item.Page)
	}
	return out
}

/*
TestWindow verifies the numbered control layout for the canonical shapes.
*/
func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{"first_page", 1, 10, []int{1, 2, 3, 0, 10}},
		{"middle_page", 5, 10, []int{1, 0, 3, 4, 5, 6, 7, 0, 10}},
		{"last_page", 10, 10, []int{1, 0, 8, 9, 10}},
		{"near_start_no_gap", 3, 10, []int{1, 2, 3, 4, 5, 0, 10}},
		{"small_total_no_gaps", 2, 4, []int{1, 2, 3, 4}},
		{"single_page", 1, 1, []int{1}},
		{"page_clamped_high", 99, 10, []int{1, 0, 8, 9, 10}},
		{"page_clamped_low", -3, 10, []int{1, 2, 3, 0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(pagination.Window(tt.page, tt.totalPages)))
		})
	}
}

/*
TestWindow_Empty verifies degenerate inputs produce an empty window.
*/
func TestWindow_Empty(t *testing.T) {
	assert.Empty(t, pagination.Window(1, 0))
	assert.Empty(t, pagination.Window(1, -5))
}

/*
TestBoundaryNavigation verifies prev/next availability at the edges.
*/
func TestBoundaryNavigation(t *testing.T) {
	assert.False(t, pagination.HasPrev(1))
	assert.True(t, pagination.HasPrev(2))
	assert.True(t, pagination.HasNext(9, 10))
	assert.False(t, pagination.HasNext(10, 10))
}
