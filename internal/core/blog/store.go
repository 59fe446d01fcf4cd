package blog

import (
	"context"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

// ListFilter narrows a blog listing. Search and tag filtering run in SQL,
// before pagination, so results are consistent across pages.
type ListFilter struct {
	// TagSlugs keeps only posts carrying at least one of these tags.
	TagSlugs []string
	// Search is a case-insensitive substring match over the active
	// locale's title and description.
	Search string
	// Lang selects which locale's columns Search applies to.
	Lang locale.Locale
	// PublishedOnly excludes drafts. Always true on public endpoints.
	PublishedOnly bool

	Page pagination.Params
}

type Repository interface {
	// List returns one page of posts plus the total matching count.
	List(context context.Context, filter ListFilter) ([]*Blog, int, error)
	GetBySlug(context context.Context, slug string, publishedOnly bool) (*Blog, error)
	GetByID(context context.Context, id int) (*Blog, error)
	Create(context context.Context, blog *Blog, tagIDs []int) (*Blog, error)
	Update(context context.Context, blog *Blog, tagIDs []int) (*Blog, error)
	Delete(context context.Context, id int) error
}
