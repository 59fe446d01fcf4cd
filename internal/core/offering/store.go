package offering

import "context"

type Repository interface {
	// List returns offerings ordered by sort_order. publishedOnly
	// excludes unpublished rows on public endpoints.
	List(context context.Context, publishedOnly bool) ([]*Offering, error)
	GetBySlug(context context.Context, slug string, publishedOnly bool) (*Offering, error)
	GetByID(context context.Context, id int) (*Offering, error)
	Create(context context.Context, offering *Offering) (*Offering, error)
	Update(context context.Context, offering *Offering) (*Offering, error)
	Delete(context context.Context, id int) error
}
