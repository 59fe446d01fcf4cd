package partner

import "context"

type Repository interface {
	List(context context.Context, publishedOnly bool) ([]*Partner, error)
	GetByID(context context.Context, id int) (*Partner, error)
	Create(context context.Context, partner *Partner) (*Partner, error)
	Update(context context.Context, partner *Partner) (*Partner, error)
	Delete(context context.Context, id int) error
}
