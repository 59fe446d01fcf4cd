package page

import "context"

type Repository interface {
	GetByKey(context context.Context, key string) (*Record, error)
	Save(context context.Context, record *Record) error
}
