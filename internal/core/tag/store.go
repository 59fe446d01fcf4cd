package tag

import "context"

type Repository interface {
	ListTags(context context.Context) ([]*Tag, error)
	GetTagByID(context context.Context, id int) (*Tag, error)
	CreateTag(context context.Context, tag *Tag) (*Tag, error)
	UpdateTag(context context.Context, tag *Tag) (*Tag, error)
	// DeleteTag removes the tag and detaches it from every blog.
	// Blogs themselves are never deleted.
	DeleteTag(context context.Context, id int) error
}
