package schema

// ContentBlogTagTable represents the 'content.blog_tag' join table
type ContentBlogTagTable struct {
	Table  string
	BlogID string
	TagID  string
}

// ContentBlogTag is the schema definition for content.blog_tag
var ContentBlogTag = ContentBlogTagTable{
	Table:  "content.blog_tag",
	BlogID: "blog_id",
	TagID:  "tag_id",
}

func (t ContentBlogTagTable) Columns() []string {
	return []string{t.BlogID, t.TagID}
}
