package schema

// ContentBlogTable represents the 'content.blog' table
type ContentBlogTable struct {
	Table         string
	ID            string
	Slug          string
	TitleEN       string
	TitleES       string
	TitleNL       string
	DescriptionEN string
	DescriptionES string
	DescriptionNL string
	ContentEN     string
	ContentES     string
	ContentNL     string
	AuthorName    string
	ImageURL      string
	ThumbnailURL  string
	PublishedAt   string
	IsPublished   string
	CreatedAt     string
	UpdatedAt     string
}

// ContentBlog is the schema definition for content.blog
var ContentBlog = ContentBlogTable{
	Table:         "content.blog",
	ID:            "id",
	Slug:          "slug",
	TitleEN:       "title_en",
	TitleES:       "title_es",
	TitleNL:       "title_nl",
	DescriptionEN: "description_en",
	DescriptionES: "description_es",
	DescriptionNL: "description_nl",
	ContentEN:     "content_en",
	ContentES:     "content_es",
	ContentNL:     "content_nl",
	AuthorName:    "author_name",
	ImageURL:      "image_url",
	ThumbnailURL:  "thumbnail_url",
	PublishedAt:   "published_at",
	IsPublished:   "is_published",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t ContentBlogTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.TitleEN, t.TitleES, t.TitleNL,
		t.DescriptionEN, t.DescriptionES, t.DescriptionNL,
		t.ContentEN, t.ContentES, t.ContentNL,
		t.AuthorName, t.ImageURL, t.ThumbnailURL,
		t.PublishedAt, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
