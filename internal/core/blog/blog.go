package blog

import (
	"time"

	"github.com/jhairstudio/jhair-server/internal/core/tag"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// Blog is a post as stored, carrying every locale variant. Admin endpoints
// work with this full form; public endpoints serve the [Localized] view.
type Blog struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`

	TitleEN string `json:"title_en"`
	TitleES string `json:"title_es"`
	TitleNL string `json:"title_nl"`

	DescriptionEN string `json:"description_en"`
	DescriptionES string `json:"description_es"`
	DescriptionNL string `json:"description_nl"`

	ContentEN string `json:"content_en"`
	ContentES string `json:"content_es"`
	ContentNL string `json:"content_nl"`

	AuthorName   string `json:"author_name"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`

	PublishedAt time.Time `json:"published_at"`
	IsPublished bool      `json:"is_published"`

	Tags []tag.Tag `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Localized is the public single-locale view of a post. A missing
// translation yields empty strings, never another locale's text.
type Localized struct {
	ID           int             `json:"id"`
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Content      string          `json:"content"`
	AuthorName   string          `json:"author_name"`
	ImageURL     string          `json:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	PublishedAt  time.Time       `json:"published_at"`
	Tags         []tag.Localized `json:"tags"`
}

// Localize resolves the post to a single locale.
func (b *Blog) Localize(loc locale.Locale) Localized {
	view := Localized{
		ID:           b.ID,
		Slug:         b.Slug,
		AuthorName:   b.AuthorName,
		ImageURL:     b.ImageURL,
		ThumbnailURL: b.ThumbnailURL,
		PublishedAt:  b.PublishedAt,
		Tags:         make([]tag.Localized, 0, len(b.Tags)),
	}

	switch loc {
	case locale.ES:
		view.Title, view.Description, view.Content = b.TitleES, b.DescriptionES, b.ContentES
	case locale.NL:
		view.Title, view.Description, view.Content = b.TitleNL, b.DescriptionNL, b.ContentNL
	default:
		view.Title, view.Description, view.Content = b.TitleEN, b.DescriptionEN, b.ContentEN
	}

	for _, t := range b.Tags {
		view.Tags = append(view.Tags, t.Localize(loc))
	}

	return view
}
