package blog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jhairstudio/jhair-server/internal/platform/validate"
	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
	slugutil "github.com/jhairstudio/jhair-server/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListPublic returns one page of published posts, localized, with
// pagination metadata covering the whole filtered set. Drafts never
// appear regardless of the caller's filter.
func (service *Service) ListPublic(context context.Context, filter ListFilter) ([]Localized, pagination.Meta, error) {
	filter.PublishedOnly = true

	blogs, total, err := service.repo.List(context, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	localized := make([]Localized, 0, len(blogs))
	for _, b := range blogs {
		localized = append(localized, b.Localize(filter.Lang))
	}

	meta := pagination.NewMeta(filter.Page.Page, filter.Page.Limit, total)
	return localized, meta, nil
}

// GetPublicBySlug returns a published post localized to loc.
// Drafts and unknown slugs are both a 404; the two cases are
// indistinguishable to the public.
func (service *Service) GetPublicBySlug(context context.Context, slug string, loc locale.Locale) (*Localized, error) {
	b, err := service.repo.GetBySlug(context, slug, true)
	if err != nil {
		return nil, err
	}

	view := b.Localize(loc)
	return &view, nil
}

// # Admin Operations

// ListAll returns posts including drafts, unlocalized, for the editing UI.
func (service *Service) ListAll(context context.Context, page pagination.Params) ([]*Blog, pagination.Meta, error) {
	blogs, total, err := service.repo.List(context, ListFilter{Page: page})
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return blogs, pagination.NewMeta(page.Page, page.Limit, total), nil
}

func (service *Service) GetByID(context context.Context, id int) (*Blog, error) {
	return service.repo.GetByID(context, id)
}

// Input carries editable blog fields for create and update.
type Input struct {
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

	TagIDs []int `json:"tag_ids"`
}

func (input *Input) validate() error {
	v := &validate.Validator{}
	return v.
		Required("title_en", input.TitleEN).
		MaxLen("title_en", input.TitleEN, 300).
		MaxLen("title_es", input.TitleES, 300).
		MaxLen("title_nl", input.TitleNL, 300).
		MaxLen("slug", input.Slug, 300).
		MaxLen("author_name", input.AuthorName, 100).
		Check(input.Slug == "" || slugutil.IsValid(input.Slug), "slug", "must be a lowercase hyphenated slug").
		Err()
}

func (input *Input) toBlog(id int) *Blog {
	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	blogSlug := strings.TrimSpace(input.Slug)
	if blogSlug == "" {
		blogSlug = slugutil.From(input.TitleEN)
	}

	return &Blog{
		ID:            id,
		Slug:          blogSlug,
		TitleEN:       input.TitleEN,
		TitleES:       input.TitleES,
		TitleNL:       input.TitleNL,
		DescriptionEN: input.DescriptionEN,
		DescriptionES: input.DescriptionES,
		DescriptionNL: input.DescriptionNL,
		ContentEN:     input.ContentEN,
		ContentES:     input.ContentES,
		ContentNL:     input.ContentNL,
		AuthorName:    input.AuthorName,
		ImageURL:      input.ImageURL,
		ThumbnailURL:  input.ThumbnailURL,
		PublishedAt:   publishedAt,
		IsPublished:   input.IsPublished,
	}
}

func (service *Service) Create(context context.Context, input *Input) (*Blog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, input.toBlog(0), input.TagIDs)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "blog_created",
		slog.Int("id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, input *Input) (*Blog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, input.toBlog(id), input.TagIDs)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "blog_updated", slog.Int("id", id))
	return updated, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "blog_deleted", slog.Int("id", id))
	return nil
}
