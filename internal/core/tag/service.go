package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jhairstudio/jhair-server/internal/platform/validate"
	"github.com/jhairstudio/jhair-server/pkg/locale"
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

// ListLocalized returns all tags resolved to a single locale.
func (service *Service) ListLocalized(context context.Context, loc locale.Locale) ([]Localized, error) {
	tags, err := service.repo.ListTags(context)
	if err != nil {
		return nil, err
	}

	localized := make([]Localized, 0, len(tags))
	for _, t := range tags {
		localized = append(localized, t.Localize(loc))
	}
	return localized, nil
}

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTag(context context.Context, id int) (*Tag, error) {
	return service.repo.GetTagByID(context, id)
}

// Input carries editable tag fields for create and update.
type Input struct {
	Slug   string `json:"slug"`
	NameEN string `json:"name_en"`
	NameES string `json:"name_es"`
	NameNL string `json:"name_nl"`
}

func (input *Input) validate() error {
	v := &validate.Validator{}
	return v.
		Required("name_en", input.NameEN).
		MaxLen("name_en", input.NameEN, 100).
		MaxLen("name_es", input.NameES, 100).
		MaxLen("name_nl", input.NameNL, 100).
		MaxLen("slug", input.Slug, 100).
		Check(input.Slug == "" || slugutil.IsValid(input.Slug), "slug", "must be a lowercase hyphenated slug").
		Err()
}

// normalizedSlug falls back to a slug derived from the English name.
func (input *Input) normalizedSlug() string {
	if s := strings.TrimSpace(input.Slug); s != "" {
		return s
	}
	return slugutil.From(input.NameEN)
}

func (service *Service) CreateTag(context context.Context, input *Input) (*Tag, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateTag(context, &Tag{
		Slug:   input.normalizedSlug(),
		NameEN: input.NameEN,
		NameES: input.NameES,
		NameNL: input.NameNL,
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_created",
		slog.Int("id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

func (service *Service) UpdateTag(context context.Context, id int, input *Input) (*Tag, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Ensure the tag exists before updating
	if _, err := service.repo.GetTagByID(context, id); err != nil {
		return nil, err
	}

	return service.repo.UpdateTag(context, &Tag{
		ID:     id,
		Slug:   input.normalizedSlug(),
		NameEN: input.NameEN,
		NameES: input.NameES,
		NameNL: input.NameNL,
	})
}

func (service *Service) DeleteTag(context context.Context, id int) error {
	if err := service.repo.DeleteTag(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "tag_deleted", slog.Int("id", id))
	return nil
}
