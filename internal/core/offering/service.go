package offering

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

// ListPublic returns published offerings localized to loc, in sort order.
func (service *Service) ListPublic(context context.Context, loc locale.Locale) ([]Localized, error) {
	offerings, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	localized := make([]Localized, 0, len(offerings))
	for _, o := range offerings {
		localized = append(localized, o.Localize(loc))
	}
	return localized, nil
}

// GetPublicBySlug returns a published offering localized to loc.
// Unpublished offerings are a 404, same as unknown slugs.
func (service *Service) GetPublicBySlug(context context.Context, slug string, loc locale.Locale) (*Localized, error) {
	o, err := service.repo.GetBySlug(context, slug, true)
	if err != nil {
		return nil, err
	}

	view := o.Localize(loc)
	return &view, nil
}

// # Admin Operations

func (service *Service) ListAll(context context.Context) ([]*Offering, error) {
	return service.repo.List(context, false)
}

func (service *Service) GetByID(context context.Context, id int) (*Offering, error) {
	return service.repo.GetByID(context, id)
}

// Input carries editable offering fields for create and update.
type Input struct {
	Slug string `json:"slug"`
	Icon string `json:"icon"`

	TitleEN string `json:"title_en"`
	TitleES string `json:"title_es"`
	TitleNL string `json:"title_nl"`

	DescriptionEN string `json:"description_en"`
	DescriptionES string `json:"description_es"`
	DescriptionNL string `json:"description_nl"`

	Sections [3]Section `json:"sections"`

	SortOrder   int  `json:"sort_order"`
	IsPublished bool `json:"is_published"`
}

func (input *Input) validate() error {
	v := &validate.Validator{}
	return v.
		Required("title_en", input.TitleEN).
		MaxLen("title_en", input.TitleEN, 200).
		MaxLen("title_es", input.TitleES, 200).
		MaxLen("title_nl", input.TitleNL, 200).
		MaxLen("slug", input.Slug, 200).
		Check(input.Slug == "" || slugutil.IsValid(input.Slug), "slug", "must be a lowercase hyphenated slug").
		Range("sort_order", input.SortOrder, 0, 10000).
		Err()
}

func (input *Input) toOffering(id int) *Offering {
	offeringSlug := strings.TrimSpace(input.Slug)
	if offeringSlug == "" {
		offeringSlug = slugutil.From(input.TitleEN)
	}

	return &Offering{
		ID:            id,
		Slug:          offeringSlug,
		Icon:          input.Icon,
		TitleEN:       input.TitleEN,
		TitleES:       input.TitleES,
		TitleNL:       input.TitleNL,
		DescriptionEN: input.DescriptionEN,
		DescriptionES: input.DescriptionES,
		DescriptionNL: input.DescriptionNL,
		Sections:      input.Sections,
		SortOrder:     input.SortOrder,
		IsPublished:   input.IsPublished,
	}
}

func (service *Service) Create(context context.Context, input *Input) (*Offering, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, input.toOffering(0))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "offering_created",
		slog.Int("id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, input *Input) (*Offering, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, input.toOffering(id))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "offering_updated", slog.Int("id", id))
	return updated, nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "offering_deleted", slog.Int("id", id))
	return nil
}
