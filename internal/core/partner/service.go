package partner

import (
	"context"
	"log/slog"

	"github.com/jhairstudio/jhair-server/internal/platform/validate"
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

func (service *Service) ListPublic(context context.Context) ([]*Partner, error) {
	return service.repo.List(context, true)
}

func (service *Service) ListAll(context context.Context) ([]*Partner, error) {
	return service.repo.List(context, false)
}

func (service *Service) GetByID(context context.Context, id int) (*Partner, error) {
	return service.repo.GetByID(context, id)
}

// Input carries editable partner fields for create and update.
type Input struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
	SortOrder   int    `json:"sort_order"`
	IsPublished bool   `json:"is_published"`
}

func (input *Input) validate() error {
	v := &validate.Validator{}
	return v.
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		MaxLen("logo_url", input.LogoURL, 500).
		MaxLen("website_url", input.WebsiteURL, 500).
		Range("sort_order", input.SortOrder, 0, 10000).
		Err()
}

func (input *Input) toPartner(id int) *Partner {
	return &Partner{
		ID:          id,
		Name:        input.Name,
		LogoURL:     input.LogoURL,
		WebsiteURL:  input.WebsiteURL,
		SortOrder:   input.SortOrder,
		IsPublished: input.IsPublished,
	}
}

func (service *Service) Create(context context.Context, input *Input) (*Partner, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, input.toPartner(0))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "partner_created", slog.Int("id", created.ID))
	return created, nil
}

func (service *Service) Update(context context.Context, id int, input *Input) (*Partner, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	return service.repo.Update(context, input.toPartner(id))
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "partner_deleted", slog.Int("id", id))
	return nil
}
