package submission

import (
	"context"
	"log/slog"

	"github.com/jhairstudio/jhair-server/internal/platform/validate"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
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

// ContactInput is the public contact-form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (input *ContactInput) validate() error {
	v := &validate.Validator{}
	return v.
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Required("email", input.Email).
		Email("email", input.Email).
		MaxLen("phone", input.Phone, 50).
		MaxLen("subject", input.Subject, 300).
		Required("message", input.Message).
		MaxLen("message", input.Message, 5000).
		Err()
}

func (service *Service) SubmitContact(context context.Context, input *ContactInput) (*ContactSubmission, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateContact(context, &ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "contact_submitted", slog.Int("id", created.ID))
	return created, nil
}

// ServiceRequestInput is the public booking-inquiry payload.
type ServiceRequestInput struct {
	OfferingID int    `json:"service_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func (input *ServiceRequestInput) validate() error {
	v := &validate.Validator{}
	return v.
		Check(input.OfferingID > 0, "service_id", "must reference a service").
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Required("email", input.Email).
		Email("email", input.Email).
		MaxLen("phone", input.Phone, 50).
		Err()
}

func (service *Service) SubmitServiceRequest(context context.Context, input *ServiceRequestInput) (*ServiceRequest, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateServiceRequest(context, &ServiceRequest{
		OfferingID: input.OfferingID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "service_request_submitted",
		slog.Int("id", created.ID), slog.Int("offering_id", created.OfferingID))
	return created, nil
}

// # Admin Operations

func (service *Service) ListContacts(context context.Context, page pagination.Params) ([]*ContactSubmission, pagination.Meta, error) {
	submissions, total, err := service.repo.ListContacts(context, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return submissions, pagination.NewMeta(page.Page, page.Limit, total), nil
}

func (service *Service) MarkContactRead(context context.Context, id int) error {
	return service.repo.MarkContactRead(context, id)
}

func (service *Service) ListServiceRequests(context context.Context, page pagination.Params) ([]*ServiceRequest, pagination.Meta, error) {
	requests, total, err := service.repo.ListServiceRequests(context, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return requests, pagination.NewMeta(page.Page, page.Limit, total), nil
}
