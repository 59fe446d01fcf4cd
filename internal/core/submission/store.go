package submission

import (
	"context"

	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

type Repository interface {
	CreateContact(context context.Context, submission *ContactSubmission) (*ContactSubmission, error)
	ListContacts(context context.Context, page pagination.Params) ([]*ContactSubmission, int, error)
	MarkContactRead(context context.Context, id int) error

	CreateServiceRequest(context context.Context, request *ServiceRequest) (*ServiceRequest, error)
	ListServiceRequests(context context.Context, page pagination.Params) ([]*ServiceRequest, int, error)
}
