package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jhairstudio/jhair-server/internal/platform/request"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the two public write endpoints of the site.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/contact", handler.submitContact)
	router.Post("/service-request", handler.submitServiceRequest)
}

func (handler *Handler) submitContact(writer http.ResponseWriter, request *http.Request) {
	var input ContactInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.SubmitContact(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) submitServiceRequest(writer http.ResponseWriter, request *http.Request) {
	var input ServiceRequestInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.SubmitServiceRequest(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
