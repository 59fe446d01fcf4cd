package submission

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
)

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (handler *AdminHandler) RegisterRoutes(router chi.Router) {
	router.Get("/contact-submissions", handler.listContacts)
	router.Put("/contact-submissions/{id}/read", handler.markContactRead)
	router.Get("/service-requests", handler.listServiceRequests)
}

func (handler *AdminHandler) listContacts(writer http.ResponseWriter, request *http.Request) {
	submissions, meta, err := handler.service.ListContacts(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, submissions, meta)
}

func (handler *AdminHandler) markContactRead(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil || id < 1 {
		respond.Error(writer, request, apperr.ValidationError("Invalid identifier in URL", apperr.FieldError{
			Field: "id", Message: "must be a positive integer",
		}))
		return
	}

	if err := handler.service.MarkContactRead(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *AdminHandler) listServiceRequests(writer http.ResponseWriter, request *http.Request) {
	requests, meta, err := handler.service.ListServiceRequests(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, requests, meta)
}
