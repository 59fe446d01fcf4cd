package offering

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	requestutil "github.com/jhairstudio/jhair-server/internal/platform/request"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
)

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (handler *AdminHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listOfferings)
	router.Post("/", handler.createOffering)
	router.Get("/{id}", handler.getOffering)
	router.Put("/{id}", handler.updateOffering)
	router.Delete("/{id}", handler.deleteOffering)
}

func offeringID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid identifier in URL", apperr.FieldError{
			Field: "id", Message: "must be a positive integer",
		})
	}
	return id, nil
}

func (handler *AdminHandler) listOfferings(writer http.ResponseWriter, request *http.Request) {
	offerings, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offerings)
}

func (handler *AdminHandler) getOffering(writer http.ResponseWriter, request *http.Request) {
	id, err := offeringID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	offering, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering)
}

func (handler *AdminHandler) createOffering(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *AdminHandler) updateOffering(writer http.ResponseWriter, request *http.Request) {
	id, err := offeringID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *AdminHandler) deleteOffering(writer http.ResponseWriter, request *http.Request) {
	id, err := offeringID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
