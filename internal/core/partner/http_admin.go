package partner

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
	router.Get("/", handler.listPartners)
	router.Post("/", handler.createPartner)
	router.Get("/{id}", handler.getPartner)
	router.Put("/{id}", handler.updatePartner)
	router.Delete("/{id}", handler.deletePartner)
}

func partnerID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid identifier in URL", apperr.FieldError{
			Field: "id", Message: "must be a positive integer",
		})
	}
	return id, nil
}

func (handler *AdminHandler) listPartners(writer http.ResponseWriter, request *http.Request) {
	partners, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, partners)
}

func (handler *AdminHandler) getPartner(writer http.ResponseWriter, request *http.Request) {
	id, err := partnerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	partner, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, partner)
}

func (handler *AdminHandler) createPartner(writer http.ResponseWriter, request *http.Request) {
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

func (handler *AdminHandler) updatePartner(writer http.ResponseWriter, request *http.Request) {
	id, err := partnerID(request)
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

func (handler *AdminHandler) deletePartner(writer http.ResponseWriter, request *http.Request) {
	id, err := partnerID(request)
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
