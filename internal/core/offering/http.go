package offering

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listOfferings)
	router.Get("/{slug}", handler.getOfferingBySlug)
}

func (handler *Handler) listOfferings(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	offerings, err := handler.service.ListPublic(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offerings)
}

func (handler *Handler) getOfferingBySlug(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	slug := chi.URLParam(request, "slug")
	offering, err := handler.service.GetPublicBySlug(request.Context(), slug, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering)
}
