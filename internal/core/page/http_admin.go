package page

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	requestutil "github.com/jhairstudio/jhair-server/internal/platform/request"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
)

// AdminHandler exposes raw page records, all locale variants included,
// for the studio's editing UI.
type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (handler *AdminHandler) RegisterRoutes(router chi.Router) {
	router.Get("/{page}", handler.getRecord)
	router.Put("/{page}", handler.replaceRecord)
}

type replaceRecordInput struct {
	Fields map[string]string `json:"fields"`
}

func (handler *AdminHandler) getRecord(writer http.ResponseWriter, request *http.Request) {
	key, known := KeyFromRoute(chi.URLParam(request, "page"))
	if !known {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	record, err := handler.service.GetRecord(request.Context(), key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *AdminHandler) replaceRecord(writer http.ResponseWriter, request *http.Request) {
	key, known := KeyFromRoute(chi.URLParam(request, "page"))
	if !known {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	var input replaceRecordInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Replace(request.Context(), key, input.Fields)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}
