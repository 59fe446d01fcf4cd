package partner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPartners)
}

func (handler *Handler) listPartners(writer http.ResponseWriter, request *http.Request) {
	partners, err := handler.service.ListPublic(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, partners)
}
