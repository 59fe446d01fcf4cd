package page

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

// RegisterRoutes mounts one localized read endpoint per page type.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/home", handler.getPage(KeyHome))
	router.Get("/global", handler.getPage(KeyGlobal))
	router.Get("/contact-form", handler.getPage(KeyContactForm))
	router.Get("/services-page", handler.getPage(KeyServicesPage))
	router.Get("/service-single-page", handler.getPage(KeyServiceSinglePage))
	router.Get("/blog-page", handler.getPage(KeyBlogPage))
	router.Get("/blog-single-page", handler.getPage(KeyBlogSinglePage))
}

func (handler *Handler) getPage(key string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		lang, err := requestutil.Lang(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		fields, err := handler.service.GetLocalized(request.Context(), key, lang)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, fields)
	}
}
