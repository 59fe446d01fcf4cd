package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jhairstudio/jhair-server/internal/platform/request"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
	"github.com/jhairstudio/jhair-server/pkg/pagination"
	"github.com/jhairstudio/jhair-server/pkg/query"
)

// defaultPageSize matches the six-card grid on the blog index.
const defaultPageSize = 6

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBlogs)
	router.Get("/{slug}", handler.getBlogBySlug)
}

func (handler *Handler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := ListFilter{
		TagSlugs: query.StringSlice(requestutil.QueryString(request, "tag", "")),
		Search:   requestutil.QueryString(request, "search", ""),
		Lang:     lang,
		Page:     pagination.FromRequestDefault(request, defaultPageSize),
	}

	blogs, meta, err := handler.service.ListPublic(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, blogs, meta)
}

func (handler *Handler) getBlogBySlug(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	slug := chi.URLParam(request, "slug")
	blog, err := handler.service.GetPublicBySlug(request.Context(), slug, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, blog)
}
