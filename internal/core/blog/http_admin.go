package blog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	requestutil "github.com/jhairstudio/jhair-server/internal/platform/request"
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
	router.Get("/", handler.listBlogs)
	router.Post("/", handler.createBlog)
	router.Get("/{id}", handler.getBlog)
	router.Put("/{id}", handler.updateBlog)
	router.Delete("/{id}", handler.deleteBlog)
}

func blogID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid identifier in URL", apperr.FieldError{
			Field: "id", Message: "must be a positive integer",
		})
	}
	return id, nil
}

func (handler *AdminHandler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	blogs, meta, err := handler.service.ListAll(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, blogs, meta)
}

func (handler *AdminHandler) getBlog(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	blog, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, blog)
}

func (handler *AdminHandler) createBlog(writer http.ResponseWriter, request *http.Request) {
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

func (handler *AdminHandler) updateBlog(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
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

func (handler *AdminHandler) deleteBlog(writer http.ResponseWriter, request *http.Request) {
	id, err := blogID(request)
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
