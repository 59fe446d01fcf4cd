package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/upload", handler.upload)
}

type uploadOutput struct {
	URL string `json:"url"`
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	// Cap the whole request; form metadata gets a small allowance on top
	// of the image itself.
	request.Body = http.MaxBytesReader(writer, request.Body, MaxUploadBytes+(1<<20))

	if err := request.ParseMultipartForm(MaxUploadBytes); err != nil {
		respond.Error(writer, request, apperr.PayloadTooLarge("Image exceeds the 10MB limit"))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file", apperr.FieldError{
			Field: "file", Message: "multipart field 'file' is required",
		}))
		return
	}
	defer file.Close()

	url, err := handler.service.SaveImage(header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Replacing an existing image: clean up the previous file, best effort.
	if oldURL := request.FormValue("old_url"); oldURL != "" {
		handler.service.DeleteByURL(oldURL)
	}

	respond.OK(writer, uploadOutput{URL: url})
}
