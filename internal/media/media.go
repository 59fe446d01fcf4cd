// Package media manages uploaded images for the site: storing them under a
// single managed directory with unguessable names and serving them back at
// stable URLs.
//
// There is no garbage collection of orphaned files. The only cleanup path
// is the old_url replacement on upload; retention beyond that is left to
// operators.
package media

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/pkg/uuid"
)

// MaxUploadBytes caps a single uploaded image.
const MaxUploadBytes = 10 << 20

// allowedExtensions is the image extension whitelist. Anything else is
// rejected regardless of content type.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Service stores uploaded images on the local filesystem.
type Service struct {
	dir     string
	baseURL string
	logger  *slog.Logger
}

// NewService creates the upload directory if needed and returns a Service.
func NewService(dir, baseURL string, logger *slog.Logger) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create upload dir %s: %w", dir, err)
	}

	return &Service{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Dir returns the managed upload directory, for static file serving.
func (service *Service) Dir() string { return service.dir }

// SaveImage validates the extension, stores the content under a fresh
// UUID filename, and returns the public URL of the stored file.
func (service *Service) SaveImage(originalName string, content io.Reader) (string, error) {
	extension := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[extension] {
		return "", apperr.ValidationError("Unsupported file type", apperr.FieldError{
			Field:   "file",
			Message: "must be one of: .jpg, .jpeg, .png, .gif, .webp, .svg",
		})
	}

	// Unguessable, collision-free name; the original name is discarded.
	storedName := uuid.New() + extension
	storedPath := filepath.Join(service.dir, storedName)

	destination, err := os.Create(storedPath)
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer destination.Close()

	written, err := io.Copy(destination, io.LimitReader(content, MaxUploadBytes+1))
	if err != nil {
		_ = os.Remove(storedPath)
		return "", apperr.Internal(err)
	}
	if written > MaxUploadBytes {
		_ = os.Remove(storedPath)
		return "", apperr.PayloadTooLarge("Image exceeds the 10MB limit")
	}

	service.logger.Info("image_stored", slog.String("name", storedName), slog.Int64("bytes", written))
	return service.baseURL + "/" + storedName, nil
}

// DeleteByURL removes a previously uploaded file given its public URL.
//
// Deletion is strictly confined to the managed directory: URLs outside the
// upload base, traversal attempts, and unknown files are all silently
// ignored rather than errored, since old_url is a best-effort cleanup hint
// from the client.
func (service *Service) DeleteByURL(oldURL string) {
	if oldURL == "" {
		return
	}

	if !strings.HasPrefix(oldURL, service.baseURL+"/") {
		service.logger.Warn("delete_skipped_foreign_url", slog.String("url", oldURL))
		return
	}

	name := path.Base(oldURL)
	// path.Base never returns separators, but stay paranoid about dot names
	if name == "." || name == ".." || name == "/" {
		return
	}

	target := filepath.Join(service.dir, name)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		service.logger.Warn("delete_failed", slog.String("url", oldURL), slog.Any("error", err))
		return
	}

	service.logger.Info("image_deleted", slog.String("name", name))
}
