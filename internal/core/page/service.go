package page

import (
	"context"
	"log/slog"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetLocalized returns the page's fields flattened to a single locale.
func (service *Service) GetLocalized(context context.Context, key string, loc locale.Locale) (map[string]string, error) {
	record, err := service.repo.GetByKey(context, key)
	if err != nil {
		return nil, err
	}
	return locale.Flatten(record.Fields, loc), nil
}

// GetRecord returns the raw record with all locale variants, for editing.
func (service *Service) GetRecord(context context.Context, key string) (*Record, error) {
	return service.repo.GetByKey(context, key)
}

// Replace stores a full new field map for the page. Last write wins.
func (service *Service) Replace(context context.Context, key string, fields map[string]string) (*Record, error) {
	if _, known := KeyFromRoute(key); !known {
		return nil, apperr.NotFound("Page")
	}
	if fields == nil {
		fields = map[string]string{}
	}

	record := &Record{Key: key, Fields: fields}
	if err := service.repo.Save(context, record); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "page_replaced", slog.String("key", key))
	return service.repo.GetByKey(context, key)
}
