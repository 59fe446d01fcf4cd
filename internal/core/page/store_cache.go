package page

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhairstudio/jhair-server/internal/platform/constants"
)

// cacheTTL bounds staleness if an invalidation is ever missed.
const cacheTTL = 15 * time.Minute

// CachedRepository is a read-through Redis cache in front of another
// [Repository]. Page records are read on every site visit and change only
// when an editor saves, so they cache extremely well.
//
// Cache failures are logged and degraded to direct reads, never surfaced
// to the caller.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	logger *slog.Logger
}

func NewCachedRepository(inner Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func cacheKey(pageKey string) string {
	return constants.RedisPrefixPage + pageKey
}

func (repository *CachedRepository) GetByKey(context context.Context, key string) (*Record, error) {

	// 1. Cache probe
	cached, err := repository.client.Get(context, cacheKey(key)).Bytes()
	if err == nil {
		record := &Record{}
		if err := json.Unmarshal(cached, record); err == nil {
			return record, nil
		}
		// Corrupt entry: fall through to the source of truth
		repository.logger.Warn("page_cache_corrupt", slog.String("key", key))
	} else if err != redis.Nil {
		repository.logger.Warn("page_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}

	// 2. Miss: load from the underlying store
	record, err := repository.inner.GetByKey(context, key)
	if err != nil {
		return nil, err
	}

	// 3. Populate the cache for the next visitor
	if encoded, err := json.Marshal(record); err == nil {
		if err := repository.client.Set(context, cacheKey(key), encoded, cacheTTL).Err(); err != nil {
			repository.logger.Warn("page_cache_write_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return record, nil
}

func (repository *CachedRepository) Save(context context.Context, record *Record) error {
	if err := repository.inner.Save(context, record); err != nil {
		return err
	}

	// Invalidate after a successful write so the next read repopulates.
	if err := repository.client.Del(context, cacheKey(record.Key)).Err(); err != nil {
		repository.logger.Warn("page_cache_invalidate_failed",
			slog.String("key", record.Key), slog.Any("error", err))
	}

	return nil
}
