package page_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/internal/core/page"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// memoryRepository is an in-memory page store for service tests.
type memoryRepository struct {
	records map[string]*page.Record
}

func (repo *memoryRepository) GetByKey(ctx context.Context, key string) (*page.Record, error) {
	record, ok := repo.records[key]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func (repo *memoryRepository) Save(ctx context.Context, record *page.Record) error {
	repo.records[record.Key] = record
	return nil
}

func newService(records map[string]*page.Record) *page.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return page.NewService(&memoryRepository{records: records}, logger)
}

/*
TestGetLocalized verifies flattening: suffixed fields collapse to the active
locale, invariant fields pass through, and other locales never leak.
*/
func TestGetLocalized(t *testing.T) {
	service := newService(map[string]*page.Record{
		page.KeyHome: {
			Key: page.KeyHome,
			Fields: map[string]string{
				"hero_title_en": "Welcome",
				"hero_title_es": "Bienvenida",
				"hero_title_nl": "",
				"hero_image":    "/uploads/hero.webp",
			},
		},
	})

	es, err := service.GetLocalized(context.Background(), page.KeyHome, locale.ES)
	require.NoError(t, err)
	assert.Equal(t, "Bienvenida", es["hero_title"])
	assert.Equal(t, "/uploads/hero.webp", es["hero_image"])
	assert.NotContains(t, es, "hero_title_en")

	// A blank Dutch translation stays blank, it never borrows English.
	nl, err := service.GetLocalized(context.Background(), page.KeyHome, locale.NL)
	require.NoError(t, err)
	assert.Equal(t, "", nl["hero_title"])
}

func TestGetLocalized_UnknownKey(t *testing.T) {
	service := newService(map[string]*page.Record{})

	_, err := service.GetLocalized(context.Background(), page.KeyGlobal, locale.EN)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestReplace(t *testing.T) {
	service := newService(map[string]*page.Record{
		page.KeyContactForm: {Key: page.KeyContactForm, Fields: map[string]string{"old": "value"}},
	})

	record, err := service.Replace(context.Background(), page.KeyContactForm, map[string]string{
		"label_en": "Send",
		"label_es": "Enviar",
	})
	require.NoError(t, err)

	// Full replace: previous fields are gone.
	assert.NotContains(t, record.Fields, "old")
	assert.Equal(t, "Enviar", record.Fields["label_es"])
}

func TestReplace_RejectsUnknownPage(t *testing.T) {
	service := newService(map[string]*page.Record{})

	_, err := service.Replace(context.Background(), "totally_made_up", map[string]string{"x": "y"})
	assert.Error(t, err)
}

func TestKeyFromRoute(t *testing.T) {
	key, ok := page.KeyFromRoute("contact-form")
	require.True(t, ok)
	assert.Equal(t, page.KeyContactForm, key)

	key, ok = page.KeyFromRoute("blog-single-page")
	require.True(t, ok)
	assert.Equal(t, page.KeyBlogSinglePage, key)

	_, ok = page.KeyFromRoute("admin")
	assert.False(t, ok)
}
