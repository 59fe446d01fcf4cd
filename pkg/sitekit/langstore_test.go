package sitekit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhairstudio/jhair-server/pkg/locale"
	"github.com/jhairstudio/jhair-server/pkg/sitekit"
)

// memoryStorage is an in-memory Storage for tests.
type memoryStorage struct {
	value   string
	loadErr error
}

func (s *memoryStorage) Load() (string, error) { return s.value, s.loadErr }
func (s *memoryStorage) Store(v string) error  { s.value = v; return nil }

func TestLangStore_RestoresPersistedChoice(t *testing.T) {
	store := sitekit.NewLangStore(&memoryStorage{value: "nl"})
	assert.Equal(t, locale.NL, store.Current())
}

/*
TestLangStore_InvalidPersistedValue verifies that garbage in storage falls
back to the default locale instead of breaking startup.
*/
func TestLangStore_InvalidPersistedValue(t *testing.T) {
	tests := []struct {
		name    string
		storage sitekit.Storage
	}{
		{name: "unsupported code", storage: &memoryStorage{value: "fr"}},
		{name: "garbage", storage: &memoryStorage{value: "??!"}},
		{name: "empty", storage: &memoryStorage{}},
		{name: "load error", storage: &memoryStorage{value: "es", loadErr: errors.New("quota")}},
		{name: "nil storage", storage: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := sitekit.NewLangStore(test.storage)
			assert.Equal(t, locale.Default, store.Current())
		})
	}
}

func TestLangStore_SetPersistsAndNotifies(t *testing.T) {
	storage := &memoryStorage{value: "en"}
	store := sitekit.NewLangStore(storage)

	var seen []locale.Locale
	cancel := store.Subscribe(func(loc locale.Locale) { seen = append(seen, loc) })

	store.Set(locale.ES)
	assert.Equal(t, locale.ES, store.Current())
	assert.Equal(t, "es", storage.value)
	assert.Equal(t, []locale.Locale{locale.ES}, seen)

	// Same value again is a no-op, no second notification.
	store.Set(locale.ES)
	assert.Len(t, seen, 1)

	// Unsupported values are ignored entirely.
	store.Set(locale.Locale("de"))
	assert.Equal(t, locale.ES, store.Current())
	assert.Len(t, seen, 1)

	cancel()
	store.Set(locale.NL)
	assert.Len(t, seen, 1, "cancelled subscriber must not fire")
}
