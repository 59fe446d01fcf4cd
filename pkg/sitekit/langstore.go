// Copyright (c) 2026 Jhair Studio. All rights reserved.

package sitekit

import (
	"sync"

	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// Storage persists the visitor's language choice between visits. In the
// browser build this sits on top of localStorage; tests use an in-memory map.
type Storage interface {
	// Load returns the persisted raw value, empty when nothing is stored.
	Load() (string, error)

	// Store persists the raw value.
	Store(value string) error
}

// LangStore holds the visitor's active locale.
//
// It is the single source of truth for the front end: components read the
// current value and subscribe to changes instead of tracking the language
// themselves.
type LangStore struct {
	mu          sync.Mutex
	storage     Storage
	current     locale.Locale
	subscribers map[int]func(locale.Locale)
	nextID      int
}

// NewLangStore restores the persisted choice. Anything unreadable or
// unsupported silently becomes the default locale; a broken storage value
// must never break the site.
func NewLangStore(storage Storage) *LangStore {
	store := &LangStore{
		storage:     storage,
		current:     locale.Default,
		subscribers: map[int]func(locale.Locale){},
	}

	if storage != nil {
		if raw, err := storage.Load(); err == nil && locale.IsSupported(raw) {
			store.current = locale.Parse(raw)
		}
	}
	return store
}

// Current returns the active locale.
func (store *LangStore) Current() locale.Locale {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// Set switches the active locale, persists it, and notifies subscribers.
// Unsupported values and no-op changes are ignored.
func (store *LangStore) Set(loc locale.Locale) {
	if !locale.IsSupported(string(loc)) {
		return
	}

	store.mu.Lock()
	if loc == store.current {
		store.mu.Unlock()
		return
	}
	store.current = loc

	notify := make([]func(locale.Locale), 0, len(store.subscribers))
	for _, subscriber := range store.subscribers {
		notify = append(notify, subscriber)
	}
	store.mu.Unlock()

	if store.storage != nil {
		// Persistence is best effort; the in-memory value already changed.
		_ = store.storage.Store(string(loc))
	}

	for _, subscriber := range notify {
		subscriber(loc)
	}
}

// Subscribe registers a change callback and returns its cancel function.
// The callback runs on the goroutine that called Set.
func (store *LangStore) Subscribe(fn func(locale.Locale)) (cancel func()) {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextID
	store.nextID++
	store.subscribers[id] = fn

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		delete(store.subscribers, id)
	}
}
