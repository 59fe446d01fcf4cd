// Copyright (c) 2026 Jhair Studio. All rights reserved.

package request

import (
	"net/http"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// Lang extracts and validates the "lang" query parameter.
//
// An absent parameter resolves to the default locale; an explicitly invalid
// one is a client error, not a silent fallback.
func Lang(request *http.Request) (locale.Locale, error) {
	raw := request.URL.Query().Get("lang")
	if raw == "" {
		return locale.Default, nil
	}
	if !locale.IsSupported(raw) {
		return "", apperr.ValidationError("Unsupported language", apperr.FieldError{
			Field:   "lang",
			Message: "must be one of: en, es, nl",
		})
	}
	return locale.Parse(raw), nil
}
