// Copyright (c) 2026 Jhair Studio. All rights reserved.

// Package request provides HTTP request parsing and decoding helpers.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
	"github.com/jhairstudio/jhair-server/pkg/uuid"
)

// maxBodyBytes limits JSON request bodies to 1MB to prevent abuse.
const maxBodyBytes = 1 << 20

// DecodeJSON reads and decodes a JSON request body into the destination struct.
// It enforces a size limit and rejects unknown fields for strictness.
func DecodeJSON(writer http.ResponseWriter, request *http.Request, destination interface{}) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(destination); err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return apperr.PayloadTooLarge("Request body exceeds the allowed size")
		case errors.Is(err, io.EOF):
			return apperr.ValidationError("Request body must not be empty")
		default:
			return apperr.ValidationError("Request body contains invalid JSON")
		}
	}

	// Reject trailing garbage after the first JSON value.
	if decoder.More() {
		return apperr.ValidationError("Request body must contain a single JSON object")
	}

	return nil
}

// URLParamUUID extracts and validates a UUID path parameter from the route.
func URLParamUUID(request *http.Request, name string) (string, error) {
	rawValue := chi.URLParam(request, name)
	if !uuid.IsValid(rawValue) {
		return "", apperr.ValidationError("Invalid identifier in URL", apperr.FieldError{Field: name, Message: "must be a valid UUID"})
	}
	return rawValue, nil
}

// QueryString returns a trimmed query parameter, or the fallback when absent.
func QueryString(request *http.Request, name, fallback string) string {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return fallback
	}
	return value
}

// QueryInt returns an integer query parameter, or the fallback when absent or malformed.
func QueryInt(request *http.Request, name string, fallback int) int {
	rawValue := request.URL.Query().Get(name)
	if rawValue == "" {
		return fallback
	}
	parsedValue, err := strconv.Atoi(rawValue)
	if err != nil {
		return fallback
	}
	return parsedValue
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// Returns an empty string when the header is missing or malformed.
func BearerToken(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authorizationHeader) <= len(prefix) || !strings.EqualFold(authorizationHeader[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(authorizationHeader[len(prefix):])
}
