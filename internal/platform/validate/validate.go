// Copyright (c) 2026 Jhair Studio. All rights reserved.

// Package validate provides a lightweight fluent validator for request payloads.
//
// # Usage
//
//	v := &validate.Validator{}
//	err := v.
//	    Required("username", input.Username).
//	    MaxLen("username", input.Username, 100).
//	    Err()
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
)

// Validator accumulates field-level validation failures across checks.
// The zero value is ready to use.
type Validator struct {
	fieldErrors []apperr.FieldError
}

// addError appends a failure for the named field.
func (v *Validator) addError(field, message string) {
	v.fieldErrors = append(v.fieldErrors, apperr.FieldError{
		Field:   field,
		Message: message,
	})
}

// Required fails when the value is empty after trimming whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.addError(field, "is required")
	}
	return v
}

// MaxLen fails when the value exceeds the given number of characters.
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	if len([]rune(value)) > limit {
		v.addError(field, fmt.Sprintf("must be at most %d characters", limit))
	}
	return v
}

// MinLen fails when the value is shorter than the given number of characters.
func (v *Validator) MinLen(field, value string, limit int) *Validator {
	if len([]rune(value)) < limit {
		v.addError(field, fmt.Sprintf("must be at least %d characters", limit))
	}
	return v
}

// Email fails when the value is not a parseable email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.addError(field, "must be a valid email address")
	}
	return v
}

// OneOf fails when a non-empty value is not among the allowed options.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if value == "" {
		return v
	}
	for _, option := range allowed {
		if value == option {
			return v
		}
	}
	v.addError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Range fails when the numeric value falls outside [minimum, maximum].
func (v *Validator) Range(field string, value, minimum, maximum int) *Validator {
	if value < minimum || value > maximum {
		v.addError(field, fmt.Sprintf("must be between %d and %d", minimum, maximum))
	}
	return v
}

// Check fails with the given message when the condition is false.
func (v *Validator) Check(condition bool, field, message string) *Validator {
	if !condition {
		v.addError(field, message)
	}
	return v
}

// HasErrors reports whether any check has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.fieldErrors) > 0
}

// Err returns nil when valid, or a 400 validation error carrying all
// accumulated field failures.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.fieldErrors...)
}
