package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/internal/platform/apperr"
)

/*
TestConstructors_StatusAndCode verifies the HTTP status and machine code
assigned by each constructor.
*/
func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: apperr.NotFound("Blog"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unauthorized", err: apperr.Unauthorized("no"), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "forbidden", err: apperr.Forbidden("no"), wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "conflict", err: apperr.Conflict("dup"), wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "validation", err: apperr.ValidationError("bad"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "rate limited", err: apperr.RateLimited(30), wantStatus: http.StatusTooManyRequests, wantCode: "RATE_LIMITED"},
		{name: "payload too large", err: apperr.PayloadTooLarge("big"), wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "unprocessable", err: apperr.Unprocessable("ref"), wantStatus: http.StatusUnprocessableEntity, wantCode: "UNPROCESSABLE"},
		{name: "internal", err: apperr.Internal(errors.New("boom")), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "unavailable", err: apperr.ServiceUnavailable("maintenance"), wantStatus: http.StatusServiceUnavailable, wantCode: "SERVICE_UNAVAILABLE"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.wantStatus, test.err.HTTPStatus)
			assert.Equal(t, test.wantCode, test.err.Code)
		})
	}
}

func TestNotFound_MessageNamesResource(t *testing.T) {
	assert.Equal(t, "Blog not found", apperr.NotFound("Blog").Error())
}

/*
TestInternal_CauseNeverLeaks verifies that the wrapped cause stays reachable
for logging but is absent from the client-facing message.
*/
func TestInternal_CauseNeverLeaks(t *testing.T) {
	cause := errors.New("pq: column does not exist")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "pq:")
	assert.True(t, errors.Is(err, cause), "cause must stay in the chain")
}

func TestValidationError_Details(t *testing.T) {
	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "email", Message: "must be a valid email"},
		apperr.FieldError{Field: "name", Message: "is required"},
	)

	require.Len(t, err.Details, 2)
	assert.Equal(t, "email", err.Details[0].Field)
}

func TestAs_ExtractsFromWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("listing blogs: %w", apperr.Conflict("slug taken"))

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, http.StatusConflict, extracted.HTTPStatus)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
