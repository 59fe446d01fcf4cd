// Copyright (c) 2026 Jhair Studio. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhairstudio/jhair-server/internal/platform/ctxutil"
	"github.com/jhairstudio/jhair-server/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies logger injection and the default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// 1. Without injection, the default logger is returned
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject a custom logger and retrieve it
	customLogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, customLogger)
	assert.Equal(t, customLogger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies auth claims injection and anonymous fallback.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context yields nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject claims and retrieve them
	claims := &sec.AuthClaims{UserID: "user-1", Username: "jhair", Role: "admin"}
	ctx = ctxutil.WithAuthUser(ctx, claims)
	assert.Equal(t, claims, ctxutil.GetAuthUser(ctx))
}
