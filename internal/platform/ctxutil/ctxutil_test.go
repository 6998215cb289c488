// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quantumbooks/internal/platform/ctxutil"
	"github.com/taibuivan/quantumbooks/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the per-request logger and its fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Claims verifies that staff claims travel through the context.
*/
func TestContext_Claims(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetClaims(ctx))

	claims := &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
		Role:             sec.RoleStaff,
	}
	ctx = ctxutil.WithClaims(ctx, claims)

	retrieved := ctxutil.GetClaims(ctx)
	if assert.NotNil(t, retrieved) {
		assert.Equal(t, "alice", retrieved.Subject)
		assert.Equal(t, sec.RoleStaff, retrieved.Role)
	}
}
