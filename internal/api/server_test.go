// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quantumbooks/internal/api"
	"github.com/taibuivan/quantumbooks/internal/core/book"
	"github.com/taibuivan/quantumbooks/internal/platform/clock"
	"github.com/taibuivan/quantumbooks/internal/platform/config"
	"github.com/taibuivan/quantumbooks/internal/platform/middleware"
	"github.com/taibuivan/quantumbooks/internal/platform/sec"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newServer(t *testing.T, cfg *config.Config, verifier middleware.TokenVerifier, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	catalog := book.NewCatalog(book.Fulfillment{})
	service := book.NewService(catalog, clock.Year(2025), quiet, nil)
	if deps.CatalogSize == nil {
		deps.CatalogSize = catalog.Len
	}
	liveness, readiness := api.NewHealthHandlers(deps, quiet)

	server := api.NewServer(ctx, cfg, quiet, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Book:      book.NewHandler(service),
	})
	return server.Handler()
}

func baseConfig() *config.Config {
	return &config.Config{
		ServerPort:     "0",
		Environment:    "production",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
}

func send(handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	writer := httptest.NewRecorder()
	handler.ServeHTTP(writer, request)
	return writer
}

/*
TestServer_Health verifies the liveness and readiness endpoints.
*/
func TestServer_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handler := newServer(t, baseConfig(), nil, api.HealthDependencies{
			CheckCache: func(context.Context) error { return nil },
		})

		assert.Equal(t, http.StatusOK, send(handler, http.MethodGet, "/health", "", "").Code)

		writer := send(handler, http.MethodGet, "/ready", "", "")
		require.Equal(t, http.StatusOK, writer.Code)
		assert.Contains(t, writer.Body.String(), `"status":"ready"`)
		assert.Contains(t, writer.Body.String(), `"books":0`)
	})

	t.Run("redis down", func(t *testing.T) {
		handler := newServer(t, baseConfig(), nil, api.HealthDependencies{
			CheckCache: func(context.Context) error { return errors.New("connection refused") },
		})

		writer := send(handler, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, writer.Code)
		assert.Contains(t, writer.Body.String(), `"status":"degraded"`)
	})
}

/*
TestServer_StaffFlow creates a book with a staff token and buys it anonymously.
*/
func TestServer_StaffFlow(t *testing.T) {
	cfg := baseConfig()
	cfg.StaffTokenSecret = "s3cret"

	tokens, err := sec.NewTokenService(cfg.StaffTokenSecret, "quantumbooks")
	require.NoError(t, err)
	staffToken, err := tokens.GenerateToken("alice", sec.RoleStaff, time.Hour)
	require.NoError(t, err)
	customerToken, err := tokens.GenerateToken("bob", sec.RoleCustomer, time.Hour)
	require.NoError(t, err)

	handler := newServer(t, cfg, tokens, api.HealthDependencies{})
	draft := `{"kind":"physical","isbn":"111","title":"Java 101","author":"James","year":2015,"price":100,"stock":10}`

	assert.Equal(t, http.StatusUnauthorized, send(handler, http.MethodPost, "/api/v1/books", draft, "").Code)
	assert.Equal(t, http.StatusForbidden, send(handler, http.MethodPost, "/api/v1/books", draft, customerToken).Code)
	assert.Equal(t, http.StatusUnauthorized, send(handler, http.MethodPost, "/api/v1/books", draft, "forged").Code)
	require.Equal(t, http.StatusCreated, send(handler, http.MethodPost, "/api/v1/books", draft, staffToken).Code)

	writer := send(handler, http.MethodPost, "/api/v1/books/111/purchase", `{"quantity":2,"address":"Cairo"}`, "")
	require.Equal(t, http.StatusOK, writer.Code)

	var envelope struct {
		Data book.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &envelope))
	assert.Equal(t, 200.0, envelope.Data.Amount)
	assert.NotEmpty(t, writer.Header().Get("X-Request-ID"))
}

/*
TestServer_StaffWithoutSecret verifies the guard when no secret is configured.
*/
func TestServer_StaffWithoutSecret(t *testing.T) {
	draft := `{"kind":"digital","isbn":"222","title":"Python Guide","year":2020,"price":50}`

	production := newServer(t, baseConfig(), nil, api.HealthDependencies{})
	assert.Equal(t, http.StatusUnauthorized, send(production, http.MethodPost, "/api/v1/books", draft, "").Code)

	devConfig := baseConfig()
	devConfig.Environment = "development"
	development := newServer(t, devConfig, nil, api.HealthDependencies{})
	assert.Equal(t, http.StatusCreated, send(development, http.MethodPost, "/api/v1/books", draft, "").Code)
}
