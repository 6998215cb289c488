// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/quantumbooks/internal/platform/constants"
	"github.com/taibuivan/quantumbooks/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckCache pings Redis. Nil when Redis is not configured.
	CheckCache func(ctx context.Context) error

	// CatalogSize reports the number of books, surfaced for operators.
	CatalogSize func() int
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok", "app": constants.AppName, "version": constants.AppVersion})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 1)
	isSystemReady := true

	if handler.dependencies.CheckCache != nil {
		ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
		defer cancel()

		result := checkResult{Name: "redis", IsOK: true}
		if err := handler.dependencies.CheckCache(ctx); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.ErrorContext(ctx, "readiness_check_failed", slog.String("dependency", "redis"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	payload := map[string]any{
		"status": "ready",
		"checks": results,
	}
	if handler.dependencies.CatalogSize != nil {
		payload["books"] = handler.dependencies.CatalogSize()
	}

	if !isSystemReady {
		payload["status"] = "degraded"
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{Data: payload})
		return
	}
	respond.OK(writer, payload)
}
