// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/quantumbooks/internal/api"
	"github.com/taibuivan/quantumbooks/internal/core/book"
	"github.com/taibuivan/quantumbooks/internal/demo"
	"github.com/taibuivan/quantumbooks/internal/fulfillment"
	"github.com/taibuivan/quantumbooks/internal/platform/clock"
	"github.com/taibuivan/quantumbooks/internal/platform/config"
	"github.com/taibuivan/quantumbooks/internal/platform/constants"
	"github.com/taibuivan/quantumbooks/internal/platform/middleware"
	redisstore "github.com/taibuivan/quantumbooks/internal/platform/redis"
	"github.com/taibuivan/quantumbooks/internal/platform/sec"
	"github.com/taibuivan/quantumbooks/internal/platform/telemetry"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Serve loads configuration from the environment and starts the HTTP API.

Environment:
  SERVER_PORT, ENVIRONMENT, DEBUG, REDIS_URL, FULFILLMENT_STREAM,
  STAFF_TOKEN_SECRET, SEED_DEMO_DATA, RATE_LIMIT_RPS, RATE_LIMIT_BURST,
  OTEL_EXPORTER_OTLP_ENDPOINT`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

// serve runs the startup sequence:
//
//  1. Logger and configuration.
//  2. Tracing (optional).
//  3. Redis (optional).
//  4. Notifiers, catalog and service.
//  5. HTTP server with graceful shutdown.
func serve(parent context.Context) error {
	// ── 1. Logger & Configuration ─────────────────────────────────────────
	log := newLogger(os.Stdout, slog.LevelInfo, true)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Debug {
		log = newLogger(os.Stdout, slog.LevelDebug, true)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// The root context lives until SIGINT/SIGTERM and stops background work.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(ctx, 30*time.Second)
	defer startupCancel()

	// ── 2. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Setup(startupCtx, cfg.OTLPEndpoint, constants.AppName, constants.AppVersion, log)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("tracing_shutdown_failed", slog.Any("error", err))
		}
	}()

	// ── 3. Notifiers (Redis optional) ─────────────────────────────────────
	notifiers := fulfillment.Tee{fulfillment.NewConsole(os.Stdout, log)}
	health := api.HealthDependencies{}

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		notifiers = append(notifiers, fulfillment.NewRedisStream(rdb, cfg.FulfillmentStream, clock.System{}, log))
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	catalog := book.NewCatalog(book.Fulfillment{Shipper: notifiers, Mailer: notifiers})
	service := book.NewService(catalog, clock.System{}, log, nil)
	health.CatalogSize = catalog.Len

	if cfg.SeedDemoData {
		if err := demo.Seed(ctx, service, os.Stdout); err != nil {
			return err
		}
	}

	// A nil interface, not a nil *TokenService, rejects every bearer token.
	var verifier middleware.TokenVerifier
	if cfg.StaffTokenSecret != "" {
		tokens, err := sec.NewTokenService(cfg.StaffTokenSecret, constants.AuthIssuer)
		if err != nil {
			return err
		}
		verifier = tokens
	}

	liveness, readiness := api.NewHealthHandlers(health, log)
	server := api.NewServer(ctx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Book:      book.NewHandler(service),
	})

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		return fmt.Errorf("serve: %w", err)
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}

	log.Info("server_stopped_cleanly")
	return nil
}
