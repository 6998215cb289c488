// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Every setting has a default, so the server starts with an empty environment:
no Redis, console notifications only, and open staff routes in development.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the bookstore server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-Value store (Redis). Empty disables the stream notifier and the readiness check.
	RedisURL string `env:"REDIS_URL"`

	// FulfillmentStream is the Redis stream shipping and email notices are appended to.
	FulfillmentStream string `env:"FULFILLMENT_STREAM" envDefault:"quantumbooks:fulfillment"`

	// StaffTokenSecret signs and verifies staff bearer tokens (HS256).
	StaffTokenSecret string `env:"STAFF_TOKEN_SECRET"`

	// SeedDemoData loads the three demo books at startup.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// OTLPEndpoint enables OpenTelemetry trace export over OTLP/HTTP (host:port).
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
