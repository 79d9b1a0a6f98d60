// Copyright (c) 2025, Glider Kitchen Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	Name    string
	Version string

	// Handlers maps ServeMux patterns (e.g. "GET /v1/categories") to
	// handlers. Each is wrapped in the middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns the defaults from pkg/defaults with environment
// overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig applies ADDRESS, PORT, RATE_LIMIT, RATE_LIMIT_BURST and
// SHUTDOWN_TIMEOUT_SECONDS over the defaults. Invalid values are logged and
// ignored.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if addr, ok := os.LookupEnv(defaults.EnvAddress); ok {
		cfg.Address = addr
	}
	if port, ok := envInt(defaults.EnvPort, 1, 65535); ok {
		cfg.Port = port
	}
	if limit, ok := envInt(defaults.EnvRateLimit, 1, 1<<20); ok {
		cfg.RateLimit = rate.Limit(limit)
	}
	if burst, ok := envInt(defaults.EnvRateLimitBurst, 1, 1<<20); ok {
		cfg.RateLimitBurst = burst
	}
	// Match the orchestrator's termination grace period.
	if seconds, ok := envInt(defaults.EnvShutdownTimeout, 1, 3600); ok {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	return cfg
}

// envInt reads an integer in [lo, hi] from the environment variable name.
func envInt(name string, lo, hi int) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		slog.Warn("ignoring invalid environment value", "name", name, "value", raw)
		return 0, false
	}
	return v, true
}
