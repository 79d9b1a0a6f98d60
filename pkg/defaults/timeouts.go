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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// PredictHandlerTimeout bounds a single prediction request, including
	// the wait for the engine lock.
	PredictHandlerTimeout = 20 * time.Second

	// MutationHandlerTimeout bounds recipe add/remove/reset requests.
	MutationHandlerTimeout = 5 * time.Second

	// MaxRequestBodyBytes caps JSON request bodies.
	MaxRequestBodyBytes = 64 << 10
)

// Server listener and rate limit defaults.
const (
	// ServerPort is the default kitchend listen port.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for fetching remote configuration and catalogs.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Watch timing for catalog hot reload.
const (
	// WatchDebounce coalesces bursts of file events into one reload.
	WatchDebounce = 250 * time.Millisecond

	// WatchReloadTimeout bounds loading a changed catalog.
	WatchReloadTimeout = 10 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLILoadTimeout bounds loading configuration and catalog documents.
	CLILoadTimeout = 30 * time.Second
)

// Environment variables read by kitchend and the CLI.
const (
	EnvConfigPath      = "KITCHEN_CONFIG"
	EnvCatalogPath     = "KITCHEN_CATALOG"
	EnvAddress         = "ADDRESS"
	EnvPort            = "PORT"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)
