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

// Package server provides the HTTP runtime shared by kitchen services.
//
// A Server owns routing, the middleware chain, health probes, Prometheus
// metrics and graceful shutdown. Domain handlers are supplied as a map of
// ServeMux patterns, so the package knows nothing about recipes.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("kitchend"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/categories": listCategories,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run also accepts background tasks (e.g. a catalog watcher) that share the
// server lifetime: the first task error stops everything.
//
// # Middleware
//
// Every registered handler is wrapped, outermost first, by: metrics,
// API version negotiation, request ID, panic recovery, rate limiting and
// request logging. /health, /ready and /metrics bypass the chain.
//
// Request ID Tracking:
//
//	Requests may carry an X-Request-Id header (UUID format). Missing or
//	malformed values are replaced with a generated ID, echoed in the
//	response header and in every error body.
//
// Rate Limiting:
//
//	A token bucket (golang.org/x/time/rate) guards all API routes.
//	Rejected requests get 429 with a Retry-After header.
//
// Panic Recovery:
//
//	A panic becomes a 500 envelope. A panic carrying a StructuredError, such
//	as a catalog desync, keeps its code. http.ErrAbortHandler is re-raised.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "UNKNOWN_CATEGORY",
//	  "message": "no catalog loaded for category",
//	  "details": {"category": "grain"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from the error code of a
// pkg/errors StructuredError (see HTTPStatusFromCode).
//
// # Configuration
//
// NewConfig reads ADDRESS, PORT, RATE_LIMIT, RATE_LIMIT_BURST and
// SHUTDOWN_TIMEOUT_SECONDS from the environment. Everything else defaults
// from pkg/defaults.
//
// # Readiness
//
// GET /ready returns 503 until Start has bound the listener and every
// check added with WithReadyCheck passes. kitchend registers one that fails
// while no catalog is loaded.
package server
