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
	"context"
	"net/http"
	"time"

	"github.com/gliderkitchen/kitchen/pkg/serializer"
)

// ReadyCheck reports an error while a dependency of the service cannot take
// traffic. Checks run on every GET /ready and must be quick.
type ReadyCheck func(ctx context.Context) error

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Service   string    `json:"service,omitempty" yaml:"service,omitempty"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (s *Server) probe(status, reason string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	}
}

// handleHealth answers GET /health. Liveness never depends on readiness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.probe("healthy", ""))
}

// handleReady answers GET /ready with 503 until the listener is up and every
// registered ReadyCheck passes.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		serializer.RespondJSON(w, http.StatusServiceUnavailable,
			s.probe("not_ready", "server is starting or shutting down"))
		return
	}

	for _, check := range s.readyChecks {
		if err := check(r.Context()); err != nil {
			serializer.RespondJSON(w, http.StatusServiceUnavailable, s.probe("not_ready", err.Error()))
			return
		}
	}

	serializer.RespondJSON(w, http.StatusOK, s.probe("ready", ""))
}
