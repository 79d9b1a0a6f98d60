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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationsWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		got    time.Duration
		lo, hi time.Duration
	}{
		{"PredictHandlerTimeout", PredictHandlerTimeout, 5 * time.Second, time.Minute},
		{"MutationHandlerTimeout", MutationHandlerTimeout, time.Second, 30 * time.Second},
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, time.Minute},
		{"HTTPConnectTimeout", HTTPConnectTimeout, time.Second, 15 * time.Second},
		{"WatchDebounce", WatchDebounce, 50 * time.Millisecond, 2 * time.Second},
		{"CLILoadTimeout", CLILoadTimeout, 5 * time.Second, 2 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, tt.got, tt.lo)
			assert.LessOrEqual(t, tt.got, tt.hi)
		})
	}
}

// A handler that gives up must still be able to write its 504.
func TestHandlerDeadlinesPrecedeWriteTimeout(t *testing.T) {
	assert.Less(t, PredictHandlerTimeout, ServerWriteTimeout)
	assert.Less(t, MutationHandlerTimeout, PredictHandlerTimeout)
}

func TestServerTimeouts(t *testing.T) {
	assert.Less(t, ServerReadHeaderTimeout, ServerReadTimeout)
	assert.LessOrEqual(t, ServerReadTimeout, ServerWriteTimeout)
	assert.GreaterOrEqual(t, ServerIdleTimeout, ServerWriteTimeout)
}

func TestClientTimeouts(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"connect":         HTTPConnectTimeout,
		"tls handshake":   HTTPTLSHandshakeTimeout,
		"response header": HTTPResponseHeaderTimeout,
	} {
		assert.Less(t, d, HTTPClientTimeout, name)
	}
}

func TestWatchTiming(t *testing.T) {
	assert.Greater(t, WatchReloadTimeout, WatchDebounce)
}

func TestServerLimits(t *testing.T) {
	assert.Greater(t, ServerRateLimitBurst, 0)
	assert.GreaterOrEqual(t, ServerRateLimitBurst, ServerRateLimit)
	assert.Greater(t, MaxRequestBodyBytes, 0)
}
