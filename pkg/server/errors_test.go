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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code      kerrors.ErrorCode
		status    int
		retryable bool
	}{
		{kerrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{kerrors.ErrCodeNotFound, http.StatusNotFound, false},
		{kerrors.ErrCodeUnknownCategory, http.StatusNotFound, false},
		{kerrors.ErrCodeUnknownIngredient, http.StatusNotFound, false},
		{kerrors.ErrCodeAlreadyPresent, http.StatusConflict, false},
		{kerrors.ErrCodeNotPresent, http.StatusConflict, false},
		{kerrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{kerrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{kerrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{kerrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{kerrors.ErrCodeInternal, http.StatusInternalServerError, true},
		{kerrors.ErrCodeCatalogDesync, http.StatusInternalServerError, false},
		{kerrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromCode(tt.code))
			assert.Equal(t, tt.retryable, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	a := map[string]any{"category": "frames", "shared": "old"}
	b := map[string]any{"name": "A", "shared": "new"}
	got := mergeDetails(a, b)
	assert.Equal(t, map[string]any{"category": "frames", "name": "A", "shared": "new"}, got)
	assert.Equal(t, "old", a["shared"], "inputs must not be modified")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, kerrors.ErrCodeInvalidRequest, "bad request", false,
		map[string]any{"field": "with"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad request", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "with", resp.Details["field"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound,
		kerrors.ErrCodeNotFound, "missing", false, nil)

	resp := decodeError(t, w)
	assert.NotEmpty(t, resp.RequestID)
	assert.Nil(t, resp.Details)
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantDetail map[string]any
	}{
		{
			name: "structured error keeps code and context",
			err: kerrors.NewWithContext(kerrors.ErrCodeUnknownCategory,
				"no catalog loaded for category", map[string]any{"category": "frames"}),
			wantStatus: http.StatusNotFound,
			wantCode:   "UNKNOWN_CATEGORY",
			wantMsg:    "no catalog loaded for category",
			wantDetail: map[string]any{"category": "frames", "extra": "yes"},
		},
		{
			name: "wrapped structured error exposes cause",
			err: fmt.Errorf("handler: %w", kerrors.Wrap(kerrors.ErrCodeUnavailable,
				"catalog reload in progress", errors.New("locked"))),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
			wantMsg:    "catalog reload in progress",
			wantDetail: map[string]any{"error": "locked", "extra": "yes"},
		},
		{
			name:       "plain error falls back to internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    "fallback",
			wantDetail: map[string]any{"error": "boom", "extra": "yes"},
		},
		{
			name:       "deadline maps to timeout",
			err:        fmt.Errorf("predict: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "TIMEOUT",
			wantMsg:    "fallback",
			wantDetail: map[string]any{"error": "predict: context deadline exceeded", "extra": "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "fallback",
				map[string]any{"extra": "yes"})

			require.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantDetail, resp.Details)
		})
	}
}
