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
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse with statusCode and counts it under code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code kerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	httpErrorsTotal.WithLabelValues(string(code)).Inc()
	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status and code. A StructuredError keeps
// its code, message and context; anything else becomes INTERNAL with
// fallbackMessage. Context deadlines map to TIMEOUT.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	var se *kerrors.StructuredError
	if errors.As(err, &se) {
		merged := mergeDetails(details, se.Context)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), merged)
		return
	}

	code := kerrors.ErrCodeInternal
	if errors.Is(err, context.DeadlineExceeded) {
		code = kerrors.ErrCodeTimeout
	}
	merged := details
	if err != nil {
		merged = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, HTTPStatusFromCode(code), code, fallbackMessage, retryableFromCode(code), merged)
}

// HTTPStatusFromCode returns the HTTP status for an error code.
func HTTPStatusFromCode(code kerrors.ErrorCode) int {
	switch code {
	case kerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case kerrors.ErrCodeNotFound, kerrors.ErrCodeUnknownCategory, kerrors.ErrCodeUnknownIngredient:
		return http.StatusNotFound
	case kerrors.ErrCodeAlreadyPresent, kerrors.ErrCodeNotPresent:
		return http.StatusConflict
	case kerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case kerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case kerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case kerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code kerrors.ErrorCode) bool {
	switch code {
	case kerrors.ErrCodeTimeout, kerrors.ErrCodeUnavailable,
		kerrors.ErrCodeRateLimitExceeded, kerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries layered over a.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
