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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeUnknownCategory indicates no catalog is loaded for a category.
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"
	// ErrCodeUnknownIngredient indicates an ingredient is not part of its category catalog.
	ErrCodeUnknownIngredient ErrorCode = "UNKNOWN_INGREDIENT"
	// ErrCodeAlreadyPresent indicates an ingredient is already part of the recipe.
	ErrCodeAlreadyPresent ErrorCode = "ALREADY_PRESENT"
	// ErrCodeNotPresent indicates an ingredient is not part of the recipe.
	ErrCodeNotPresent ErrorCode = "NOT_PRESENT"
	// ErrCodeCatalogDesync indicates a recipe member is missing from its catalog.
	// This is a contract violation and is raised as a panic.
	ErrCodeCatalogDesync ErrorCode = "CATALOG_DESYNC"

	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates an operation exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// StructuredError carries a code for programmatic handling, a message for
// people, an optional cause and optional key/value context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code.
// Sentinels such as kitchen.ErrUnknownCategory therefore match any error
// carrying that code, regardless of message or context.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	return ok && e.Code == t.Code
}

// With returns a copy of e with key set in its context. e is not modified,
// so sentinels can be decorated per call.
func (e *StructuredError) With(key string, value any) *StructuredError {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return build(e.Code, e.Message, e.Cause, ctx)
}

func build(code ErrorCode, message string, cause error, ctx map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: ctx}
}

// New creates a StructuredError.
func New(code ErrorCode, message string) *StructuredError {
	return build(code, message, nil, nil)
}

// NewWithContext creates a StructuredError with context.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return build(code, message, nil, context)
}

// Wrap attaches a code and message to cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return build(code, message, cause, nil)
}

// WrapWithContext attaches a code, message and context to cause.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return build(code, message, cause, context)
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err's chain holds a StructuredError with code.
func IsCode(err error, code ErrorCode) bool {
	var se *StructuredError
	return stderrors.As(err, &se) && se.Code == code
}

// Recoverable reports whether a caller can continue after an error with
// code. Only a catalog desync leaves the engine in a state it cannot trust.
func Recoverable(code ErrorCode) bool {
	return code != ErrCodeCatalogDesync
}
