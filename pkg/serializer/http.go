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

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
)

// RespondJSON writes data as JSON with statusCode. The body is encoded before
// any header is sent so an encoding failure still yields a clean 500.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

const (
	HttpReaderUserAgent = "Kitchen-Loader/1.0"

	// HttpReaderMaxBodyBytes is the default cap on remote documents.
	HttpReaderMaxBodyBytes = 8 << 20

	// acceptDocuments lists the media types a remote catalog may be served as.
	acceptDocuments = "application/json, application/yaml, application/toml;q=0.9, text/plain;q=0.5"
)

// HttpReaderOption configures an HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches remote configuration and catalog documents.
type HttpReader struct {
	UserAgent          string
	InsecureSkipVerify bool
	MaxBytes           int64
	Client             *http.Client
}

func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithInsecureSkipVerify disables TLS verification on the default client.
func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithMaxBytes caps the accepted body size. Non-positive values keep the default.
func WithMaxBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		if n > 0 {
			r.MaxBytes = n
		}
	}
}

// WithClient replaces the default client. Transport options are not applied
// to a caller-supplied client.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates an HttpReader with timeouts from pkg/defaults.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent: HttpReaderUserAgent,
		MaxBytes:  HttpReaderMaxBodyBytes,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.Client == nil {
		r.Client = &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultHTTPTransport(r.InsecureSkipVerify),
		}
	}
	return r
}

func newDefaultHTTPTransport(insecure bool) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: insecure, //nolint:gosec // opt-in for local test servers
		},
	}
}

// Read fetches url and returns its body.
//
// Errors are structured: INVALID_REQUEST for an unusable url,
// SERVICE_UNAVAILABLE when the server cannot be reached, NOT_FOUND for a
// 404 and INTERNAL for other statuses or an oversized body.
func (r *HttpReader) Read(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, kerrors.New(kerrors.ErrCodeInvalidRequest, "url is empty")
	}
	if r.Client == nil {
		return nil, kerrors.New(kerrors.ErrCodeInternal, "http client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeInvalidRequest, "invalid url "+url, err)
	}
	req.Header.Set("Accept", acceptDocuments)
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, kerrors.WrapWithContext(kerrors.ErrCodeUnavailable, "fetch failed", err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, kerrors.NewWithContext(kerrors.ErrCodeNotFound, "remote document not found",
			map[string]any{"url": url})
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, kerrors.NewWithContext(kerrors.ErrCodeInternal,
			fmt.Sprintf("unexpected status %s", resp.Status), map[string]any{"url": url})
	}

	limit := r.MaxBytes
	if limit <= 0 {
		limit = HttpReaderMaxBodyBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeUnavailable, "read body of "+url, err)
	}
	if int64(len(data)) > limit {
		return nil, kerrors.NewWithContext(kerrors.ErrCodeInternal,
			fmt.Sprintf("remote document exceeds %d bytes", limit), map[string]any{"url": url})
	}
	return data, nil
}
