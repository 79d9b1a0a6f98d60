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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// extensions maps lowercase file extensions to formats.
var extensions = map[string]Format{
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
	".table": FormatTable,
	".txt":   FormatTable,
}

// FormatFromPath determines the format from a file or URL extension.
// Matching is case-insensitive and ignores URL query strings and fragments.
// Unknown extensions resolve to FormatJSON.
func FormatFromPath(filePath string) Format {
	p := strings.ToLower(filePath)
	if IsRemote(p) {
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
	}
	if f, ok := extensions[path.Ext(p)]; ok {
		return f
	}
	slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
	return FormatJSON
}

// IsRemote reports whether path is an HTTP or HTTPS URL.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

type decodeFunc func(r io.Reader, v any) error

var decoders = map[Format]decodeFunc{
	FormatJSON: func(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) },
	FormatYAML: func(r io.Reader, v any) error { return yaml.NewDecoder(r).Decode(v) },
	FormatTOML: func(r io.Reader, v any) error { return toml.NewDecoder(r).Decode(v) },
}

// Reader decodes one document from an io.Reader.
type Reader struct {
	format Format
	decode decodeFunc
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader on input. If input implements io.Closer it is
// closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	decode, ok := decoders[format]
	switch {
	case ok:
	case format.IsUnknown():
		return nil, fmt.Errorf("unknown format: %s", format)
	default:
		return nil, fmt.Errorf("%s format does not support deserialization", format)
	}

	r := &Reader{format: format, decode: decode, input: input}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Deserialize decodes the input into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New("reader is nil")
	}
	if r.input == nil {
		return errors.New("input source is nil")
	}
	if err := r.decode(r.input, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", strings.ToUpper(string(r.format)), err)
	}
	return nil
}

// Close releases the input if it is closeable. Safe on a nil Reader and
// when called more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile reads the document at path, a local file or an HTTP(S) URL, into
// a new T. The format comes from the path extension.
//
//	cfg, err := serializer.FromFile[kitchen.Config]("kitchen.yaml")
func FromFile[T any](path string) (*T, error) {
	data, err := ReadSource(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	v, err := FromContent[T](data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}
	slog.Debug("loaded object from file", slog.String("path", path))
	return v, nil
}

// FromContent decodes data in format into a new T.
func FromContent[T any](data []byte, format Format) (*T, error) {
	r, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadSource returns the raw bytes at path, fetching HTTP and HTTPS URLs
// with a default HttpReader bound to ctx.
func ReadSource(ctx context.Context, path string) ([]byte, error) {
	if IsRemote(path) {
		return NewHttpReader().Read(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
