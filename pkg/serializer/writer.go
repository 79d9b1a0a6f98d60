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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	// FormatJSON reads and writes JSON
	FormatJSON Format = "json"
	// FormatYAML reads and writes YAML
	FormatYAML Format = "yaml"
	// FormatTOML reads TOML; it cannot be written
	FormatTOML Format = "toml"
	// FormatTable writes a terminal table; it cannot be read
	FormatTable Format = "table"
)

// ErrNotTabular is returned when a value without a row layout is written
// as a table.
var ErrNotTabular = errors.New("value cannot be rendered as a table")

type encodeFunc func(w io.Writer, v any) error

// encoders lists the writable formats in the order SupportedFormats reports them.
var encoders = []struct {
	format Format
	encode encodeFunc
}{
	{FormatYAML, encodeYAML},
	{FormatJSON, encodeJSON},
	{FormatTable, encodeTable},
}

func encoderFor(f Format) (encodeFunc, bool) {
	for _, e := range encoders {
		if e.format == f {
			return e.encode, true
		}
	}
	return nil, false
}

// IsUnknown reports whether f is none of the known formats.
func (f Format) IsUnknown() bool {
	return !f.CanRead() && !f.CanWrite()
}

// CanWrite reports whether Writer supports f.
func (f Format) CanWrite() bool {
	_, ok := encoderFor(f)
	return ok
}

// CanRead reports whether Reader supports f.
func (f Format) CanRead() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the output formats accepted by Writer.
func SupportedFormats() []string {
	out := make([]string, 0, len(encoders))
	for _, e := range encoders {
		out = append(out, string(e.format))
	}
	return out
}

// Writer serializes values to an output in one format.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format Format
	encode encodeFunc
	output io.Writer
	closer io.Closer
}

func newWriter(format Format, output io.Writer, closer io.Closer) *Writer {
	encode, ok := encoderFor(format)
	if !ok {
		slog.Warn("unsupported output format, defaulting to JSON", "format", format)
		format, encode = FormatJSON, encodeJSON
	}
	return &Writer{format: format, encode: encode, output: output, closer: closer}
}

// NewWriter creates a Writer on output, or stdout when output is nil.
// Formats that cannot be written fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return newWriter(format, output, nil)
}

// NewFileWriterOrStdout creates a Writer to the file at path. An empty path
// or a file that cannot be created falls back to stdout.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", path)
		return NewStdoutWriter(format)
	}
	return newWriter(format, file, file)
}

// NewStdoutWriter creates a Writer to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// Format returns the format actually used, after any JSON fallback.
func (w *Writer) Format() Format {
	return w.format
}

// Close releases the output file, if any. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes v in the writer's format. File and stdout writes do not
// block on ctx.
func (w *Writer) Serialize(_ context.Context, v any) error {
	if err := w.encode(w.output, v); err != nil {
		return fmt.Errorf("failed to serialize to %s: %w", w.format, err)
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// encodeTable prints the header, a rule under each column name and one line
// per row. An empty table prints <empty> in place of rows.
func encodeTable(w io.Writer, v any) error {
	t, ok := v.(Tabular)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotTabular, v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := t.TableHeader()
	rules := make([]string, len(header))
	for i, h := range header {
		rules[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	rows := t.TableRows()
	if len(rows) == 0 {
		fmt.Fprintln(tw, "<empty>")
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
