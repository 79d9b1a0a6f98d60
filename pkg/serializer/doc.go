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

// Package serializer provides encoding and decoding of kitchen documents in
// multiple formats.
//
// # Overview
//
// The serializer package converts catalogs, configurations and predictions
// between Go values and their textual forms. Writers emit JSON, YAML or
// human-readable tables; readers decode JSON, YAML and TOML documents from
// files, HTTP(S) URLs or any io.Reader.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Used for API responses and scripting
//
// YAML:
//   - Human-readable, the default for the CLI
//   - gopkg.in/yaml.v3 package
//
// TOML:
//   - Read-only, accepted for configuration and catalog documents
//   - github.com/pelletier/go-toml/v2 package
//
// Table:
//   - Write-only terminal view
//   - Only values implementing Tabular can be written; anything else
//     fails with ErrNotTabular
//
// # Usage - Encoding
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	defer w.Close()
//	if err := w.Serialize(ctx, prediction); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	cfg, err := serializer.FromFile[kitchen.Config]("kitchen.toml")
//	if err != nil {
//	    return err
//	}
//
// Remote documents are fetched with HttpReader:
//
//	data, err := serializer.ReadSource(ctx, "https://example.com/catalog.yaml")
//	if err != nil {
//	    return err
//	}
//
// # HTTP Responses
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoding before writing headers so that an
// encoding failure still produces a clean 500 response.
package serializer
