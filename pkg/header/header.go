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

package header

import (
	"time"
)

// APIVersion is the schema version of all kitchen documents.
const APIVersion = "kitchen.glider.dev/v1"

// Metadata keys set by NewFor.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataSource    = "source"
)

// Kind names the type of a kitchen document.
type Kind string

const (
	KindCatalog    Kind = "Catalog"
	KindRecipe     Kind = "Recipe"
	KindRatio      Kind = "Ratio"
	KindPrediction Kind = "Prediction"
	KindChoosable  Kind = "Choosable"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the kinds above.
func (k Kind) IsValid() bool {
	switch k {
	case KindCatalog, KindRecipe, KindRatio, KindPrediction, KindChoosable:
		return true
	default:
		return false
	}
}

// Header carries the kind, schema version and metadata of a document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option adjusts a Header built by NewFor.
type Option func(*Header)

// WithMetadata sets one metadata entry.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		h.Set(key, value)
	}
}

// WithTimestamp replaces the generation time, mostly for stable test output.
func WithTimestamp(t time.Time) Option {
	return func(h *Header) {
		h.Set(MetadataTimestamp, t.UTC().Format(time.RFC3339))
	}
}

// NewFor returns a header of kind at APIVersion stamped with the current UTC
// time and, when non-empty, the tool version.
func NewFor(kind Kind, version string, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Set records a metadata entry. Empty values remove the key.
func (h *Header) Set(key, value string) {
	if value == "" {
		delete(h.Metadata, key)
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}
