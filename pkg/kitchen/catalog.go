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

package kitchen

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strings"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
)

// Catalog maps ingredient names of one category to their ratio.
// A Catalog is immutable once built; reloading replaces it.
type Catalog struct {
	ratios map[string]float64
	names  []string
}

// NewCatalog builds a Catalog from a name to ratio mapping.
// Names must be non-empty and must not contain the key separator; ratios
// must be finite.
func NewCatalog(ratios map[string]float64) (*Catalog, error) {
	c := &Catalog{
		ratios: make(map[string]float64, len(ratios)),
		names:  make([]string, 0, len(ratios)),
	}
	for name, ratio := range ratios {
		if strings.TrimSpace(name) == "" {
			return nil, kerrors.New(kerrors.ErrCodeInvalidRequest, "ingredient name cannot be empty")
		}
		if strings.Contains(name, keySeparator) {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
				"ingredient name contains a reserved character", map[string]any{
					"ingredient": name,
				})
		}
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
				"ingredient ratio must be finite", map[string]any{
					"ingredient": name,
					"ratio":      ratio,
				})
		}
		c.ratios[name] = ratio
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c, nil
}

// Lookup returns the ratio of name and whether it is part of the catalog.
func (c *Catalog) Lookup(name string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	r, ok := c.ratios[name]
	return r, ok
}

// Has reports whether name is part of the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns the ingredient names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return []string{}
	}
	return slices.Clone(c.names)
}

// Len returns the number of ingredients.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Ratios returns a copy of the name to ratio mapping.
func (c *Catalog) Ratios() map[string]float64 {
	if c == nil {
		return map[string]float64{}
	}
	return maps.Clone(c.ratios)
}

// MarshalJSON encodes the catalog as its name to ratio mapping.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ratios)
}

// MarshalYAML encodes the catalog as its name to ratio mapping.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.ratios, nil
}
