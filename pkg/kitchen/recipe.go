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
	"maps"
	"slices"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
)

// Recipe is a candidate ingredient set for one category with its cached
// mean ratio. The ratio always matches the ingredient set: a failed
// mutation leaves both untouched.
type Recipe struct {
	category    Category
	ingredients map[string]struct{}
	ratio       float64
}

// Summary is a read-only view of a recipe used in results and output.
type Summary struct {
	Category    Category `json:"category" yaml:"category"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Ratio       float64  `json:"ratio" yaml:"ratio"`
}

// NewRecipe returns an empty recipe for category.
func NewRecipe(category Category) *Recipe {
	return &Recipe{
		category:    category,
		ingredients: make(map[string]struct{}),
	}
}

// Category returns the recipe's category.
func (r *Recipe) Category() Category {
	return r.category
}

// Ratio returns the mean ratio of the ingredients, zero when empty.
func (r *Recipe) Ratio() float64 {
	return r.ratio
}

// Len returns the number of ingredients.
func (r *Recipe) Len() int {
	return len(r.ingredients)
}

// Has reports whether name is part of the recipe.
func (r *Recipe) Has(name string) bool {
	_, ok := r.ingredients[name]
	return ok
}

// Ingredients returns the ingredient names in sorted order.
func (r *Recipe) Ingredients() []string {
	names := slices.Sorted(maps.Keys(r.ingredients))
	if names == nil {
		return []string{}
	}
	return names
}

// Key returns the canonical identity of the ingredient set.
func (r *Recipe) Key() Key {
	return KeyOf(r.Ingredients()...)
}

// Equal reports whether both recipes hold the same ingredient set.
// The cached ratio is not compared.
func (r *Recipe) Equal(o *Recipe) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Key() == o.Key()
}

// Clone returns an independent copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	return &Recipe{
		category:    r.category,
		ingredients: maps.Clone(r.ingredients),
		ratio:       r.ratio,
	}
}

// Summary returns a read-only view of the recipe.
func (r *Recipe) Summary() Summary {
	return Summary{
		Category:    r.category,
		Ingredients: r.Ingredients(),
		Ratio:       r.ratio,
	}
}

// Add inserts name and recomputes the ratio.
// It fails with ErrAlreadyPresent when name is already a member. A member
// missing from catalog is a contract violation and panics with a
// CATALOG_DESYNC StructuredError.
func (r *Recipe) Add(name string, catalog *Catalog) error {
	if r.Has(name) {
		return kerrors.NewWithContext(kerrors.ErrCodeAlreadyPresent,
			name+" is already part of the recipe", map[string]any{
				"category":   r.category,
				"ingredient": name,
			})
	}
	next := maps.Clone(r.ingredients)
	next[name] = struct{}{}
	r.commit(next, catalog)
	return nil
}

// Remove deletes name and recomputes the ratio.
// It fails with ErrNotPresent when name is not a member.
func (r *Recipe) Remove(name string, catalog *Catalog) error {
	if !r.Has(name) {
		return kerrors.NewWithContext(kerrors.ErrCodeNotPresent,
			name+" is not part of the recipe", map[string]any{
				"category":   r.category,
				"ingredient": name,
			})
	}
	next := maps.Clone(r.ingredients)
	delete(next, name)
	r.commit(next, catalog)
	return nil
}

func (r *Recipe) commit(next map[string]struct{}, catalog *Catalog) {
	ratio, err := ComputeRatio(slices.Collect(maps.Keys(next)), catalog)
	if err != nil {
		panic(err)
	}
	r.ingredients = next
	r.ratio = ratio
}

// ComputeRatio returns the mean catalog ratio of names, zero when empty.
// Ratios are summed in sorted-name order so the result does not depend on
// the order of names. A name missing from catalog yields a CATALOG_DESYNC
// error.
func ComputeRatio(names []string, catalog *Catalog) (float64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	var sum float64
	for _, name := range sorted {
		ratio, ok := catalog.Lookup(name)
		if !ok {
			return 0, kerrors.NewWithContext(kerrors.ErrCodeCatalogDesync,
				"ingredient "+name+" missing from catalog", map[string]any{
					"ingredient": name,
				})
		}
		sum += ratio
	}
	return sum / float64(len(sorted)), nil
}
