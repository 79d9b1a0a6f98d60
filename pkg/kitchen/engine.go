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
	"log/slog"
	"maps"
	"slices"
)

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithCatalog returns an Option that loads catalog for category.
func WithCatalog(category Category, catalog *Catalog) Option {
	return func(e *Engine) {
		e.catalogs[category] = catalog
	}
}

// WithCatalogs returns an Option that loads every catalog of the mapping.
func WithCatalogs(catalogs map[Category]*Catalog) Option {
	return func(e *Engine) {
		maps.Copy(e.catalogs, catalogs)
	}
}

// Engine owns the configuration, one catalog per category and at most one
// current recipe per category.
//
// Engine is not safe for concurrent use. Hosts sharing an engine must hold
// an exclusive lock around mutations, reloads and Predict.
type Engine struct {
	config   Config
	catalogs map[Category]*Catalog
	recipes  map[Category]*Recipe
}

// NewEngine creates an Engine with the given bounds.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		config:   cfg,
		catalogs: make(map[Category]*Catalog),
		recipes:  make(map[Category]*Recipe),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the acceptance bounds.
func (e *Engine) Config() Config {
	return e.config
}

// Categories returns the categories with a loaded catalog, sorted.
func (e *Engine) Categories() []Category {
	return slices.Sorted(maps.Keys(e.catalogs))
}

// LoadCatalog replaces the catalog of category and drops its current recipe.
func (e *Engine) LoadCatalog(category Category, catalog *Catalog) {
	e.catalogs[category] = catalog
	delete(e.recipes, category)
	slog.Debug("catalog loaded", "category", category, "ingredients", catalog.Len())
}

// LoadCatalogs replaces all catalogs at once. Categories absent from
// catalogs are unloaded and every current recipe is dropped.
func (e *Engine) LoadCatalogs(catalogs map[Category]*Catalog) {
	e.catalogs = maps.Clone(catalogs)
	if e.catalogs == nil {
		e.catalogs = make(map[Category]*Catalog)
	}
	e.recipes = make(map[Category]*Recipe)
	slog.Debug("catalogs loaded", "categories", len(e.catalogs))
}

func (e *Engine) catalogFor(category Category) (*Catalog, error) {
	c, ok := e.catalogs[category]
	if !ok {
		return nil, unknownCategory(category)
	}
	return c, nil
}

// Lookup returns the ratio of name in the category catalog.
func (e *Engine) Lookup(category Category, name string) (float64, error) {
	c, err := e.catalogFor(category)
	if err != nil {
		return 0, err
	}
	r, ok := c.Lookup(name)
	if !ok {
		return 0, unknownIngredient(category, name)
	}
	return r, nil
}

// IngredientsCatalog returns the sorted ingredient names of category.
func (e *Engine) IngredientsCatalog(category Category) ([]string, error) {
	c, err := e.catalogFor(category)
	if err != nil {
		return nil, err
	}
	return c.Names(), nil
}

// Catalog returns the catalog loaded for category.
func (e *Engine) Catalog(category Category) (*Catalog, error) {
	return e.catalogFor(category)
}

// AddIngredient adds name to the current recipe of category, creating the
// recipe on first use.
func (e *Engine) AddIngredient(category Category, name string) error {
	c, err := e.catalogFor(category)
	if err != nil {
		return err
	}
	if !c.Has(name) {
		return unknownIngredient(category, name)
	}
	r, ok := e.recipes[category]
	if !ok {
		r = NewRecipe(category)
		e.recipes[category] = r
	}
	if err := r.Add(name, c); err != nil {
		return err
	}
	recipeMutations.WithLabelValues(category.String(), "add").Inc()
	return nil
}

// RemoveIngredient removes name from the current recipe of category.
func (e *Engine) RemoveIngredient(category Category, name string) error {
	c, err := e.catalogFor(category)
	if err != nil {
		return err
	}
	if err := e.recipeOrEmpty(category).Remove(name, c); err != nil {
		return err
	}
	recipeMutations.WithLabelValues(category.String(), "remove").Inc()
	return nil
}

// Reset drops the current recipe of category. It is a no-op for categories
// without a recipe.
func (e *Engine) Reset(category Category) error {
	if _, err := e.catalogFor(category); err != nil {
		return err
	}
	delete(e.recipes, category)
	return nil
}

// Ratio returns the current ratio of category, zero when no recipe exists.
func (e *Engine) Ratio(category Category) float64 {
	r, ok := e.recipes[category]
	if !ok {
		return 0
	}
	return r.Ratio()
}

// IsValid reports whether the current ratio of category lies within the
// configured ratio range. A category without a recipe has ratio zero and is
// valid iff zero is in range.
func (e *Engine) IsValid(category Category) bool {
	return e.config.RatioInRange(e.Ratio(category))
}

// CurrentRecipe returns a copy of the current recipe of category and
// whether one exists.
func (e *Engine) CurrentRecipe(category Category) (*Recipe, bool) {
	r, ok := e.recipes[category]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

func (e *Engine) recipeOrEmpty(category Category) *Recipe {
	if r, ok := e.recipes[category]; ok {
		return r
	}
	return NewRecipe(category)
}
