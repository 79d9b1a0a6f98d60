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

package loader

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
)

// ingredientsKey selects the triples shape of a catalog document.
const ingredientsKey = "ingredients"

// Entry is one ingredient of a triples-shaped catalog document.
type Entry struct {
	Name     string   `json:"name" yaml:"name" toml:"name" validate:"required,ingredient"`
	Category string   `json:"category" yaml:"category" toml:"category" validate:"required"`
	Ratio    *float64 `json:"ratio" yaml:"ratio" toml:"ratio" validate:"required,finite"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("finite", validateFinite)
	_ = validate.RegisterValidation("ingredient", validateIngredient)
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateIngredient(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.TrimSpace(s) != "" && !strings.ContainsAny(s, "\x00\x1f")
}

// LoadConfig reads and validates the configuration document at path.
func LoadConfig(ctx context.Context, path string) (kitchen.Config, error) {
	data, err := serializer.ReadSource(ctx, path)
	if err != nil {
		return kitchen.Config{}, kerrors.WrapWithContext(kerrors.ErrCodeInvalidRequest,
			"failed to read configuration", err, map[string]any{"path": path})
	}
	cfg, err := LoadConfigFromContent(data, serializer.FormatFromPath(path))
	if err != nil {
		return kitchen.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("configuration loaded", "path", path,
		"min_ratio", cfg.MinRatio, "max_ratio", cfg.MaxRatio,
		"min_ingredients", cfg.MinIngredients, "max_ingredients", cfg.MaxIngredients)
	return cfg, nil
}

// LoadConfigFromContent decodes and validates a configuration document.
func LoadConfigFromContent(data []byte, format serializer.Format) (kitchen.Config, error) {
	cfg, err := serializer.FromContent[kitchen.Config](data, format)
	if err != nil {
		return kitchen.Config{}, kerrors.Wrap(kerrors.ErrCodeInvalidRequest,
			"invalid configuration document", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return kitchen.Config{}, validationError("invalid configuration", err)
	}
	if math.IsNaN(cfg.MinRatio) || math.IsNaN(cfg.MaxRatio) {
		return kitchen.Config{}, kerrors.New(kerrors.ErrCodeInvalidRequest,
			"invalid configuration: ratio bounds must be numbers")
	}
	return *cfg, nil
}

// LoadCatalogs reads the catalog document at path.
func LoadCatalogs(ctx context.Context, path string) (map[kitchen.Category]*kitchen.Catalog, error) {
	data, err := serializer.ReadSource(ctx, path)
	if err != nil {
		return nil, kerrors.WrapWithContext(kerrors.ErrCodeInvalidRequest,
			"failed to read catalog", err, map[string]any{"path": path})
	}
	catalogs, err := LoadCatalogsFromContent(data, serializer.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("catalogs loaded", "path", path, "categories", len(catalogs))
	return catalogs, nil
}

// LoadCatalogsFromContent decodes a catalog document in either shape.
func LoadCatalogsFromContent(data []byte, format serializer.Format) (map[kitchen.Category]*kitchen.Catalog, error) {
	doc, err := serializer.FromContent[map[string]any](data, format)
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeInvalidRequest, "invalid catalog document", err)
	}
	if len(*doc) == 0 {
		return nil, kerrors.New(kerrors.ErrCodeInvalidRequest, "catalog document defines no categories")
	}

	var entries []Entry
	if raw, ok := (*doc)[ingredientsKey]; ok {
		if _, isList := raw.([]any); isList {
			if len(*doc) > 1 {
				return nil, kerrors.New(kerrors.ErrCodeInvalidRequest,
					"catalog document mixes the ingredients list with category tables")
			}
			entries, err = triples(raw.([]any))
		} else {
			entries, err = grouped(*doc)
		}
	} else {
		entries, err = grouped(*doc)
	}
	if err != nil {
		return nil, err
	}
	return build(entries)
}

// grouped converts the grouped shape into entries.
func grouped(doc map[string]any) ([]Entry, error) {
	var entries []Entry
	for key, raw := range doc {
		table, ok := raw.(map[string]any)
		if !ok {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
				"category must map ingredient names to ratios", map[string]any{"category": key})
		}
		for name, v := range table {
			r, ok := toFloat(v)
			if !ok {
				return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
					"ingredient ratio must be a number", map[string]any{
						"category":   key,
						"ingredient": name,
					})
			}
			entries = append(entries, Entry{Name: name, Category: key, Ratio: &r})
		}
	}
	return entries, nil
}

func triples(list []any) ([]Entry, error) {
	entries := make([]Entry, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
				"ingredient entry must be an object", map[string]any{"index": i})
		}
		var e Entry
		e.Name, _ = m["name"].(string)
		e.Category, _ = m["category"].(string)
		if v, present := m["ratio"]; present {
			r, ok := toFloat(v)
			if !ok {
				return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
					"ingredient ratio must be a number", map[string]any{"index": i, "ingredient": e.Name})
			}
			e.Ratio = &r
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func build(entries []Entry) (map[kitchen.Category]*kitchen.Catalog, error) {
	ratios := make(map[kitchen.Category]map[string]float64)
	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, validationError("invalid ingredient entry", err)
		}
		category, err := kitchen.ParseCategory(e.Category)
		if err != nil {
			return nil, kerrors.Wrap(kerrors.ErrCodeInvalidRequest, "invalid category", err)
		}
		m, ok := ratios[category]
		if !ok {
			m = make(map[string]float64)
			ratios[category] = m
		}
		if _, dup := m[e.Name]; dup {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidRequest,
				"duplicate ingredient", map[string]any{
					"category":   category,
					"ingredient": e.Name,
				})
		}
		m[e.Name] = *e.Ratio
	}

	catalogs := make(map[kitchen.Category]*kitchen.Catalog, len(ratios))
	for category, m := range ratios {
		c, err := kitchen.NewCatalog(m)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", category, err)
		}
		catalogs[category] = c
	}
	return catalogs, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func validationError(msg string, err error) error {
	var fields []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			fields = append(fields, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
		}
	}
	if len(fields) == 0 {
		return kerrors.Wrap(kerrors.ErrCodeInvalidRequest, msg, err)
	}
	return kerrors.WrapWithContext(kerrors.ErrCodeInvalidRequest,
		msg+": "+strings.Join(fields, ", "), err, map[string]any{"fields": fields})
}
