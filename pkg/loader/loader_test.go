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
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromContent(t *testing.T) {
	want := kitchen.Config{MinRatio: 0.5, MaxRatio: 1.5, MinIngredients: 2, MaxIngredients: 4}

	tests := []struct {
		name    string
		format  serializer.Format
		content string
	}{
		{"yaml", serializer.FormatYAML, "min_ratio: 0.5\nmax_ratio: 1.5\nmin_ingredients: 2\nmax_ingredients: 4\n"},
		{"json", serializer.FormatJSON, `{"min_ratio": 0.5, "max_ratio": 1.5, "min_ingredients": 2, "max_ingredients": 4}`},
		{"toml", serializer.FormatTOML, "min_ratio = 0.5\nmax_ratio = 1.5\nmin_ingredients = 2\nmax_ingredients = 4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFromContent([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadConfigRejectsNegativeCounts(t *testing.T) {
	_, err := LoadConfigFromContent([]byte("min_ratio: 0\nmax_ratio: 1\nmin_ingredients: -1\nmax_ingredients: 2\n"),
		serializer.FormatYAML)
	require.Error(t, err)
	assert.Equal(t, kerrors.ErrCodeInvalidRequest, kerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "MinIngredients")
}

func TestLoadConfigAllowsInvertedWindow(t *testing.T) {
	cfg, err := LoadConfigFromContent([]byte("min_ratio: 2\nmax_ratio: 1\nmin_ingredients: 3\nmax_ingredients: 1\n"),
		serializer.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinIngredients)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfigFromContent([]byte("min_ratio: [\n"), serializer.FormatYAML)
	require.Error(t, err)
	assert.Equal(t, kerrors.ErrCodeInvalidRequest, kerrors.CodeOf(err))
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "kitchen.toml", "min_ratio = 0\nmax_ratio = 10\nmin_ingredients = 1\nmax_ingredients = 2\n")

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.MaxRatio)

	_, err = LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCatalogsGrouped(t *testing.T) {
	tests := []struct {
		name    string
		format  serializer.Format
		content string
	}{
		{"toml", serializer.FormatTOML, "[fruits]\napple = 1.2\nkiwi = 1\n\n[vegetables]\ncarrot = 0.8\n"},
		{"yaml", serializer.FormatYAML, "fruits:\n  apple: 1.2\n  kiwi: 1\nvegetables:\n  carrot: 0.8\n"},
		{"json", serializer.FormatJSON, `{"fruit": {"apple": 1.2, "kiwi": 1}, "Vegetable": {"carrot": 0.8}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogs, err := LoadCatalogsFromContent([]byte(tt.content), tt.format)
			require.NoError(t, err)
			require.Len(t, catalogs, 2)

			fruit := catalogs[kitchen.CategoryFruit]
			require.NotNil(t, fruit)
			assert.Equal(t, []string{"apple", "kiwi"}, fruit.Names())
			r, _ := fruit.Lookup("kiwi")
			assert.Equal(t, 1.0, r)

			veg := catalogs[kitchen.CategoryVegetable]
			require.NotNil(t, veg)
			r, _ = veg.Lookup("carrot")
			assert.Equal(t, 0.8, r)
		})
	}
}

func TestLoadCatalogsTriples(t *testing.T) {
	content := `
ingredients:
  - name: apple
    category: fruit
    ratio: 1.2
  - name: basil
    category: herbs
    ratio: 0
  - name: carrot
    category: vegetables
    ratio: 0.8
`
	catalogs, err := LoadCatalogsFromContent([]byte(content), serializer.FormatYAML)
	require.NoError(t, err)
	require.Len(t, catalogs, 3)

	herbs := catalogs[kitchen.Category("herbs")]
	require.NotNil(t, herbs)
	r, ok := herbs.Lookup("basil")
	assert.True(t, ok)
	assert.Zero(t, r)
}

func TestLoadCatalogsTriplesTOML(t *testing.T) {
	content := `
[[ingredients]]
name = "apple"
category = "fruit"
ratio = 2

[[ingredients]]
name = "kiwi"
category = "fruit"
ratio = 4.5
`
	catalogs, err := LoadCatalogsFromContent([]byte(content), serializer.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "kiwi"}, catalogs[kitchen.CategoryFruit].Names())
}

func TestLoadCatalogsRejects(t *testing.T) {
	tests := []struct {
		name    string
		format  serializer.Format
		content string
	}{
		{"empty document", serializer.FormatJSON, `{}`},
		{"duplicate across spellings", serializer.FormatYAML, "fruit:\n  apple: 1\nfruits:\n  apple: 2\n"},
		{"duplicate triple", serializer.FormatYAML,
			"ingredients:\n  - {name: a, category: fruit, ratio: 1}\n  - {name: a, category: fruits, ratio: 2}\n"},
		{"non-numeric ratio", serializer.FormatYAML, "fruits:\n  apple: \"1.2\"\n"},
		{"non-table category", serializer.FormatYAML, "fruits: 3\n"},
		{"missing ratio", serializer.FormatYAML, "ingredients:\n  - {name: a, category: fruit}\n"},
		{"missing name", serializer.FormatYAML, "ingredients:\n  - {category: fruit, ratio: 1}\n"},
		{"missing category", serializer.FormatYAML, "ingredients:\n  - {name: a, ratio: 1}\n"},
		{"entry not an object", serializer.FormatYAML, "ingredients:\n  - apple\n"},
		{"mixed shapes", serializer.FormatYAML, "ingredients:\n  - {name: a, category: fruit, ratio: 1}\nfruits:\n  b: 1\n"},
		{"invalid category", serializer.FormatYAML, "\"bad category\":\n  apple: 1\n"},
		{"infinite ratio", serializer.FormatYAML, "fruits:\n  apple: .inf\n"},
		{"blank name", serializer.FormatYAML, "fruits:\n  \" \": 1\n"},
		{"malformed", serializer.FormatTOML, "[fruits\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogsFromContent([]byte(tt.content), tt.format)
			require.Error(t, err)
			assert.Equal(t, kerrors.ErrCodeInvalidRequest, kerrors.CodeOf(err), "error: %v", err)
		})
	}
}

func TestLoadCatalogsFile(t *testing.T) {
	path := writeFile(t, "catalog.toml", "[fruits]\napple = 1.2\n")

	catalogs, err := LoadCatalogs(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, catalogs[kitchen.CategoryFruit].Has("apple"))
}

func TestLoadCatalogsRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"vegetables": {"leek": 1.1}}`))
	}))
	defer srv.Close()

	catalogs, err := LoadCatalogs(context.Background(), srv.URL+"/catalog.json")
	require.NoError(t, err)
	assert.True(t, catalogs[kitchen.CategoryVegetable].Has("leek"))

	_, err = LoadCatalogs(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
	var se *kerrors.StructuredError
	assert.True(t, errors.As(err, &se))
}
