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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	return NewEngine(cfg,
		WithCatalog(CategoryFruit, mustCatalog(t, map[string]float64{"apple": 1.2, "kiwi": 0.6, "mango": 2.4})),
		WithCatalog(CategoryVegetable, mustCatalog(t, map[string]float64{"carrot": 0.8, "leek": 1.1})),
	)
}

func TestEngineUnknownCategory(t *testing.T) {
	e := NewEngine(Config{MaxRatio: 10, MaxIngredients: 2},
		WithCatalog(CategoryFruit, mustCatalog(t, map[string]float64{"a": 1})))

	_, err := e.Predict(CategoryVegetable)
	assert.True(t, errors.Is(err, ErrUnknownCategory), "Predict: %v", err)

	err = e.AddIngredient(CategoryVegetable, "a")
	assert.True(t, errors.Is(err, ErrUnknownCategory), "AddIngredient: %v", err)

	err = e.RemoveIngredient(CategoryVegetable, "a")
	assert.True(t, errors.Is(err, ErrUnknownCategory), "RemoveIngredient: %v", err)

	_, err = e.IngredientsCatalog(CategoryVegetable)
	assert.True(t, errors.Is(err, ErrUnknownCategory), "IngredientsCatalog: %v", err)

	_, err = e.Choosable(CategoryVegetable)
	assert.True(t, errors.Is(err, ErrUnknownCategory), "Choosable: %v", err)

	assert.True(t, errors.Is(e.Reset(CategoryVegetable), ErrUnknownCategory))
}

func TestEngineAddIngredient(t *testing.T) {
	e := newTestEngine(t, Config{MinRatio: 0.5, MaxRatio: 1.5, MinIngredients: 1, MaxIngredients: 3})

	_, ok := e.CurrentRecipe(CategoryFruit)
	assert.False(t, ok)

	require.NoError(t, e.AddIngredient(CategoryFruit, "apple"))
	require.NoError(t, e.AddIngredient(CategoryFruit, "kiwi"))

	r, ok := e.CurrentRecipe(CategoryFruit)
	require.True(t, ok)
	assert.Equal(t, []string{"apple", "kiwi"}, r.Ingredients())
	assert.InDelta(t, 0.9, e.Ratio(CategoryFruit), 1e-12)
	assert.True(t, e.IsValid(CategoryFruit))

	err := e.AddIngredient(CategoryFruit, "kiwi")
	assert.True(t, errors.Is(err, ErrAlreadyPresent))
	assert.InDelta(t, 0.9, e.Ratio(CategoryFruit), 1e-12)
}

func TestEngineAddUnknownIngredient(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})

	err := e.AddIngredient(CategoryFruit, "carrot")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownIngredient))

	_, ok := e.CurrentRecipe(CategoryFruit)
	assert.False(t, ok, "failed add must not create a recipe")
}

func TestEngineRemoveIngredient(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})

	err := e.RemoveIngredient(CategoryVegetable, "leek")
	assert.True(t, errors.Is(err, ErrNotPresent))
	_, ok := e.CurrentRecipe(CategoryVegetable)
	assert.False(t, ok, "failed remove must not create a recipe")

	require.NoError(t, e.AddIngredient(CategoryVegetable, "leek"))
	require.NoError(t, e.AddIngredient(CategoryVegetable, "carrot"))
	require.NoError(t, e.RemoveIngredient(CategoryVegetable, "leek"))
	assert.InDelta(t, 0.8, e.Ratio(CategoryVegetable), 1e-12)

	err = e.RemoveIngredient(CategoryVegetable, "leek")
	assert.True(t, errors.Is(err, ErrNotPresent))
}

func TestEngineCurrentRecipeIsCopy(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})
	require.NoError(t, e.AddIngredient(CategoryFruit, "apple"))

	r, ok := e.CurrentRecipe(CategoryFruit)
	require.True(t, ok)
	c, err := e.Catalog(CategoryFruit)
	require.NoError(t, err)
	require.NoError(t, r.Add("kiwi", c))

	live, _ := e.CurrentRecipe(CategoryFruit)
	assert.Equal(t, []string{"apple"}, live.Ingredients())
}

func TestEngineIsValidBounds(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		add    []string
		want   bool
	}{
		{"no recipe, zero in range", Config{MinRatio: 0, MaxRatio: 1}, nil, true},
		{"no recipe, zero out of range", Config{MinRatio: 0.5, MaxRatio: 1}, nil, false},
		{"inclusive lower bound", Config{MinRatio: 1.2, MaxRatio: 2}, []string{"apple"}, true},
		{"inclusive upper bound", Config{MinRatio: 0, MaxRatio: 1.2}, []string{"apple"}, true},
		{"above range", Config{MinRatio: 0, MaxRatio: 1.1}, []string{"apple"}, false},
		{"below range", Config{MinRatio: 1.3, MaxRatio: 2}, []string{"apple"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.MaxIngredients = 3
			e := newTestEngine(t, tt.config)
			for _, name := range tt.add {
				require.NoError(t, e.AddIngredient(CategoryFruit, name))
			}
			ratio := e.Ratio(CategoryFruit)
			assert.Equal(t, tt.want, e.IsValid(CategoryFruit))
			assert.Equal(t, tt.config.MinRatio <= ratio && ratio <= tt.config.MaxRatio, e.IsValid(CategoryFruit))
		})
	}
}

func TestEngineRatioWithoutCatalog(t *testing.T) {
	e := NewEngine(Config{MinRatio: -1, MaxRatio: 1})
	assert.Equal(t, 0.0, e.Ratio(CategoryFruit))
	assert.True(t, e.IsValid(CategoryFruit))
}

func TestEngineIngredientsCatalog(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})

	names, err := e.IngredientsCatalog(CategoryFruit)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "kiwi", "mango"}, names)

	assert.Equal(t, []Category{CategoryFruit, CategoryVegetable}, e.Categories())

	r, err := e.Lookup(CategoryFruit, "mango")
	require.NoError(t, err)
	assert.Equal(t, 2.4, r)

	_, err = e.Lookup(CategoryFruit, "leek")
	assert.True(t, errors.Is(err, ErrUnknownIngredient))
}

func TestEngineLoadCatalogResetsRecipe(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})
	require.NoError(t, e.AddIngredient(CategoryFruit, "apple"))
	require.NoError(t, e.AddIngredient(CategoryVegetable, "leek"))

	e.LoadCatalog(CategoryFruit, mustCatalog(t, map[string]float64{"pear": 3}))

	_, ok := e.CurrentRecipe(CategoryFruit)
	assert.False(t, ok)
	_, ok = e.CurrentRecipe(CategoryVegetable)
	assert.True(t, ok, "other categories keep their recipe")

	names, err := e.IngredientsCatalog(CategoryFruit)
	require.NoError(t, err)
	assert.Equal(t, []string{"pear"}, names)
}

func TestEngineLoadCatalogsReplacesAll(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})
	require.NoError(t, e.AddIngredient(CategoryVegetable, "leek"))

	e.LoadCatalogs(map[Category]*Catalog{
		"herb": mustCatalog(t, map[string]float64{"basil": 1}),
	})

	assert.Equal(t, []Category{"herb"}, e.Categories())
	_, ok := e.CurrentRecipe(CategoryVegetable)
	assert.False(t, ok)
	_, err := e.IngredientsCatalog(CategoryFruit)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(t, Config{MaxRatio: 10, MaxIngredients: 3})
	require.NoError(t, e.AddIngredient(CategoryFruit, "apple"))

	require.NoError(t, e.Reset(CategoryFruit))
	_, ok := e.CurrentRecipe(CategoryFruit)
	assert.False(t, ok)
	assert.Equal(t, 0.0, e.Ratio(CategoryFruit))

	require.NoError(t, e.Reset(CategoryFruit))
}
