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

func mustCatalog(t *testing.T, ratios map[string]float64) *Catalog {
	t.Helper()
	c, err := NewCatalog(ratios)
	require.NoError(t, err)
	return c
}

func TestComputeRatio(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2, "b": 4, "c": 20, "d": -1.5})

	tests := []struct {
		name  string
		names []string
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []string{"a"}, 2},
		{"pair", []string{"a", "b"}, 3},
		{"triple", []string{"a", "b", "c"}, 26.0 / 3},
		{"negative", []string{"a", "d"}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRatio(tt.names, c)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestComputeRatioMissingIngredient(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2})

	_, err := ComputeRatio([]string{"a", "zz"}, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogDesync))
}

func TestRecipeAddTwiceFails(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2, "b": 4})
	r := NewRecipe(CategoryFruit)

	require.NoError(t, r.Add("a", c))
	require.NoError(t, r.Add("b", c))
	before := r.Ingredients()
	ratio := r.Ratio()

	err := r.Add("b", c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyPresent))
	assert.Equal(t, before, r.Ingredients())
	assert.Equal(t, ratio, r.Ratio())
}

func TestRecipeRemoveAbsentFails(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2, "b": 4})
	r := NewRecipe(CategoryFruit)
	require.NoError(t, r.Add("a", c))

	err := r.Remove("b", c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotPresent))
	assert.Equal(t, []string{"a"}, r.Ingredients())
	assert.Equal(t, 2.0, r.Ratio())
}

func TestRecipeAddRemoveRoundTrip(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2, "b": 4.3, "c": 0.7})
	r := NewRecipe(CategoryVegetable)
	require.NoError(t, r.Add("a", c))
	require.NoError(t, r.Add("c", c))

	before := r.Ingredients()
	ratio := r.Ratio()

	require.NoError(t, r.Add("b", c))
	assert.NotEqual(t, ratio, r.Ratio())
	require.NoError(t, r.Remove("b", c))

	assert.Equal(t, before, r.Ingredients())
	assert.Equal(t, ratio, r.Ratio())
}

func TestRecipeRemoveLastResetsRatio(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 7})
	r := NewRecipe(CategoryFruit)
	require.NoError(t, r.Add("a", c))
	require.NoError(t, r.Remove("a", c))

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0.0, r.Ratio())
	assert.Equal(t, []string{}, r.Ingredients())
}

func TestRecipeOrderIndependence(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 0.1, "b": 0.2, "c": 0.3})
	perms := [][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}

	var first *Recipe
	for _, p := range perms {
		r := NewRecipe(CategoryFruit)
		for _, name := range p {
			require.NoError(t, r.Add(name, c))
		}
		if first == nil {
			first = r
			continue
		}
		assert.True(t, first.Equal(r), "permutation %v", p)
		assert.Equal(t, first.Ratio(), r.Ratio(), "permutation %v", p)
		assert.Equal(t, first.Key(), r.Key(), "permutation %v", p)
	}
}

func TestRecipeAddMissingFromCatalogPanics(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 2})
	r := NewRecipe(CategoryFruit)
	require.NoError(t, r.Add("a", c))

	defer func() {
		v := recover()
		require.NotNil(t, v)
		err, ok := v.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrCatalogDesync))
		assert.Equal(t, []string{"a"}, r.Ingredients())
		assert.Equal(t, 2.0, r.Ratio())
	}()
	_ = r.Add("ghost", c)
}

func TestRecipeEqualIgnoresRatio(t *testing.T) {
	c1 := mustCatalog(t, map[string]float64{"a": 1, "b": 2})
	c2 := mustCatalog(t, map[string]float64{"a": 10, "b": 20})

	r1 := NewRecipe(CategoryFruit)
	r2 := NewRecipe(CategoryFruit)
	require.NoError(t, r1.Add("a", c1))
	require.NoError(t, r1.Add("b", c1))
	require.NoError(t, r2.Add("b", c2))
	require.NoError(t, r2.Add("a", c2))

	assert.NotEqual(t, r1.Ratio(), r2.Ratio())
	assert.True(t, r1.Equal(r2))
}

func TestRecipeCloneIsIndependent(t *testing.T) {
	c := mustCatalog(t, map[string]float64{"a": 1, "b": 2})
	r := NewRecipe(CategoryFruit)
	require.NoError(t, r.Add("a", c))

	clone := r.Clone()
	require.NoError(t, clone.Add("b", c))

	assert.Equal(t, []string{"a"}, r.Ingredients())
	assert.Equal(t, []string{"a", "b"}, clone.Ingredients())
}
