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

// Config holds the acceptance bounds used to judge recipes.
// MinRatio <= MaxRatio and MinIngredients <= MaxIngredients are assumed,
// not enforced.
type Config struct {
	MinRatio       float64 `json:"min_ratio" yaml:"min_ratio" toml:"min_ratio"`
	MaxRatio       float64 `json:"max_ratio" yaml:"max_ratio" toml:"max_ratio"`
	MinIngredients int     `json:"min_ingredients" yaml:"min_ingredients" toml:"min_ingredients" validate:"gte=0"`
	MaxIngredients int     `json:"max_ingredients" yaml:"max_ingredients" toml:"max_ingredients" validate:"gte=0"`
}

// RatioInRange reports whether min_ratio <= r <= max_ratio.
func (c Config) RatioInRange(r float64) bool {
	return c.MinRatio <= r && r <= c.MaxRatio
}

// accept applies the prediction rule to a node of size n and ratio r.
// It reports whether the node belongs to the result and whether the search
// should extend it.
func (c Config) accept(n int, r float64) (include, extend bool) {
	switch {
	case n > c.MaxIngredients:
		return false, false
	case n == c.MaxIngredients:
		return c.RatioInRange(r), false
	default:
		return n >= c.MinIngredients && c.RatioInRange(r), true
	}
}
