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
	"cmp"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Prediction is the set of valid ingredient sets reachable from a recipe.
type Prediction struct {
	Category Category  `json:"category" yaml:"category"`
	Base     []string  `json:"base" yaml:"base"`
	Recipes  []Summary `json:"recipes" yaml:"recipes"`
	Explored int       `json:"explored" yaml:"explored"`

	index map[Key]int
}

// Len returns the number of predicted recipes.
func (p *Prediction) Len() int {
	return len(p.Recipes)
}

// Keys returns the canonical keys of the predicted recipes in result order.
func (p *Prediction) Keys() []Key {
	keys := make([]Key, 0, len(p.Recipes))
	for _, s := range p.Recipes {
		keys = append(keys, KeyOf(s.Ingredients...))
	}
	return keys
}

// Contains reports whether the ingredient set names is part of the prediction.
func (p *Prediction) Contains(names ...string) bool {
	_, ok := p.index[KeyOf(names...)]
	return ok
}

// Get returns the predicted recipe with the ingredient set names.
func (p *Prediction) Get(names ...string) (Summary, bool) {
	i, ok := p.index[KeyOf(names...)]
	if !ok {
		return Summary{}, false
	}
	return p.Recipes[i], true
}

// Ingredients returns the sorted union of ingredients across all predicted
// recipes.
func (p *Prediction) Ingredients() []string {
	set := make(map[string]struct{})
	for _, s := range p.Recipes {
		for _, name := range s.Ingredients {
			set[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Predict enumerates every distinct ingredient set reachable from the
// current recipe of category (empty when none) that satisfies the
// configured bounds.
//
// A node of n ingredients at n == max_ingredients is a leaf, kept iff its
// ratio is in range. Below the ceiling a node is kept iff n >= min_ingredients
// and its ratio is in range, and is always extended with every catalog
// ingredient it does not hold yet. Results are unique by ingredient set and
// sorted by size then key.
func (e *Engine) Predict(category Category) (*Prediction, error) {
	c, err := e.catalogFor(category)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	root := e.recipeOrEmpty(category).Ingredients()
	s := newSearch(category, c, e.config)
	s.run(root)

	p := s.prediction(root)
	predictDuration.Observe(time.Since(start).Seconds())
	predictNodesExplored.Observe(float64(p.Explored))
	predictResults.Observe(float64(p.Len()))

	slog.Debug("prediction completed",
		"category", category,
		"base", len(root),
		"explored", p.Explored,
		"results", p.Len(),
		"duration", time.Since(start).String())

	return p, nil
}

// Choosable returns the ingredients that can still be picked for category:
// every catalog ingredient while the recipe is empty, otherwise the union of
// ingredients across all predicted recipes.
func (e *Engine) Choosable(category Category) ([]string, error) {
	c, err := e.catalogFor(category)
	if err != nil {
		return nil, err
	}
	if e.recipeOrEmpty(category).Len() == 0 {
		return c.Names(), nil
	}
	p, err := e.Predict(category)
	if err != nil {
		return nil, err
	}
	return p.Ingredients(), nil
}

// frame is one level of the depth-first search: an ingredient set and the
// index of the next catalog name to try as an extension.
type frame struct {
	names []string
	next  int
}

type search struct {
	category Category
	catalog  *Catalog
	config   Config
	all      []string

	visited  map[Key]struct{}
	results  map[Key]Summary
	explored int
}

func newSearch(category Category, catalog *Catalog, cfg Config) *search {
	return &search{
		category: category,
		catalog:  catalog,
		config:   cfg,
		all:      catalog.Names(),
		visited:  make(map[Key]struct{}),
		results:  make(map[Key]Summary),
	}
}

// run walks the subset lattice rooted at root with an explicit stack.
// Every frame on the stack holds one more ingredient than the frame below
// it and at most max_ingredients, so the stack never grows past
// max_ingredients - len(root) + 1 frames.
func (s *search) run(root []string) {
	k := KeyOf(root...)
	s.visited[k] = struct{}{}
	if !s.visit(root, k) {
		return
	}

	stack := []frame{{names: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(s.all) {
			stack = stack[:len(stack)-1]
			continue
		}
		name := s.all[top.next]
		top.next++

		pos, found := slices.BinarySearch(top.names, name)
		if found {
			continue
		}
		child := slices.Insert(slices.Clone(top.names), pos, name)
		ck := KeyOf(child...)
		if _, seen := s.visited[ck]; seen {
			continue
		}
		s.visited[ck] = struct{}{}

		if s.visit(child, ck) {
			stack = append(stack, frame{names: child})
		}
	}
}

// visit evaluates one node and reports whether the search extends it.
func (s *search) visit(names []string, k Key) bool {
	s.explored++
	ratio, err := ComputeRatio(names, s.catalog)
	if err != nil {
		panic(err)
	}
	include, extend := s.config.accept(len(names), ratio)
	if include {
		s.results[k] = Summary{
			Category:    s.category,
			Ingredients: slices.Clone(names),
			Ratio:       ratio,
		}
	}
	return extend
}

func (s *search) prediction(root []string) *Prediction {
	recipes := slices.Collect(maps.Values(s.results))
	slices.SortFunc(recipes, func(a, b Summary) int {
		if c := cmp.Compare(len(a.Ingredients), len(b.Ingredients)); c != 0 {
			return c
		}
		return cmp.Compare(KeyOf(a.Ingredients...), KeyOf(b.Ingredients...))
	})

	index := make(map[Key]int, len(recipes))
	for i, r := range recipes {
		index[KeyOf(r.Ingredients...)] = i
	}

	return &Prediction{
		Category: s.category,
		Base:     slices.Clone(root),
		Recipes:  recipes,
		Explored: s.explored,
		index:    index,
	}
}
