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
	"strconv"
	"strings"

	"github.com/gliderkitchen/kitchen/pkg/header"
)

// IngredientRatio is one catalog entry.
type IngredientRatio struct {
	Name  string  `json:"name" yaml:"name"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// CatalogView is the catalog of one category in output documents.
type CatalogView struct {
	Category    Category          `json:"category" yaml:"category"`
	DisplayName string            `json:"displayName" yaml:"displayName"`
	Ingredients []IngredientRatio `json:"ingredients" yaml:"ingredients"`
}

// CatalogDocument lists the catalogs of one or more categories.
type CatalogDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Catalogs []CatalogView `json:"catalogs" yaml:"catalogs"`
}

// NewCatalogDocument describes the catalogs of categories, or of every
// loaded category when none are given.
func NewCatalogDocument(e *Engine, version string, categories ...Category) (*CatalogDocument, error) {
	if len(categories) == 0 {
		categories = e.Categories()
	}
	doc := &CatalogDocument{
		Header:   header.NewFor(header.KindCatalog, version),
		Catalogs: make([]CatalogView, 0, len(categories)),
	}
	for _, c := range categories {
		catalog, err := e.Catalog(c)
		if err != nil {
			return nil, err
		}
		view := CatalogView{
			Category:    c,
			DisplayName: c.DisplayName(),
			Ingredients: make([]IngredientRatio, 0, catalog.Len()),
		}
		for _, name := range catalog.Names() {
			r, _ := catalog.Lookup(name)
			view.Ingredients = append(view.Ingredients, IngredientRatio{Name: name, Ratio: r})
		}
		doc.Catalogs = append(doc.Catalogs, view)
	}
	return doc, nil
}

func (d *CatalogDocument) TableHeader() []string {
	return []string{"CATEGORY", "INGREDIENT", "RATIO"}
}

func (d *CatalogDocument) TableRows() [][]string {
	var rows [][]string
	for _, c := range d.Catalogs {
		for _, i := range c.Ingredients {
			rows = append(rows, []string{c.DisplayName, i.Name, formatRatio(i.Ratio)})
		}
	}
	return rows
}

// RecipeDocument reports a recipe with its ratio and validity.
type RecipeDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Category    Category `json:"category" yaml:"category"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Ratio       float64  `json:"ratio" yaml:"ratio"`
	Valid       bool     `json:"valid" yaml:"valid"`
	MinRatio    float64  `json:"minRatio" yaml:"minRatio"`
	MaxRatio    float64  `json:"maxRatio" yaml:"maxRatio"`
}

// NewRecipeDocument describes the current recipe of category. kind is
// header.KindRecipe for live recipes and header.KindRatio for one-shot
// ratio evaluations.
func NewRecipeDocument(e *Engine, category Category, kind header.Kind, version string) (*RecipeDocument, error) {
	if _, err := e.Catalog(category); err != nil {
		return nil, err
	}
	cfg := e.Config()
	return &RecipeDocument{
		Header:      header.NewFor(kind, version),
		Category:    category,
		Ingredients: e.recipeOrEmpty(category).Ingredients(),
		Ratio:       e.Ratio(category),
		Valid:       e.IsValid(category),
		MinRatio:    cfg.MinRatio,
		MaxRatio:    cfg.MaxRatio,
	}, nil
}

func (d *RecipeDocument) TableHeader() []string {
	return []string{"CATEGORY", "INGREDIENTS", "RATIO", "VALID"}
}

func (d *RecipeDocument) TableRows() [][]string {
	return [][]string{{
		d.Category.DisplayName(),
		joinNames(d.Ingredients),
		formatRatio(d.Ratio),
		strconv.FormatBool(d.Valid),
	}}
}

// PredictionDocument wraps a Prediction for output.
type PredictionDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Prediction `json:",inline" yaml:",inline"`
	Count      int `json:"count" yaml:"count"`
}

// NewPredictionDocument runs Predict for category and wraps the result.
func NewPredictionDocument(e *Engine, category Category, version string) (*PredictionDocument, error) {
	p, err := e.Predict(category)
	if err != nil {
		return nil, err
	}
	return &PredictionDocument{
		Header:     header.NewFor(header.KindPrediction, version),
		Prediction: *p,
		Count:      p.Len(),
	}, nil
}

func (d *PredictionDocument) TableHeader() []string {
	return []string{"SIZE", "INGREDIENTS", "RATIO"}
}

func (d *PredictionDocument) TableRows() [][]string {
	rows := make([][]string, 0, len(d.Recipes))
	for _, s := range d.Recipes {
		rows = append(rows, []string{
			strconv.Itoa(len(s.Ingredients)),
			joinNames(s.Ingredients),
			formatRatio(s.Ratio),
		})
	}
	return rows
}

// ChoosableDocument lists the ingredients that can still be picked.
type ChoosableDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Category    Category `json:"category" yaml:"category"`
	Base        []string `json:"base" yaml:"base"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

// NewChoosableDocument runs Choosable for category and wraps the result.
func NewChoosableDocument(e *Engine, category Category, version string) (*ChoosableDocument, error) {
	names, err := e.Choosable(category)
	if err != nil {
		return nil, err
	}
	return &ChoosableDocument{
		Header:      header.NewFor(header.KindChoosable, version),
		Category:    category,
		Base:        e.recipeOrEmpty(category).Ingredients(),
		Ingredients: names,
	}, nil
}

func (d *ChoosableDocument) TableHeader() []string {
	return []string{"INGREDIENT"}
}

func (d *ChoosableDocument) TableRows() [][]string {
	rows := make([][]string, 0, len(d.Ingredients))
	for _, name := range d.Ingredients {
		rows = append(rows, []string{name})
	}
	return rows
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
