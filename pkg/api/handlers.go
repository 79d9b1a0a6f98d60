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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
	"github.com/gliderkitchen/kitchen/pkg/header"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
	"github.com/gliderkitchen/kitchen/pkg/server"
)

// CategoriesResponse lists the loaded categories.
type CategoriesResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Categories []kitchen.Category `json:"categories" yaml:"categories"`
}

// AddIngredientRequest is the body of POST .../recipe/ingredients.
type AddIngredientRequest struct {
	Name string `json:"name" yaml:"name"`
}

// Routes returns the API handlers keyed by ServeMux pattern.
func (k *Kitchen) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/categories":                                         k.HandleCategories,
		"GET /v1/categories/{category}/ingredients":                  k.HandleIngredients,
		"GET /v1/categories/{category}/recipe":                       k.HandleRecipe,
		"DELETE /v1/categories/{category}/recipe":                    k.HandleReset,
		"POST /v1/categories/{category}/recipe/ingredients":          k.HandleAddIngredient,
		"DELETE /v1/categories/{category}/recipe/ingredients/{name}": k.HandleRemoveIngredient,
		"GET /v1/categories/{category}/predictions":                  k.HandlePredictions,
		"GET /v1/categories/{category}/choosable":                    k.HandleChoosable,
	}
}

// categoryFrom parses the {category} path value. It writes the error
// response itself and reports false when the value is invalid.
func categoryFrom(w http.ResponseWriter, r *http.Request) (kitchen.Category, bool) {
	raw := r.PathValue("category")
	c, err := kitchen.ParseCategory(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, kerrors.ErrCodeInvalidRequest,
			"Invalid category", false, map[string]any{
				"category": raw,
				"error":    err.Error(),
			})
		return "", false
	}
	return c, true
}

// HandleCategories handles GET /v1/categories.
func (k *Kitchen) HandleCategories(w http.ResponseWriter, r *http.Request) {
	var categories []kitchen.Category
	_ = k.read(func(e *kitchen.Engine) error {
		categories = e.Categories()
		return nil
	})

	serializer.RespondJSON(w, http.StatusOK, CategoriesResponse{
		Header:     header.NewFor(header.KindCatalog, k.version),
		Categories: categories,
	})
}

// HandleIngredients handles GET /v1/categories/{category}/ingredients.
func (k *Kitchen) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}

	var doc *kitchen.CatalogDocument
	err := k.read(func(e *kitchen.Engine) error {
		var err error
		doc, err = kitchen.NewCatalogDocument(e, k.version, c)
		return err
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read catalog", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandleRecipe handles GET /v1/categories/{category}/recipe.
func (k *Kitchen) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}

	var doc *kitchen.RecipeDocument
	err := k.read(func(e *kitchen.Engine) error {
		var err error
		doc, err = kitchen.NewRecipeDocument(e, c, header.KindRecipe, k.version)
		return err
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read recipe", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandleReset handles DELETE /v1/categories/{category}/recipe.
func (k *Kitchen) HandleReset(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}
	k.mutate(w, r, c, func(e *kitchen.Engine) error {
		return e.Reset(c)
	})
}

// HandleAddIngredient handles POST /v1/categories/{category}/recipe/ingredients.
func (k *Kitchen) HandleAddIngredient(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer r.Body.Close()

	var req AddIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, kerrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{
				"error": err.Error(),
			})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, kerrors.ErrCodeInvalidRequest,
			"Ingredient name is required", false, nil)
		return
	}

	k.mutate(w, r, c, func(e *kitchen.Engine) error {
		return e.AddIngredient(c, name)
	})
}

// HandleRemoveIngredient handles DELETE /v1/categories/{category}/recipe/ingredients/{name}.
func (k *Kitchen) HandleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")

	k.mutate(w, r, c, func(e *kitchen.Engine) error {
		return e.RemoveIngredient(c, name)
	})
}

// mutate applies fn and responds with the resulting recipe document.
func (k *Kitchen) mutate(w http.ResponseWriter, r *http.Request, c kitchen.Category, fn func(e *kitchen.Engine) error) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MutationHandlerTimeout)
	defer cancel()

	var doc *kitchen.RecipeDocument
	err := k.writeBefore(ctx, func(e *kitchen.Engine) error {
		if err := fn(e); err != nil {
			return err
		}
		var err error
		doc, err = kitchen.NewRecipeDocument(e, c, header.KindRecipe, k.version)
		return err
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update recipe", map[string]any{
			"category": c,
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandlePredictions handles GET /v1/categories/{category}/predictions.
func (k *Kitchen) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PredictHandlerTimeout)
	defer cancel()

	doc, err := await(ctx, k, func(e *kitchen.Engine) (*kitchen.PredictionDocument, error) {
		return kitchen.NewPredictionDocument(e, c, k.version)
	})
	if err != nil {
		writeSearchError(w, r, err, "Failed to predict recipes")
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

// HandleChoosable handles GET /v1/categories/{category}/choosable.
func (k *Kitchen) HandleChoosable(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryFrom(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PredictHandlerTimeout)
	defer cancel()

	doc, err := await(ctx, k, func(e *kitchen.Engine) (*kitchen.ChoosableDocument, error) {
		return kitchen.NewChoosableDocument(e, c, k.version)
	})
	if err != nil {
		writeSearchError(w, r, err, "Failed to compute choosable ingredients")
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

func writeSearchError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, context.DeadlineExceeded) {
		server.WriteError(w, r, http.StatusGatewayTimeout, kerrors.ErrCodeTimeout,
			"Prediction timed out", true, map[string]any{
				"timeout": defaults.PredictHandlerTimeout.String(),
			})
		return
	}
	server.WriteErrorFromErr(w, r, err, msg, nil)
}
