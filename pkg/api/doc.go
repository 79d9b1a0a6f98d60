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

// Package api implements kitchend, the HTTP service around a shared
// kitchen engine.
//
// Routes (all JSON, wrapped in the pkg/server middleware chain):
//
//	GET    /v1/categories
//	GET    /v1/categories/{category}/ingredients
//	GET    /v1/categories/{category}/recipe
//	DELETE /v1/categories/{category}/recipe
//	POST   /v1/categories/{category}/recipe/ingredients   {"name": "apple"}
//	DELETE /v1/categories/{category}/recipe/ingredients/{name}
//	GET    /v1/categories/{category}/predictions
//	GET    /v1/categories/{category}/choosable
//
// Mutations return the updated recipe. Errors use the pkg/server envelope:
// unknown categories and ingredients are 404, duplicate adds and removal of
// absent ingredients are 409, and an invalid category token is 400.
//
// The service holds a single engine, so every client edits the same
// recipes. Serve reads its documents from KITCHEN_CONFIG and KITCHEN_CATALOG:
//
//	KITCHEN_CONFIG=kitchen.yaml KITCHEN_CATALOG=catalog.yaml kitchend
//
// Editing a local catalog file reloads it and clears all recipes.
package api
