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

// Package loader reads kitchen configuration and ingredient catalogs from
// JSON, YAML and TOML documents.
//
// # Configuration
//
// The configuration document holds the acceptance bounds:
//
//	min_ratio: 0.5
//	max_ratio: 1.5
//	min_ingredients: 2
//	max_ingredients: 4
//
// Ingredient counts must be non-negative. The loader does not require
// min <= max; an inverted window simply yields no predictions.
//
// # Catalogs
//
// Two catalog shapes are accepted. The grouped shape uses one table per
// category, with singular or plural category names:
//
//	[fruits]
//	apple = 1.2
//	kiwi = 0.6
//
//	[vegetables]
//	carrot = 0.8
//
// The triples shape lists ingredients individually:
//
//	ingredients:
//	  - name: apple
//	    category: fruit
//	    ratio: 1.2
//
// A category may appear more than once (for example as "fruit" and
// "fruits") but every (category, name) pair must be unique. Ratios must be
// finite numbers.
//
// # Sources
//
// Paths may be local files or HTTP(S) URLs; the format follows the path
// extension. The FromContent variants decode in-memory documents, which is
// how embedded default catalogs are loaded.
package loader
