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
	kerrors "github.com/gliderkitchen/kitchen/pkg/errors"
)

// Sentinels for errors.Is. Returned errors carry the same code plus context.
var (
	ErrUnknownCategory   = kerrors.New(kerrors.ErrCodeUnknownCategory, "unknown category")
	ErrUnknownIngredient = kerrors.New(kerrors.ErrCodeUnknownIngredient, "unknown ingredient")
	ErrAlreadyPresent    = kerrors.New(kerrors.ErrCodeAlreadyPresent, "ingredient already present")
	ErrNotPresent        = kerrors.New(kerrors.ErrCodeNotPresent, "ingredient not present")
	ErrCatalogDesync     = kerrors.New(kerrors.ErrCodeCatalogDesync, "recipe out of sync with catalog")
)

func unknownCategory(c Category) error {
	return kerrors.NewWithContext(kerrors.ErrCodeUnknownCategory,
		"no catalog loaded for category "+c.String(), map[string]any{
			"category": c,
		})
}

func unknownIngredient(c Category, name string) error {
	return kerrors.NewWithContext(kerrors.ErrCodeUnknownIngredient,
		"ingredient "+name+" is not in the "+c.String()+" catalog", map[string]any{
			"category":   c,
			"ingredient": name,
		})
}
