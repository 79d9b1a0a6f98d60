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
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category partitions ingredients and their catalogs.
type Category string

// Reference categories.
const (
	CategoryFruit     Category = "fruit"
	CategoryVegetable Category = "vegetable"
)

// ParseCategory normalizes s into a Category.
// The reference categories accept singular and plural spellings in any case
// ("FRUITS", "Vegetable"). Any other lowercase token made of letters, digits,
// '-' or '_' is accepted as a custom category.
func ParseCategory(s string) (Category, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return "", fmt.Errorf("category cannot be empty")
	case "fruit", "fruits":
		return CategoryFruit, nil
	case "vegetable", "vegetables":
		return CategoryVegetable, nil
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return "", fmt.Errorf("invalid category %q: unexpected character %q", s, r)
		}
	}
	return Category(v), nil
}

// GetCategories returns the reference categories sorted alphabetically.
func GetCategories() []Category {
	return []Category{CategoryFruit, CategoryVegetable}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns the title-cased name used in human-readable output.
func (c Category) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}
