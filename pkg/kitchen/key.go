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
	"slices"
	"strings"
)

// keySeparator never appears in catalog names (NewCatalog rejects it).
const keySeparator = "\x1f"

// Key is the canonical, order-independent identity of an ingredient set.
// Two recipes are the same recipe iff their keys are equal.
type Key string

// KeyOf returns the canonical key of names. The input is not modified.
func KeyOf(names ...string) Key {
	if len(names) == 0 {
		return ""
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return Key(strings.Join(sorted, keySeparator))
}

// Names returns the sorted ingredient names of the key.
func (k Key) Names() []string {
	if k == "" {
		return []string{}
	}
	return strings.Split(string(k), keySeparator)
}

// String renders the key as a readable set, e.g. "{apple, kiwi}".
func (k Key) String() string {
	return "{" + strings.Join(k.Names(), ", ") + "}"
}
