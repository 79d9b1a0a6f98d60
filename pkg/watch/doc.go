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

// Package watch reloads a document when its file changes on disk.
//
// Watcher observes the directory holding the file with fsnotify, so that
// editors and config-management tools that replace files through a rename
// are seen as well as in-place writes. Bursts of events are debounced into a
// single call to the reload function. A failed reload is logged and counted;
// the watcher keeps running and the caller keeps its previous state.
//
//	w, err := watch.New("/etc/kitchen/catalog.toml", func(ctx context.Context, path string) error {
//	    catalogs, err := loader.LoadCatalogs(ctx, path)
//	    if err != nil {
//	        return err
//	    }
//	    svc.SwapCatalogs(catalogs)
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	return w.Run(ctx)
package watch
