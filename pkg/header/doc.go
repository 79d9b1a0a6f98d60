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

// Package header provides the common envelope header for kitchen documents.
//
// Every document the CLI prints and kitchend returns starts with a Header
// naming its Kind and APIVersion, plus free-form metadata such as the
// generation timestamp and tool version:
//
//	kind: Prediction
//	apiVersion: kitchen.glider.dev/v1
//	metadata:
//	  timestamp: "2025-06-01T10:30:00Z"
//	  version: v0.4.0
//
// # Usage
//
//	h := header.NewFor(header.KindPrediction, version)
//
// Extra metadata is attached with options or, on an embedded header, Set:
//
//	h := header.NewFor(header.KindCatalog, version,
//	    header.WithMetadata(header.MetadataSource, "catalog.toml"),
//	)
//	doc.Set(header.MetadataSource, path)
package header
