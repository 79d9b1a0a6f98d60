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

// Package cli implements the kitchen command line tool.
//
// # Commands
//
// catalog - List catalogs:
//
//	kitchen -t catalog.yaml catalog [--category fruit]
//
// ratio - Evaluate an ingredient set:
//
//	kitchen -c kitchen.yaml -t catalog.yaml ratio --category fruit --with apple,kiwi
//
// predict - List every valid extension of an ingredient set:
//
//	kitchen -c kitchen.yaml -t catalog.yaml predict --category fruit [--with apple]
//
// choosable - List the ingredients that can still be picked:
//
//	kitchen -c kitchen.yaml -t catalog.yaml choosable --category fruit --with apple
//
// # Global Flags
//
//	--config, -c   Configuration document (env KITCHEN_CONFIG)
//	--catalog, -t  Catalog document (env KITCHEN_CATALOG)
//	--log-level    debug, info, warn, error (env LOG_LEVEL)
//	--output, -o   Output file path (default: stdout)
//	--format, -f   Output format: yaml, json, table (default: yaml)
//
// Documents may be local paths or HTTP(S) URLs in YAML, JSON or TOML; the
// format follows the extension.
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid arguments, unreadable documents, unknown ingredients)
package cli
