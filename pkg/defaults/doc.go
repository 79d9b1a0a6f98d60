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

// Package defaults holds the tunables shared by kitchen and kitchend.
//
// Constants are grouped by who reads them:
//
//   - handler deadlines and the request body cap (pkg/api)
//   - listener, rate limit and server timeouts (pkg/server)
//   - remote document fetching (pkg/serializer)
//   - catalog watch debounce and reload bound (pkg/watch)
//   - CLI load deadline (pkg/cli)
//   - environment variable names
//
// Handler deadlines stay below ServerWriteTimeout so a timed out request can
// still write its 504.
package defaults
