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

package server

import (
	"mime"
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix precedes the version in vendor media types,
	// e.g. application/vnd.glider.kitchen.v1+json.
	vendorMediaPrefix = "application/vnd.glider.kitchen."

	headerAPIVersion = "X-API-Version"
)

// SupportedAPIVersions lists the versions negotiateAPIVersion accepts.
var SupportedAPIVersions = []string{DefaultAPIVersion}

// negotiateAPIVersion picks the first supported version named in Accept.
// Clients may use the vendor media type or a version parameter:
//
//	Accept: application/vnd.glider.kitchen.v1+json
//	Accept: application/json; version=v1
func negotiateAPIVersion(r *http.Request) string {
	for _, media := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(media))
		if err != nil {
			continue
		}
		if v := params["version"]; isValidAPIVersion(v) {
			return v
		}
		if rest, ok := strings.CutPrefix(mediaType, vendorMediaPrefix); ok {
			v, _, _ := strings.Cut(rest, "+")
			if isValidAPIVersion(v) {
				return v
			}
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return version != "" && slices.Contains(SupportedAPIVersions, version)
}

// SetAPIVersionHeader reports the negotiated version to the client.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set(headerAPIVersion, version)
}
