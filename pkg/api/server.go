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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
	"github.com/gliderkitchen/kitchen/pkg/logging"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
	"github.com/gliderkitchen/kitchen/pkg/server"
	"github.com/gliderkitchen/kitchen/pkg/watch"
)

const (
	name           = "kitchend"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/gliderkitchen/kitchen/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// The configuration and catalog documents are read from KITCHEN_CONFIG and
// KITCHEN_CATALOG. A local catalog file is watched and reloaded on change.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	configPath := os.Getenv(defaults.EnvConfigPath)
	catalogPath := os.Getenv(defaults.EnvCatalogPath)
	if configPath == "" || catalogPath == "" {
		return fmt.Errorf("both %s and %s must be set", defaults.EnvConfigPath, defaults.EnvCatalogPath)
	}

	k, err := Load(ctx, configPath, catalogPath, version)
	if err != nil {
		slog.Error("failed to initialize kitchen", "error", err)
		return err
	}

	var tasks []func(context.Context) error
	if !serializer.IsRemote(catalogPath) {
		w, werr := watch.New(catalogPath, k.ReloadCatalogs)
		if werr != nil {
			return fmt.Errorf("failed to watch catalog: %w", werr)
		}
		tasks = append(tasks, w.Run)
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(k.Routes()),
		server.WithReadyCheck(k.Ready),
	)

	if err := s.Run(ctx, tasks...); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
