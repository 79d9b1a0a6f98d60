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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
	"github.com/gliderkitchen/kitchen/pkg/logging"
)

const (
	name           = "kitchen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the kitchen command line with os.Args and exits non-zero on
// error. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Glider Kitchen recipe engine",
		Description: fmt.Sprintf(`Explore ingredient combinations whose mean ratio stays within the
configured bounds.

Version: %s
Commit:  %s
Built:   %s

catalog   - list the ingredients and ratios of each category
ratio     - evaluate the ratio and validity of an ingredient set
predict   - list every valid extension of an ingredient set
choosable - list the ingredients that can still be picked`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path/URL of the configuration document (yaml, json or toml)",
				Sources: cli.EnvVars(defaults.EnvConfigPath),
			},
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"t"},
				Usage:   "Path/URL of the catalog document (yaml, json or toml)",
				Sources: cli.EnvVars(defaults.EnvCatalogPath),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			outputFlag(),
			formatFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			catalogCmd(),
			ratioCmd(),
			predictCmd(),
			choosableCmd(),
		},
	}
}
