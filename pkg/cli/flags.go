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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gliderkitchen/kitchen/pkg/defaults"
	"github.com/gliderkitchen/kitchen/pkg/header"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
	"github.com/gliderkitchen/kitchen/pkg/loader"
	"github.com/gliderkitchen/kitchen/pkg/serializer"
)

// Flags are built per command tree because urfave/cli keeps parsed state
// in the flag values.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func categoryFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "category",
		Usage:    "ingredient category (e.g. fruit, vegetable)",
		Required: required,
	}
}

func withFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  "with",
		Usage: "comma separated ingredients already in the recipe",
	}
}

// parseOutputFormat returns the writable format named by --format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() || !f.CanWrite() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// parseCategory returns the category named by --category.
func parseCategory(cmd *cli.Command) (kitchen.Category, error) {
	c, err := kitchen.ParseCategory(cmd.String("category"))
	if err != nil {
		return "", fmt.Errorf("invalid --category: %w", err)
	}
	return c, nil
}

// loadEngine builds an engine from --catalog and, when needConfig is set,
// --config. Without a configuration the engine uses zero bounds.
func loadEngine(ctx context.Context, cmd *cli.Command, needConfig bool) (*kitchen.Engine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CLILoadTimeout)
	defer cancel()

	catalogPath := cmd.String("catalog")
	if catalogPath == "" {
		return nil, fmt.Errorf("--catalog is required")
	}

	var cfg kitchen.Config
	if configPath := cmd.String("config"); configPath != "" {
		var err error
		if cfg, err = loader.LoadConfig(ctx, configPath); err != nil {
			return nil, err
		}
	} else if needConfig {
		return nil, fmt.Errorf("--config is required")
	}

	catalogs, err := loader.LoadCatalogs(ctx, catalogPath)
	if err != nil {
		return nil, err
	}
	return kitchen.NewEngine(cfg, kitchen.WithCatalogs(catalogs)), nil
}

// seedRecipe adds every --with ingredient to the category recipe.
func seedRecipe(e *kitchen.Engine, c kitchen.Category, cmd *cli.Command) error {
	for _, raw := range cmd.StringSlice("with") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if err := e.AddIngredient(c, name); err != nil {
			return fmt.Errorf("--with %s: %w", name, err)
		}
	}
	return nil
}

// writeDocument serializes v to --output or the command writer.
func writeDocument(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	if doc, ok := v.(interface{ Set(key, value string) }); ok {
		doc.Set(header.MetadataSource, cmd.String("catalog"))
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}
