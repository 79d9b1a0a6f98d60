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

	"github.com/urfave/cli/v3"

	"github.com/gliderkitchen/kitchen/pkg/header"
	"github.com/gliderkitchen/kitchen/pkg/kitchen"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List the ingredients and ratios of each category",
		Description: `Print the catalog of every category in the catalog document, or of a
single category with --category. Only --catalog is required.`,
		Flags: []cli.Flag{
			categoryFlag(false),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := loadEngine(ctx, cmd, false)
			if err != nil {
				return err
			}

			var categories []kitchen.Category
			if cmd.String("category") != "" {
				c, err := parseCategory(cmd)
				if err != nil {
					return err
				}
				categories = append(categories, c)
			}

			doc, err := kitchen.NewCatalogDocument(e, version, categories...)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, doc)
		},
	}
}

func ratioCmd() *cli.Command {
	return &cli.Command{
		Name:  "ratio",
		Usage: "Evaluate the ratio and validity of an ingredient set",
		Description: `Compute the mean ratio of the --with ingredients and report whether it
lies within the configured ratio bounds.

  kitchen -c kitchen.yaml -t catalog.yaml ratio --category fruit --with apple,kiwi`,
		Flags: []cli.Flag{
			categoryFlag(true),
			withFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, c, err := seededEngine(ctx, cmd)
			if err != nil {
				return err
			}
			doc, err := kitchen.NewRecipeDocument(e, c, header.KindRatio, version)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, doc)
		},
	}
}

func predictCmd() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "List every valid extension of an ingredient set",
		Description: `Enumerate every ingredient set reachable from the --with ingredients by
adding catalog ingredients that satisfies the configured bounds.`,
		Flags: []cli.Flag{
			categoryFlag(true),
			withFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, c, err := seededEngine(ctx, cmd)
			if err != nil {
				return err
			}
			doc, err := kitchen.NewPredictionDocument(e, c, version)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, doc)
		},
	}
}

func choosableCmd() *cli.Command {
	return &cli.Command{
		Name:  "choosable",
		Usage: "List the ingredients that can still be picked",
		Description: `Print the ingredients that appear in at least one valid extension of the
--with ingredients. With no --with every catalog ingredient is choosable.`,
		Flags: []cli.Flag{
			categoryFlag(true),
			withFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, c, err := seededEngine(ctx, cmd)
			if err != nil {
				return err
			}
			doc, err := kitchen.NewChoosableDocument(e, c, version)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, doc)
		},
	}
}

// seededEngine loads an engine and applies --with to the --category recipe.
func seededEngine(ctx context.Context, cmd *cli.Command) (*kitchen.Engine, kitchen.Category, error) {
	c, err := parseCategory(cmd)
	if err != nil {
		return nil, "", err
	}
	e, err := loadEngine(ctx, cmd, true)
	if err != nil {
		return nil, "", err
	}
	if _, err := e.Catalog(c); err != nil {
		return nil, "", fmt.Errorf("category %s: %w", c, err)
	}
	if err := seedRecipe(e, c, cmd); err != nil {
		return nil, "", err
	}
	return e, c, nil
}
