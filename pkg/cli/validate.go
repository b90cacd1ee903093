// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
	"github.com/NVIDIA/versioncheck/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate component versions against constraints",
		Description: `Validate an inventory of component versions against a constraint set.

Each constraint names a component and an expression. The inventory maps
component names to the versions actually deployed. The command reports which
constraints pass, fail, or cannot be evaluated.

# Supported Operators

  ">= 1.32.4"  - Greater than or equal (version comparison)
  "<= 1.33"    - Less than or equal (version comparison)
  "> 1.30"     - Greater than (version comparison)
  "< 2.0"      - Less than (version comparison)
  "== 1.0-GA"  - Equal (version comparison, "1.0-GA" == "1")
  "!= rhel"    - Not equal
  "ubuntu"     - Exact string match (no operator)

# Examples

  versioncheck validate --constraints constraints.yaml --inventory inventory.yaml

Read the inventory from stdin and write JSON:
  versioncheck validate -c constraints.yaml -i - --format json

Fail the command if any constraint fails (useful for CI/CD):
  versioncheck validate -c constraints.yaml -i inventory.yaml --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "constraints",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to the constraint set file (JSON or YAML, - for stdin)",
			},
			&cli.StringFlag{
				Name:     "inventory",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Path to the inventory file (JSON or YAML, - for stdin)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any constraint fails validation",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			constraintsPath := cmd.String("constraints")
			inventoryPath := cmd.String("inventory")
			if constraintsPath == serializer.StdioPath && inventoryPath == serializer.StdioPath {
				return fmt.Errorf("--constraints and --inventory cannot both read stdin")
			}

			// Fail on a bad format before doing any work
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			slog.Info("loading constraints", "path", constraintsPath)
			set, err := validator.LoadConstraintSet(constraintsPath)
			if err != nil {
				return fmt.Errorf("failed to load constraints from %q: %w", constraintsPath, err)
			}

			slog.Info("loading inventory", "path", inventoryPath)
			inv, err := validator.LoadInventory(inventoryPath)
			if err != nil {
				return fmt.Errorf("failed to load inventory from %q: %w", inventoryPath, err)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIValidateTimeout)
			defer cancel()

			v := validator.New(validator.WithVersion(version))
			result, err := v.Validate(ctx, set, inv)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			result.ConstraintsSource = constraintsPath
			result.InventorySource = inventoryPath

			if err := writeResult(ctx, cmd, result); err != nil {
				return err
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Summary.Status == validator.ValidationStatusFail {
				return errors.NewWithContext(errors.ErrCodeValidationFailed,
					fmt.Sprintf("%d constraint(s) did not pass", result.Summary.Failed),
					map[string]any{"failed": result.Summary.Failed})
			}

			return nil
		},
	}
}
