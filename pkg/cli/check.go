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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versioncheck/pkg/serializer"
	"github.com/NVIDIA/versioncheck/pkg/update"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check whether a newer version is available",
		Description: fmt.Sprintf(`Check the running version against the latest published version.

The latest version is given directly with --latest, or extracted from a
payload already fetched by another tool with --latest-file and --mapper.
Nothing is fetched over the network.

Mappers: %s

# Examples

  versioncheck check --current 1.2.0 --latest 1.3.0

  curl -s https://api.github.com/repos/OWNER/REPO/releases | \
    versioncheck check --current 1.2.0 --latest-file - --mapper github-release

Fail the command when an update is available (useful for CI/CD):
  versioncheck check --current 1.2.0 --latest 1.3.0 --fail-on-update`,
			strings.Join(update.MapperNames(), ", ")),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "current",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Currently running version",
			},
			&cli.StringFlag{
				Name:    "latest",
				Aliases: []string{"l"},
				Usage:   "Latest published version",
			},
			&cli.StringFlag{
				Name:  "latest-file",
				Usage: "File holding a payload with the latest version (- for stdin)",
			},
			&cli.StringFlag{
				Name:  "mapper",
				Value: update.MapperFirstLine,
				Usage: "How to extract the version from --latest-file",
			},
			&cli.BoolFlag{
				Name:  "fail-on-update",
				Usage: "Exit with non-zero status if a newer version is available",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			current := cmd.String("current")
			latestFile := cmd.String("latest-file")
			if cmd.IsSet("latest") && latestFile != "" {
				return fmt.Errorf("--latest and --latest-file are mutually exclusive")
			}

			checker := update.NewChecker(update.WithVersion(version))

			var res update.Result
			if latestFile != "" {
				mapper, err := update.MapperByName(cmd.String("mapper"))
				if err != nil {
					return err
				}
				in, closeFn, err := openPayload(cmd, latestFile)
				if err != nil {
					return err
				}
				defer closeFn()

				if res, err = checker.CheckPayload(current, in, mapper); err != nil {
					return fmt.Errorf("failed to read latest version from %q: %w", latestFile, err)
				}
			} else {
				res = checker.Check(current, cmd.String("latest"))
			}

			slog.Debug("update check completed",
				"current", res.Current,
				"latest", res.Latest,
				"status", res.Status)

			if err := writeResult(ctx, cmd, res); err != nil {
				return err
			}

			if cmd.Bool("fail-on-update") && res.UpdateAvailable() {
				return fmt.Errorf("newer version available: %s (running %s)", res.Latest, res.Current)
			}
			return nil
		},
	}
}

// openPayload opens path for reading; "-" is stdin, which is never closed.
func openPayload(cmd *cli.Command, path string) (io.Reader, func(), error) {
	if path == serializer.StdioPath {
		var in io.Reader = os.Stdin
		if cmd.Reader != nil {
			in = cmd.Reader
		}
		return in, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close payload file", "path", path, "error", err)
		}
	}, nil
}
