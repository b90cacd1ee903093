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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versioncheck/pkg/comparison"
	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions",
		ArgsUsage: "A B",
		Description: `Compare version A against version B. The result is -1 when A is older,
0 when both order the same and 1 when A is newer.

# Examples

  versioncheck compare 1.0-SNAPSHOT 1.0
  versioncheck compare --format json 1.0a1 1.0-alpha-1`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, "A", "B")
			if err != nil {
				return err
			}
			res := comparison.New(comparison.WithVersion(version)).Compare(args[0], args[1])
			slog.Debug("compared versions", "a", args[0], "b", args[1], "result", res.Result)
			return writeResult(ctx, cmd, res)
		},
	}
}

func newerCmd() *cli.Command {
	return &cli.Command{
		Name:      "newer",
		Usage:     "Report whether OTHER is newer than CURRENT",
		ArgsUsage: "CURRENT OTHER",
		Description: `Report whether OTHER is newer than CURRENT. With --exit-code the command
fails unless OTHER is newer, which makes it usable as a shell test:

  versioncheck newer --exit-code "$(cat VERSION)" 2.1.0 && echo upgrade`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "Exit with non-zero status unless OTHER is newer",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, "CURRENT", "OTHER")
			if err != nil {
				return err
			}
			res := comparison.New(comparison.WithVersion(version)).Compare(args[0], args[1])
			if err := writeResult(ctx, cmd, res); err != nil {
				return err
			}
			if cmd.Bool("exit-code") && !res.Newer {
				return fmt.Errorf("%q is not newer than %q", args[1], args[0])
			}
			return nil
		},
	}
}

func canonicalCmd() *cli.Command {
	return &cli.Command{
		Name:      "canonical",
		Usage:     "Print the canonical form of versions",
		ArgsUsage: "VERSION...",
		Description: `Print the canonical form of each version: aliases resolved, trailing
zeros dropped and groups introduced by '-'. Versions that compare equal
have the same canonical form.

  versioncheck canonical --format table 1.0.0-GA 1.0a1 2.3.4.SP1`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := versionArgs(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, comparison.New(comparison.WithVersion(version)).Canonicalize(raw...))
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show how a version parses",
		ArgsUsage: "VERSION",
		Description: `Show the typed item tree, canonical form and hash of a version.

  versioncheck inspect 1.0-alpha-2-SNAPSHOT`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, "VERSION")
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, comparison.New(comparison.WithVersion(version)).Inspect(args[0]))
		},
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort versions from oldest to newest",
		ArgsUsage: "VERSION... | -",
		Description: `Sort versions from oldest to newest, or newest to oldest with --desc.
Equal versions keep their input order. A single "-" reads one version per
line from stdin.

  versioncheck sort 1.0 1.0-SNAPSHOT 1.0-sp 0.9
  git tag | versioncheck sort --desc --format table -`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Sort from newest to oldest",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := versionArgs(cmd)
			if err != nil {
				return err
			}
			if len(raw) > defaults.MaxSortVersions {
				return fmt.Errorf("too many versions: %d (max %d)", len(raw), defaults.MaxSortVersions)
			}

			order := comparison.OrderAscending
			if cmd.Bool("desc") {
				order = comparison.OrderDescending
			}
			return writeResult(ctx, cmd, comparison.New(comparison.WithVersion(version)).Sort(raw, order))
		},
	}
}

func exactArgs(cmd *cli.Command, names ...string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != len(names) {
		return nil, fmt.Errorf("%s requires %d argument(s): %s, got %d",
			cmd.Name, len(names), strings.Join(names, " "), len(args))
	}
	return args, nil
}

// versionArgs returns the positional arguments, or the lines of stdin when
// the only argument is "-".
func versionArgs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, fmt.Errorf("%s requires at least one version", cmd.Name)
	}
	if len(args) == 1 && args[0] == serializer.StdioPath {
		var in io.Reader = os.Stdin
		if cmd.Reader != nil {
			in = cmd.Reader
		}
		return readLines(in)
	}
	return args, nil
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read versions: %w", err)
	}
	return out, nil
}
