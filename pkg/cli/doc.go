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
// Package cli implements the versioncheck command-line interface.
//
// # Commands
//
// compare - Compare two versions:
//
//	versioncheck compare 1.0-SNAPSHOT 1.0
//
// newer - Report whether OTHER is newer than CURRENT:
//
//	versioncheck newer --exit-code 1.2.0 1.3.0
//
// canonical - Print canonical forms:
//
//	versioncheck canonical 1.0.0-GA 1.0a1
//
// inspect - Show the parsed item tree of a version:
//
//	versioncheck inspect 2.3.4.SP1
//
// sort - Sort versions, optionally newest first:
//
//	versioncheck sort --desc 1.0 1.0-sp 1.0-rc1
//
// check - Compare the running version with the latest published one:
//
//	versioncheck check --current 1.2.0 --latest-file releases.json --mapper github-release
//
// validate - Evaluate a constraint set against an inventory:
//
//	versioncheck validate --constraints constraints.yaml --inventory inventory.yaml
//
// # Global Flags
//
//	--log-level    Logging verbosity (debug, info, warn, error; env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Every command also accepts:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, execution failure, or a --fail-on-* condition
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/versioncheck/pkg/cli.version=1.0.0'"
package cli
