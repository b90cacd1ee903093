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
// Package update decides whether a newer release is available.
//
// Fetching the latest version is left to the caller. The package compares a
// running version against a reported one with Maven ordering and extracts
// version strings from payloads that common release sources return.
//
// # Checking
//
//	if update.IsOtherVersionNewer("1.0-SNAPSHOT", "1.0") {
//	    // snapshot builds rank below the release
//	}
//
//	res := update.Check("1.2.3", "1.2.4")
//	// res.Status == update.StatusNewVersionAvailable
//
// Check mirrors how plugin update checkers treat stale sources: when the
// reported version is not newer than the running one, the running version is
// taken as the latest and the status is running_latest_version.
//
// # Mappers
//
// A Mapper turns a payload into a version string:
//
//   - first-line: the first line of a plain text body, trimmed
//   - spiget: the "name" field of a Spiget version object
//   - github-release: the "tag_name" of the first GitHub release
//
// Example:
//
//	resp, err := http.Get("https://api.github.com/repos/org/repo/releases")
//	...
//	res, err := update.NewChecker().CheckPayload("1.2.3", resp.Body, update.GitHubReleaseTag)
//
// # HTTP
//
// Checker.HandleCheck serves GET and POST /v1/check; see its documentation.
package update
