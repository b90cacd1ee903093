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
package update

import (
	"log/slog"
	"strings"

	"github.com/NVIDIA/versioncheck/pkg/header"
	"github.com/NVIDIA/versioncheck/pkg/version"
)

// Status is the outcome of an update check.
type Status string

const (
	// StatusNewVersionAvailable means the latest version is newer than the
	// running one.
	StatusNewVersionAvailable Status = "new_version_available"

	// StatusRunningLatestVersion means the running version is the latest, or
	// newer than what the source reported.
	StatusRunningLatestVersion Status = "running_latest_version"

	// StatusUnknown means no latest version was available to compare.
	StatusUnknown Status = "unknown"
)

// IsOtherVersionNewer reports whether other is strictly newer than mine.
func IsOtherVersionNewer(mine, other string) bool {
	return version.Parse(mine).Less(version.Parse(other))
}

// Result describes one update check.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Current is the running version.
	Current string `json:"current" yaml:"current"`

	// Reported is the latest version as the source reported it.
	Reported string `json:"reported,omitempty" yaml:"reported,omitempty"`

	// Latest is the effective latest version. It falls back to Current when
	// the source reported something that is not newer.
	Latest string `json:"latest,omitempty" yaml:"latest,omitempty"`

	// Status is the outcome of the check.
	Status Status `json:"status" yaml:"status"`
}

// Check compares the running version against the latest one a source
// reported. Both inputs are trimmed. An empty latest yields StatusUnknown.
// A reported version that differs from current but is not newer, such as
// an older release or a differently spelled equal one, is replaced by
// current, so the result reads as running the latest version.
func Check(current, latest string) Result {
	res := Result{
		Current:  strings.TrimSpace(current),
		Reported: strings.TrimSpace(latest),
	}
	res.Init(header.KindCheckResult, "")

	if res.Reported == "" {
		res.Status = StatusUnknown
		return res
	}

	res.Latest = res.Reported
	if res.Latest != res.Current && !IsOtherVersionNewer(res.Current, res.Latest) {
		slog.Debug("reported version is not newer, keeping current",
			"current", res.Current,
			"reported", res.Reported)
		res.Latest = res.Current
	}

	if res.Latest == res.Current {
		res.Status = StatusRunningLatestVersion
	} else {
		res.Status = StatusNewVersionAvailable
	}
	return res
}

// UpdateAvailable reports whether the check found a newer version.
func (r Result) UpdateAvailable() bool {
	return r.Status == StatusNewVersionAvailable
}

// TableHeader implements serializer.Tabular.
func (r Result) TableHeader() []string {
	return []string{"CURRENT", "LATEST", "REPORTED", "STATUS"}
}

// TableRows implements serializer.Tabular.
func (r Result) TableRows() [][]string {
	return [][]string{{r.Current, r.Latest, r.Reported, string(r.Status)}}
}
