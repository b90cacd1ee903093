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

package version

import (
	"slices"
)

// Version is a parsed version string.
//
// The zero value is the empty version, which compares equal to "0" and "".
// A Version never changes after Parse returns, so it can be shared freely
// between goroutines.
type Version struct {
	raw   string
	items *listItem
}

// Parse parses raw into a Version. Every string is accepted; malformed input
// simply yields a tree that orders somewhere sensible.
func Parse(raw string) Version {
	return Version{raw: raw, items: parse(raw)}
}

func (v Version) root() *listItem {
	if v.items == nil {
		return &listItem{}
	}
	return v.items
}

// Original returns the string the Version was parsed from.
func (v Version) Original() string {
	return v.raw
}

// String returns the canonical form: siblings joined by '.', nested groups
// introduced by '-', with aliases resolved and trailing zeros dropped.
// "1.0.0-GA" renders as "1", "1.0a1" as "1-alpha-1".
func (v Version) String() string {
	return v.root().String()
}

// IsEmpty reports whether the normalized tree has no items, as for "", "0"
// or "0.0-ga".
func (v Version) IsEmpty() bool {
	return v.root().isNull()
}

// Compare returns -1, 0 or 1 when v is older than, equal to or newer than other.
func (v Version) Compare(other Version) int {
	return compareItems(v.root(), other.root())
}

// Equal reports whether v and other order the same.
// Equal versions always have the same Hash.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// IsNewer reports whether v is newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler. The original input is kept
// so a round trip does not lose spelling such as "1.0.0-GA".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	*v = Parse(string(text))
	return nil
}

// CompareStrings parses both arguments and compares them.
func CompareStrings(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// Canonical returns the canonical form of raw.
func Canonical(raw string) string {
	return Parse(raw).String()
}

// Sort orders versions from oldest to newest. Equal versions keep their
// relative order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Version.Compare)
}

// SortStrings returns a copy of raw sorted from oldest to newest.
func SortStrings(raw []string) []string {
	parsed := make([]Version, len(raw))
	for i, s := range raw {
		parsed[i] = Parse(s)
	}
	Sort(parsed)

	out := make([]string, len(parsed))
	for i, v := range parsed {
		out[i] = v.Original()
	}
	return out
}

// Max returns the newest of versions. The first of several equal maxima
// wins. ok is false when versions is empty.
func Max(versions ...Version) (newest Version, ok bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	newest = versions[0]
	for _, v := range versions[1:] {
		if v.IsNewer(newest) {
			newest = v
		}
	}
	return newest, true
}
