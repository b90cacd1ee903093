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

// Package version parses free-form version strings and orders them the way
// Maven orders artifact versions.
//
// # Overview
//
// Any string is a version. "1.0.0-rc1", "2.3.4.SP1" and "1.0-alpha-2-SNAPSHOT"
// all parse; there is no error path. Parsing produces a tree of typed items:
//
//   - int: a numeric run of up to 9 significant digits
//   - long: a numeric run of 10 to 18 significant digits
//   - bigint: a longer numeric run, held in a math/big.Int
//   - qualifier: a lowercased non-numeric run such as "alpha" or "sp"
//   - list: a group opened by '-' or by a digit/letter boundary
//
// The root of every tree is a list.
//
// # Usage
//
// Parse and compare:
//
//	a := version.Parse("1.0-alpha-1")
//	b := version.Parse("1.0")
//	if a.Less(b) {
//	    fmt.Println("pre-release")
//	}
//
// Compare raw strings directly:
//
//	version.CompareStrings("1.0a1", "1.0-alpha-1") // 0
//
// Render the canonical form:
//
//	version.Canonical("1.0.0-GA") // "1"
//
// # Parsing
//
// Input is lowercased with English case rules, then scanned left to right.
// A '.' ends the current run. A '-' ends the current run and opens a nested
// list. Switching between digits and letters without a delimiter ends the run
// and opens a nested list, so "1.0a1" reads like "1.0-a-1". An empty run in
// front of a delimiter counts as 0. Only ASCII 0-9 are digits.
//
// A letter run followed directly by a digit has its single-letter shorthands
// expanded: a -> alpha, b -> beta, m -> milestone. Then aliases apply:
// ga, final and release become the empty release qualifier, cr becomes rc.
//
// After the scan each list drops its trailing null items (zero, the release
// qualifier, empty lists), stepping over non-null nested lists. A nested list
// left holding a single nested list takes over that list's children, so
// "1.0-final-1" and "1-1" produce the same tree.
//
// # Ordering
//
// Items of different kinds order by kind: bigint > long > int > list >
// qualifier. Numbers of the same kind compare by value. Qualifiers compare by
// maturity:
//
//	alpha < beta < milestone < rc < snapshot < "" (release) < sp < anything else
//
// Unknown qualifiers sort after sp and lexically among themselves. Lists
// compare item by item; where one list runs out, the remaining items of the
// other are weighed against nothing, so "1.0-1" is newer than "1.0" while
// "1.0-0" equals it.
//
// # Concurrency
//
// Parse allocates everything it uses, and a Version is never modified after
// Parse returns. Any number of goroutines may parse and compare at once.
package version
