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
package comparison

import (
	"strconv"

	"github.com/NVIDIA/versioncheck/pkg/header"
	"github.com/NVIDIA/versioncheck/pkg/version"
)

// Relation names how the first operand of a comparison orders against the
// second.
type Relation string

const (
	RelationOlder Relation = "older"
	RelationEqual Relation = "equal"
	RelationNewer Relation = "newer"
)

// RelationOf maps a Compare result to a Relation.
func RelationOf(cmp int) Relation {
	switch {
	case cmp < 0:
		return RelationOlder
	case cmp > 0:
		return RelationNewer
	default:
		return RelationEqual
	}
}

// Operand is one side of a comparison.
type Operand struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

func operandOf(v version.Version) Operand {
	return Operand{Input: v.Original(), Canonical: v.String()}
}

// Comparison is the outcome of comparing A against B.
type Comparison struct {
	header.Header `json:",inline" yaml:",inline"`

	A Operand `json:"a" yaml:"a"`
	B Operand `json:"b" yaml:"b"`

	// Result is -1, 0 or 1 as A is older than, equal to or newer than B.
	Result int `json:"result" yaml:"result"`

	// Relation spells out Result.
	Relation Relation `json:"relation" yaml:"relation"`

	// Newer reports whether B is strictly newer than A.
	Newer bool `json:"newer" yaml:"newer"`
}

// TableHeader implements serializer.Tabular.
func (c *Comparison) TableHeader() []string {
	return []string{"A", "B", "RESULT", "RELATION", "B NEWER"}
}

// TableRows implements serializer.Tabular.
func (c *Comparison) TableRows() [][]string {
	return [][]string{{
		c.A.Input,
		c.B.Input,
		strconv.Itoa(c.Result),
		string(c.Relation),
		strconv.FormatBool(c.Newer),
	}}
}

// Inspection shows how a single version string parses.
type Inspection struct {
	header.Header `json:",inline" yaml:",inline"`

	Input     string         `json:"input" yaml:"input"`
	Canonical string         `json:"canonical" yaml:"canonical"`
	Empty     bool           `json:"empty" yaml:"empty"`
	Tree      string         `json:"tree" yaml:"tree"`
	Hash      string         `json:"hash" yaml:"hash"`
	Items     []version.Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Canonicals lists the canonical forms of several inputs.
type Canonicals struct {
	header.Header `json:",inline" yaml:",inline"`

	Versions []Operand `json:"versions" yaml:"versions"`
}

// TableHeader implements serializer.Tabular.
func (c *Canonicals) TableHeader() []string {
	return []string{"INPUT", "CANONICAL"}
}

// TableRows implements serializer.Tabular.
func (c *Canonicals) TableRows() [][]string {
	rows := make([][]string, 0, len(c.Versions))
	for _, op := range c.Versions {
		rows = append(rows, []string{op.Input, op.Canonical})
	}
	return rows
}

// Order is a sort direction.
type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

// SortResult lists versions in order.
type SortResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Order    Order     `json:"order" yaml:"order"`
	Newest   string    `json:"newest,omitempty" yaml:"newest,omitempty"`
	Versions []Operand `json:"versions" yaml:"versions"`
}

// TableHeader implements serializer.Tabular.
func (s *SortResult) TableHeader() []string {
	return []string{"#", "INPUT", "CANONICAL"}
}

// TableRows implements serializer.Tabular.
func (s *SortResult) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Versions))
	for i, op := range s.Versions {
		rows = append(rows, []string{strconv.Itoa(i + 1), op.Input, op.Canonical})
	}
	return rows
}
