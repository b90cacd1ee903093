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
	"fmt"
	"slices"

	"github.com/NVIDIA/versioncheck/pkg/header"
	"github.com/NVIDIA/versioncheck/pkg/version"
)

// Comparer builds comparison documents stamped with the tool version.
type Comparer struct {
	// Version is the tool version recorded in document metadata.
	Version string
}

// Option is a functional option for configuring Comparer instances.
type Option func(*Comparer)

// WithVersion returns an Option that sets the Comparer version string.
func WithVersion(version string) Option {
	return func(c *Comparer) {
		c.Version = version
	}
}

// New creates a Comparer with the provided options.
func New(opts ...Option) *Comparer {
	c := &Comparer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare compares a against b.
func (c *Comparer) Compare(a, b string) *Comparison {
	va, vb := version.Parse(a), version.Parse(b)
	cmp := va.Compare(vb)

	res := &Comparison{
		A:        operandOf(va),
		B:        operandOf(vb),
		Result:   cmp,
		Relation: RelationOf(cmp),
		Newer:    cmp < 0,
	}
	res.Init(header.KindComparison, c.Version)
	comparisonsTotal.WithLabelValues("compare").Inc()
	return res
}

// Inspect reports how raw parses.
func (c *Comparer) Inspect(raw string) *Inspection {
	v := version.Parse(raw)
	res := &Inspection{
		Input:     raw,
		Canonical: v.String(),
		Empty:     v.IsEmpty(),
		Tree:      v.Tree(),
		Hash:      fmt.Sprintf("%016x", v.Hash()),
		Items:     v.Nodes(),
	}
	res.Init(header.KindInspection, c.Version)
	comparisonsTotal.WithLabelValues("inspect").Inc()
	return res
}

// Canonicalize returns the canonical form of every input, in input order.
func (c *Comparer) Canonicalize(raw ...string) *Canonicals {
	res := &Canonicals{Versions: make([]Operand, 0, len(raw))}
	for _, s := range raw {
		res.Versions = append(res.Versions, operandOf(version.Parse(s)))
	}
	res.Init(header.KindCanonicals, c.Version)
	comparisonsTotal.WithLabelValues("canonical").Inc()
	return res
}

// Sort orders raw from oldest to newest, or newest to oldest for
// OrderDescending. Equal versions keep their input order either way.
func (c *Comparer) Sort(raw []string, order Order) *SortResult {
	parsed := make([]version.Version, len(raw))
	for i, s := range raw {
		parsed[i] = version.Parse(s)
	}

	if order == OrderDescending {
		slices.SortStableFunc(parsed, func(a, b version.Version) int {
			return b.Compare(a)
		})
	} else {
		order = OrderAscending
		version.Sort(parsed)
	}

	res := &SortResult{
		Order:    order,
		Versions: make([]Operand, 0, len(parsed)),
	}
	for _, v := range parsed {
		res.Versions = append(res.Versions, operandOf(v))
	}
	if newest, ok := version.Max(parsed...); ok {
		res.Newest = newest.Original()
	}
	res.Init(header.KindSortResult, c.Version)

	comparisonsTotal.WithLabelValues("sort").Inc()
	sortSize.Observe(float64(len(raw)))
	return res
}
