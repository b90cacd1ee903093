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
	"hash/fnv"
	"strconv"
	"strings"
)

// Node is a read-only view of one item in a parsed version tree.
type Node struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Nodes returns the top-level items of the normalized tree.
func (v Version) Nodes() []Node {
	return nodesOf(v.root())
}

func nodesOf(l *listItem) []Node {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]Node, 0, len(l.items))
	for _, it := range l.items {
		n := Node{Kind: it.kind()}
		if child, ok := it.(*listItem); ok {
			n.Children = nodesOf(child)
		} else {
			n.Value = it.String()
		}
		out = append(out, n)
	}
	return out
}

// Tree renders the typed tree, e.g. "list(int(1), list(qualifier(alpha), list(int(1))))".
// The empty qualifier renders as qualifier().
func (v Version) Tree() string {
	var b strings.Builder
	writeTree(&b, v.root())
	return b.String()
}

func writeTree(b *strings.Builder, it item) {
	b.WriteString(it.kind().String())
	b.WriteByte('(')
	switch x := it.(type) {
	case *listItem:
		for i, child := range x.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTree(b, child)
		}
	case intItem, longItem, bigIntItem, qualifierItem:
		b.WriteString(x.String())
	}
	b.WriteByte(')')
}

// Hash returns a hash of v that agrees with Compare: versions that compare
// equal hash equal, even when their trees differ in trailing items that
// weigh nothing, as with "1" and "1-0.5".
func (v Version) Hash() uint64 {
	var b strings.Builder
	writeHashKey(&b, v.root())
	h := fnv.New64a()
	_, _ = h.Write([]byte(b.String()))
	return h.Sum64()
}

// writeHashKey writes a key for it with every trailing run of items that
// compares equal to an absent item removed, at every depth.
func writeHashKey(b *strings.Builder, it item) {
	switch x := it.(type) {
	case *listItem:
		n := len(x.items)
		for n > 0 && x.items[n-1].compareNull() == 0 {
			n--
		}
		b.WriteByte('(')
		for _, child := range x.items[:n] {
			writeHashKey(b, child)
			b.WriteByte(';')
		}
		b.WriteByte(')')
	case intItem:
		b.WriteString("i" + strconv.FormatInt(int64(x), 10))
	case longItem:
		b.WriteString("l" + strconv.FormatUint(uint64(x), 10))
	case bigIntItem:
		b.WriteString("b" + x.v.String())
	case qualifierItem:
		b.WriteString("q" + rankKey(string(x)))
	}
}
