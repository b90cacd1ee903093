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
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant of a version tree item.
// Kinds are declared in cross-type precedence order: when two items of
// different kinds meet at the same position, the higher kind wins.
type Kind int

const (
	// KindQualifier is a normalized non-numeric token such as "alpha" or "sp".
	KindQualifier Kind = iota
	// KindList is an ordered group opened by a hyphen or a digit/letter boundary.
	KindList
	// KindInt is a numeric run of at most 9 significant digits.
	KindInt
	// KindLong is a numeric run of 10 to 18 significant digits.
	KindLong
	// KindBigInt is a numeric run of more than 18 significant digits.
	KindBigInt
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindQualifier:
		return "qualifier"
	case KindList:
		return "list"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindBigInt:
		return "bigint"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so nodes serialize with
// kind names.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindQualifier; c <= KindBigInt; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown item kind %q", text)
}

const (
	maxIntDigits  = 9
	maxLongDigits = 18
)

// item is a node of a parsed version tree.
//
// The interface is unexported so the set of variants is closed to this file:
// every variant must say how it orders against an absent item and against
// another item of its own kind. Cross-kind ordering never reaches compareSame.
type item interface {
	kind() Kind
	isNull() bool
	compareNull() int
	compareSame(other item) int
	String() string
}

// compareItems orders a against b; a nil b stands for an absent item.
func compareItems(a, b item) int {
	if b == nil {
		return a.compareNull()
	}
	if ka, kb := a.kind(), b.kind(); ka != kb {
		return cmp.Compare(ka, kb)
	}
	return a.compareSame(b)
}

type intItem int32

func (i intItem) kind() Kind       { return KindInt }
func (i intItem) isNull() bool     { return i == 0 }
func (i intItem) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i intItem) compareNull() int { return nullSign(i.isNull()) }

func (i intItem) compareSame(other item) int {
	return cmp.Compare(i, other.(intItem))
}

type longItem uint64

func (l longItem) kind() Kind       { return KindLong }
func (l longItem) isNull() bool     { return l == 0 }
func (l longItem) String() string   { return strconv.FormatUint(uint64(l), 10) }
func (l longItem) compareNull() int { return nullSign(l.isNull()) }

func (l longItem) compareSame(other item) int {
	return cmp.Compare(l, other.(longItem))
}

type bigIntItem struct {
	v *big.Int
}

func (b bigIntItem) kind() Kind       { return KindBigInt }
func (b bigIntItem) isNull() bool     { return b.v.Sign() == 0 }
func (b bigIntItem) String() string   { return b.v.String() }
func (b bigIntItem) compareNull() int { return nullSign(b.isNull()) }

func (b bigIntItem) compareSame(other item) int {
	return b.v.Cmp(other.(bigIntItem).v)
}

func nullSign(isNull bool) int {
	if isNull {
		return 0
	}
	return 1
}

// qualifiers lists the well-known qualifiers from oldest to newest.
// The empty string is the release marker.
var qualifiers = []string{"alpha", "beta", "milestone", "rc", "snapshot", "", "sp"}

var qualifierAliases = map[string]string{
	"ga":      "",
	"final":   "",
	"release": "",
	"cr":      "rc",
}

var releaseRank = rankKey("")

type qualifierItem string

// newQualifier normalizes a non-numeric run. Single-letter shorthands are
// only expanded when the run was closed by a digit, as in "1.0a1".
func newQualifier(text string, followedByDigit bool) qualifierItem {
	if followedByDigit && len(text) == 1 {
		switch text[0] {
		case 'a':
			text = "alpha"
		case 'b':
			text = "beta"
		case 'm':
			text = "milestone"
		}
	}
	if alias, ok := qualifierAliases[text]; ok {
		text = alias
	}
	return qualifierItem(text)
}

// rankKey maps a qualifier to a string that sorts by release maturity.
// Unknown qualifiers sort after every known one and lexically among themselves.
func rankKey(q string) string {
	if i := slices.Index(qualifiers, q); i >= 0 {
		return strconv.Itoa(i)
	}
	return strconv.Itoa(len(qualifiers)) + "-" + q
}

func (q qualifierItem) kind() Kind     { return KindQualifier }
func (q qualifierItem) isNull() bool   { return rankKey(string(q)) == releaseRank }
func (q qualifierItem) String() string { return string(q) }

func (q qualifierItem) compareNull() int {
	return strings.Compare(rankKey(string(q)), releaseRank)
}

func (q qualifierItem) compareSame(other item) int {
	return strings.Compare(rankKey(string(q)), rankKey(string(other.(qualifierItem))))
}

type listItem struct {
	items []item
}

func (l *listItem) kind() Kind   { return KindList }
func (l *listItem) isNull() bool { return len(l.items) == 0 }

func (l *listItem) add(it item) {
	l.items = append(l.items, it)
}

func (l *listItem) compareNull() int {
	if len(l.items) == 0 {
		return 0
	}
	return l.items[0].compareNull()
}

// compareSame walks both lists in lock step. Where one side has run out,
// the remaining items are weighed against an absent item; the sign is
// flipped when the right side is the longer one.
func (l *listItem) compareSame(other item) int {
	r := other.(*listItem)
	n := max(len(l.items), len(r.items))
	for i := 0; i < n; i++ {
		var c int
		switch {
		case i >= len(l.items):
			c = -r.items[i].compareNull()
		case i >= len(r.items):
			c = l.items[i].compareNull()
		default:
			c = compareItems(l.items[i], r.items[i])
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// normalize drops trailing null items. Non-null nested lists are stepped
// over, so nulls sitting in front of them are dropped too; the walk stops at
// the first non-null item that is not a list.
func (l *listItem) normalize() {
	for i := len(l.items) - 1; i >= 0; i-- {
		it := l.items[i]
		if it.isNull() {
			l.items = slices.Delete(l.items, i, i+1)
		} else if it.kind() != KindList {
			break
		}
	}
}

// collapse lifts the children of a sole nested list into l, so "-final-1"
// and "-1" describe the same build group. Any group left holding only a
// nested group collapses, so "1-0-1" and "1--1" also equal "1-1".
func (l *listItem) collapse() {
	if len(l.items) != 1 {
		return
	}
	if child, ok := l.items[0].(*listItem); ok {
		l.items = child.items
	}
}

// String joins siblings with '.' and prefixes nested lists with '-'.
func (l *listItem) String() string {
	var b strings.Builder
	for _, it := range l.items {
		if b.Len() > 0 {
			if it.kind() == KindList {
				b.WriteByte('-')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString(it.String())
	}
	return b.String()
}
