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
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// builder tracks the list currently receiving items and every list opened
// so far. Each new list is a child of the active one, so the stack is a
// single chain from the root down.
type builder struct {
	active *listItem
	stack  []*listItem
}

func newBuilder() *builder {
	root := &listItem{}
	return &builder{active: root, stack: []*listItem{root}}
}

func (b *builder) add(it item) {
	b.active.add(it)
}

// open appends a nested list to the active list and makes it active.
func (b *builder) open() {
	child := &listItem{}
	b.active.add(child)
	b.active = child
	b.stack = append(b.stack, child)
}

// closeRun adds the run ending at a delimiter. An empty run stands for 0.
func (b *builder) closeRun(run string, isDigit bool) {
	if run == "" {
		b.add(intItem(0))
		return
	}
	b.add(parseItem(isDigit, run))
}

// finish normalizes the open lists deepest first and returns the root.
func (b *builder) finish() *listItem {
	for i := len(b.stack) - 1; i >= 0; i-- {
		l := b.stack[i]
		l.normalize()
		if i > 0 {
			l.collapse()
		}
	}
	return b.stack[0]
}

// parse builds the item tree for raw. It accepts any input.
func parse(raw string) *listItem {
	// A Caser holds state and is not safe for concurrent use.
	s := cases.Lower(language.English).String(raw)

	b := newBuilder()
	isDigit := false
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
			b.closeRun(s[start:i], isDigit)
			start = i + 1
		case c == '-':
			b.closeRun(s[start:i], isDigit)
			start = i + 1
			b.open()
		case isASCIIDigit(c):
			if !isDigit && i > start {
				b.add(newQualifier(s[start:i], true))
				start = i
				b.open()
			}
			isDigit = true
		default:
			if isDigit && i > start {
				b.add(parseItem(true, s[start:i]))
				start = i
				b.open()
			}
			isDigit = false
		}
	}

	if len(s) > start {
		b.add(parseItem(isDigit, s[start:]))
	}

	return b.finish()
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseItem classifies a non-empty run.
func parseItem(isDigit bool, run string) item {
	if !isDigit {
		return newQualifier(run, false)
	}

	run = stripLeadingZeros(run)
	switch {
	case len(run) <= maxIntDigits:
		// run is all ASCII digits and fits the chosen width; conversions cannot fail.
		n, _ := strconv.ParseInt(run, 10, 32)
		return intItem(n)
	case len(run) <= maxLongDigits:
		n, _ := strconv.ParseUint(run, 10, 64)
		return longItem(n)
	default:
		n, _ := new(big.Int).SetString(run, 10)
		return bigIntItem{v: n}
	}
}

func stripLeadingZeros(run string) string {
	run = strings.TrimLeft(run, "0")
	if run == "" {
		return "0"
	}
	return run
}
