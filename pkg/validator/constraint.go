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

package validator

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/version"
)

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equal).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="

	// OperatorExact represents no operator (exact string match).
	OperatorExact Operator = ""
)

// operators is checked in order, longest first, so ">=" is never read as ">".
var operators = []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}

// ParsedConstraint represents a parsed constraint expression.
type ParsedConstraint struct {
	// Operator is the comparison operator (or empty for exact match).
	Operator Operator

	// Value is the expected value after the operator.
	Value string

	// IsVersionComparison indicates the values are compared as versions
	// rather than as strings.
	IsVersionComparison bool
}

// ParseConstraintExpression parses a constraint value expression.
// Examples:
//   - ">= 1.32.4" -> {Operator: ">=", Value: "1.32.4", IsVersionComparison: true}
//   - "ubuntu" -> {Operator: "", Value: "ubuntu", IsVersionComparison: false}
//   - "== 1.0-GA" -> {Operator: "==", Value: "1.0-GA", IsVersionComparison: true}
func ParseConstraintExpression(expr string) (*ParsedConstraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	pc := &ParsedConstraint{Operator: OperatorExact, Value: expr}
	for _, op := range operators {
		if rest, ok := strings.CutPrefix(expr, string(op)); ok {
			pc.Operator = op
			pc.Value = strings.TrimSpace(rest)
			break
		}
	}

	if pc.Value == "" {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"constraint value cannot be empty after operator", map[string]any{"operator": string(pc.Operator)})
	}

	switch pc.Operator {
	case OperatorExact:
		pc.IsVersionComparison = false
	case OperatorEQ, OperatorNE:
		pc.IsVersionComparison = looksLikeVersion(pc.Value)
	default:
		pc.IsVersionComparison = true
	}

	return pc, nil
}

// looksLikeVersion reports whether s holds an ASCII digit, so "2", "v1.31"
// and "1-SNAPSHOT" compare as versions while "ubuntu" compares as a string.
func looksLikeVersion(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// parseVersion parses s, dropping a leading 'v' or 'V' in front of a digit
// so "v1.33.5" and "1.33.5" compare equal.
func parseVersion(s string) version.Version {
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return version.Parse(s)
}

// Evaluate evaluates the constraint against an actual value.
// Returns true if the constraint is satisfied, false otherwise.
func (pc *ParsedConstraint) Evaluate(actual string) (bool, error) {
	actual = strings.TrimSpace(actual)

	switch pc.Operator {
	case OperatorExact:
		// Exact string match (case-sensitive)
		return actual == pc.Value, nil

	case OperatorEQ:
		if pc.IsVersionComparison {
			return parseVersion(actual).Equal(parseVersion(pc.Value)), nil
		}
		return actual == pc.Value, nil

	case OperatorNE:
		if pc.IsVersionComparison {
			return !parseVersion(actual).Equal(parseVersion(pc.Value)), nil
		}
		return actual != pc.Value, nil

	case OperatorGTE, OperatorGT, OperatorLTE, OperatorLT:
		if actual == "" {
			return false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"actual version is empty", map[string]any{"expected": pc.String()})
		}

		cmp := parseVersion(actual).Compare(parseVersion(pc.Value))

		//nolint:exhaustive // Only comparison operators reach this point; EQ, NE, Exact are handled above
		switch pc.Operator {
		case OperatorGTE:
			return cmp >= 0, nil
		case OperatorGT:
			return cmp > 0, nil
		case OperatorLTE:
			return cmp <= 0, nil
		default:
			return cmp < 0, nil
		}

	default:
		return false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown operator", map[string]any{"operator": string(pc.Operator)})
	}
}

// String returns a string representation of the parsed constraint.
func (pc *ParsedConstraint) String() string {
	if pc.Operator == OperatorExact {
		return pc.Value
	}
	return fmt.Sprintf("%s %s", pc.Operator, pc.Value)
}
