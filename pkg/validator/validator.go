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
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/header"
)

// ConstraintEvalResult represents the result of evaluating a single constraint.
type ConstraintEvalResult struct {
	// Passed indicates if the constraint was satisfied.
	Passed bool

	// Actual is the version found in the inventory.
	Actual string

	// Error contains the error if evaluation failed (e.g., component not found).
	Error error
}

// EvaluateConstraint evaluates a single constraint against an inventory
// without creating a Validator.
func EvaluateConstraint(constraint Constraint, inv *Inventory) ConstraintEvalResult {
	result := ConstraintEvalResult{}

	actual, err := inv.Lookup(constraint.Name)
	if err != nil {
		result.Error = err
		return result
	}
	result.Actual = actual

	parsed, err := ParseConstraintExpression(constraint.Value)
	if err != nil {
		result.Error = fmt.Errorf("invalid constraint expression: %w", err)
		return result
	}

	passed, err := parsed.Evaluate(actual)
	if err != nil {
		result.Error = fmt.Errorf("evaluation failed: %w", err)
		return result
	}

	result.Passed = passed
	return result
}

// Validator evaluates constraint sets against inventories.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Concurrency is the number of constraints evaluated at once.
	Concurrency int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithConcurrency returns an Option that sets how many constraints are
// evaluated at once. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.Concurrency = n
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		Concurrency: defaults.ValidatorConcurrency,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every constraint in set against inv. Results keep the
// order of set.Constraints. A canceled context aborts the run.
func (v *Validator) Validate(ctx context.Context, set *ConstraintSet, inv *Inventory) (*ValidationResult, error) {
	start := time.Now()

	if set == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint set cannot be nil")
	}
	if inv == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "inventory cannot be nil")
	}
	if n := len(set.Constraints); n > defaults.MaxConstraints {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many constraints: %d exceeds limit of %d", n, defaults.MaxConstraints),
			map[string]any{"count": n})
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, v.Version)
	result.Results = make([]ConstraintValidation, len(set.Constraints))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(v.Concurrency, 1))
	for i, constraint := range set.Constraints {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result.Results[i] = v.evaluateConstraint(constraint, inv)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		code := errors.ErrCodeInternal
		if ctx.Err() == context.DeadlineExceeded {
			code = errors.ErrCodeTimeout
		}
		return nil, errors.Wrap(code, "validation aborted", err)
	}

	for _, cv := range result.Results {
		constraintEvaluations.WithLabelValues(string(cv.Status)).Inc()
		switch cv.Status {
		case ConstraintStatusPassed:
			result.Summary.Passed++
		case ConstraintStatusFailed:
			result.Summary.Failed++
		case ConstraintStatusSkipped:
			result.Summary.Skipped++
		}
	}

	result.Summary.Total = len(set.Constraints)
	result.Summary.Duration = time.Since(start)

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	validationsTotal.WithLabelValues(string(result.Summary.Status)).Inc()
	validationDuration.Observe(result.Summary.Duration.Seconds())

	slog.Debug("validation completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// evaluateConstraint evaluates a single constraint against the inventory.
func (v *Validator) evaluateConstraint(constraint Constraint, inv *Inventory) ConstraintValidation {
	cv := ConstraintValidation{
		Name:     constraint.Name,
		Expected: constraint.Value,
	}

	actual, err := inv.Lookup(constraint.Name)
	if err != nil {
		cv.Status = ConstraintStatusSkipped
		cv.Message = "component not found in inventory"
		slog.Warn("skipping constraint - component not found",
			"name", constraint.Name)
		return cv
	}
	cv.Actual = actual

	parsed, err := ParseConstraintExpression(constraint.Value)
	if err != nil {
		cv.Status = ConstraintStatusSkipped
		cv.Message = fmt.Sprintf("invalid constraint expression: %v", err)
		slog.Warn("skipping constraint with invalid expression",
			"name", constraint.Name,
			"expression", constraint.Value,
			"error", err)
		return cv
	}

	passed, err := parsed.Evaluate(actual)
	if err != nil {
		cv.Status = ConstraintStatusFailed
		cv.Message = fmt.Sprintf("evaluation failed: %v", err)
		slog.Debug("constraint evaluation failed",
			"name", constraint.Name,
			"expected", constraint.Value,
			"actual", actual,
			"error", err)
		return cv
	}

	if passed {
		cv.Status = ConstraintStatusPassed
		slog.Debug("constraint passed",
			"name", constraint.Name,
			"expected", constraint.Value,
			"actual", actual)
	} else {
		cv.Status = ConstraintStatusFailed
		cv.Message = fmt.Sprintf("expected %s, got %s", parsed, actual)
		slog.Debug("constraint failed",
			"name", constraint.Name,
			"expected", constraint.Value,
			"actual", actual)
	}

	return cv
}
