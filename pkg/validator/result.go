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
	"time"

	"github.com/NVIDIA/versioncheck/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates all constraints passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more constraints failed.
	ValidationStatusFail ValidationStatus = "fail"

	// ValidationStatusPartial indicates some constraints couldn't be evaluated.
	ValidationStatusPartial ValidationStatus = "partial"
)

// ConstraintStatus represents the outcome of evaluating a single constraint.
type ConstraintStatus string

const (
	// ConstraintStatusPassed indicates the constraint was satisfied.
	ConstraintStatusPassed ConstraintStatus = "passed"

	// ConstraintStatusFailed indicates the constraint was not satisfied.
	ConstraintStatusFailed ConstraintStatus = "failed"

	// ConstraintStatusSkipped indicates the constraint couldn't be evaluated.
	ConstraintStatusSkipped ConstraintStatus = "skipped"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// ConstraintsSource is where the constraint set was read from.
	ConstraintsSource string `json:"constraintsSource,omitempty" yaml:"constraintsSource,omitempty"`

	// InventorySource is where the inventory was read from.
	InventorySource string `json:"inventorySource,omitempty" yaml:"inventorySource,omitempty"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-constraint validation details in constraint order.
	Results []ConstraintValidation `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	Passed  int              `json:"passed" yaml:"passed"`
	Failed  int              `json:"failed" yaml:"failed"`
	Skipped int              `json:"skipped" yaml:"skipped"`
	Total   int              `json:"total" yaml:"total"`
	Status  ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ConstraintValidation represents the result of evaluating a single constraint.
type ConstraintValidation struct {
	// Name is the component name (e.g., "driver").
	Name string `json:"name" yaml:"name"`

	// Expected is the constraint expression (e.g., ">= 535.104").
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the version found in the inventory (e.g., "550.54.15").
	Actual string `json:"actual" yaml:"actual"`

	// Status is the outcome of this constraint evaluation.
	Status ConstraintStatus `json:"status" yaml:"status"`

	// Message provides additional context, especially for failures or skipped constraints.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]ConstraintValidation, 0),
	}
}

// TableHeader implements serializer.Tabular.
func (r *ValidationResult) TableHeader() []string {
	return []string{"NAME", "EXPECTED", "ACTUAL", "STATUS", "MESSAGE"}
}

// TableRows implements serializer.Tabular.
func (r *ValidationResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, cv := range r.Results {
		rows = append(rows, []string{cv.Name, cv.Expected, cv.Actual, string(cv.Status), cv.Message})
	}
	return rows
}
