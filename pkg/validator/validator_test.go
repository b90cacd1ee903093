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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/header"
)

func testInventory() *Inventory {
	return &Inventory{
		Components: map[string]string{
			"kubernetes": "v1.33.5-eks-3025e55",
			"driver":     "550.54.15",
			"kernel":     "6.8.0-1028-aws",
			"os":         "ubuntu",
			"plugin":     "2.1-SNAPSHOT",
		},
	}
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name        string
		constraints []Constraint
		wantStatus  ValidationStatus
		wantPassed  int
		wantFailed  int
		wantSkipped int
	}{
		{
			name: "all pass",
			constraints: []Constraint{
				{Name: "kubernetes", Value: ">= 1.32.4"},
				{Name: "driver", Value: ">= 535.104"},
				{Name: "os", Value: "ubuntu"},
			},
			wantStatus: ValidationStatusPass,
			wantPassed: 3,
		},
		{
			name: "snapshot fails release constraint",
			constraints: []Constraint{
				{Name: "plugin", Value: ">= 2.1"},
				{Name: "kernel", Value: ">= 6.8"},
			},
			wantStatus: ValidationStatusFail,
			wantPassed: 1,
			wantFailed: 1,
		},
		{
			name: "missing component is skipped",
			constraints: []Constraint{
				{Name: "driver", Value: ">= 535"},
				{Name: "toolkit", Value: ">= 1.14"},
			},
			wantStatus:  ValidationStatusPartial,
			wantPassed:  1,
			wantSkipped: 1,
		},
		{
			name: "invalid expression is skipped",
			constraints: []Constraint{
				{Name: "driver", Value: ">="},
			},
			wantStatus:  ValidationStatusPartial,
			wantSkipped: 1,
		},
		{
			name: "failure wins over skip",
			constraints: []Constraint{
				{Name: "driver", Value: "< 500"},
				{Name: "toolkit", Value: ">= 1.14"},
			},
			wantStatus:  ValidationStatusFail,
			wantFailed:  1,
			wantSkipped: 1,
		},
		{
			name:        "no constraints",
			constraints: nil,
			wantStatus:  ValidationStatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(WithVersion("v0.1.0"))
			result, err := v.Validate(context.Background(), &ConstraintSet{Constraints: tt.constraints}, testInventory())
			require.NoError(t, err)

			assert.Equal(t, header.KindValidationResult, result.Kind)
			assert.Equal(t, "v0.1.0", result.Metadata["version"])
			assert.Equal(t, tt.wantStatus, result.Summary.Status)
			assert.Equal(t, tt.wantPassed, result.Summary.Passed)
			assert.Equal(t, tt.wantFailed, result.Summary.Failed)
			assert.Equal(t, tt.wantSkipped, result.Summary.Skipped)
			assert.Equal(t, len(tt.constraints), result.Summary.Total)
			assert.Len(t, result.Results, len(tt.constraints))
		})
	}
}

func TestValidator_Validate_ConstraintDetails(t *testing.T) {
	v := New()
	set := &ConstraintSet{Constraints: []Constraint{
		{Name: "plugin", Value: ">= 2.1"},
		{Name: "toolkit", Value: ">= 1.14"},
	}}

	result, err := v.Validate(context.Background(), set, testInventory())
	require.NoError(t, err)
	require.Len(t, result.Results, 2)

	failed := result.Results[0]
	assert.Equal(t, "plugin", failed.Name)
	assert.Equal(t, ">= 2.1", failed.Expected)
	assert.Equal(t, "2.1-SNAPSHOT", failed.Actual)
	assert.Equal(t, ConstraintStatusFailed, failed.Status)
	assert.Equal(t, "expected >= 2.1, got 2.1-SNAPSHOT", failed.Message)

	skipped := result.Results[1]
	assert.Equal(t, ConstraintStatusSkipped, skipped.Status)
	assert.Empty(t, skipped.Actual)
	assert.NotEmpty(t, skipped.Message)
}

func TestValidator_Validate_PreservesOrder(t *testing.T) {
	inv := &Inventory{Components: map[string]string{}}
	set := &ConstraintSet{}
	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("c%03d", i)
		inv.Components[name] = fmt.Sprintf("1.%d", i)
		set.Constraints = append(set.Constraints, Constraint{Name: name, Value: ">= 1.50"})
	}

	result, err := New(WithConcurrency(4)).Validate(context.Background(), set, inv)
	require.NoError(t, err)

	for i, cv := range result.Results {
		assert.Equal(t, fmt.Sprintf("c%03d", i), cv.Name)
	}
	assert.Equal(t, 50, result.Summary.Passed)
	assert.Equal(t, 50, result.Summary.Failed)
}

func TestValidator_Validate_Errors(t *testing.T) {
	v := New()

	_, err := v.Validate(context.Background(), nil, testInventory())
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	_, err = v.Validate(context.Background(), &ConstraintSet{}, nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	big := &ConstraintSet{Constraints: make([]Constraint, defaults.MaxConstraints+1)}
	_, err = v.Validate(context.Background(), big, testInventory())
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	set := &ConstraintSet{Constraints: []Constraint{{Name: "driver", Value: ">= 1"}}}
	_, err = v.Validate(ctx, set, testInventory())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	v := New()
	assert.Empty(t, v.Version)
	assert.Equal(t, defaults.ValidatorConcurrency, v.Concurrency)

	v = New(WithVersion("v1.2.3"), WithConcurrency(2))
	assert.Equal(t, "v1.2.3", v.Version)
	assert.Equal(t, 2, v.Concurrency)

	v = New(WithConcurrency(0))
	assert.Equal(t, defaults.ValidatorConcurrency, v.Concurrency)
}

func TestEvaluateConstraint(t *testing.T) {
	inv := testInventory()

	res := EvaluateConstraint(Constraint{Name: "driver", Value: ">= 535"}, inv)
	require.NoError(t, res.Error)
	assert.True(t, res.Passed)
	assert.Equal(t, "550.54.15", res.Actual)

	res = EvaluateConstraint(Constraint{Name: "missing", Value: ">= 1"}, inv)
	assert.True(t, errors.IsCode(res.Error, errors.ErrCodeNotFound))

	res = EvaluateConstraint(Constraint{Name: "driver", Value: ""}, inv)
	assert.True(t, errors.IsCode(res.Error, errors.ErrCodeInvalidRequest))
}

func TestValidationResult_Table(t *testing.T) {
	r := NewValidationResult()
	r.Results = append(r.Results, ConstraintValidation{
		Name: "driver", Expected: ">= 535", Actual: "550", Status: ConstraintStatusPassed,
	})

	assert.Equal(t, []string{"NAME", "EXPECTED", "ACTUAL", "STATUS", "MESSAGE"}, r.TableHeader())
	assert.Equal(t, [][]string{{"driver", ">= 535", "550", "passed", ""}}, r.TableRows())
}
