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

// Package validator checks an inventory of installed component versions
// against a set of version constraints.
//
// # Overview
//
// A ConstraintSet names components and the expression each one's version
// must satisfy. An Inventory maps component names to the versions actually
// installed. Validate looks every constraint up in the inventory and
// evaluates it with Maven version ordering from pkg/version, so
// "2.1-SNAPSHOT" does not satisfy ">= 2.1" while "2.1-sp1" does.
//
// # Documents
//
//	kind: ConstraintSet
//	apiVersion: versioncheck.nvidia.com/v1alpha1
//	constraints:
//	  - name: driver
//	    value: ">= 535.104"
//	  - name: os
//	    value: ubuntu
//
//	kind: Inventory
//	apiVersion: versioncheck.nvidia.com/v1alpha1
//	components:
//	  driver: "550.54.15"
//	  os: ubuntu
//
// # Supported Operators
//
//   - ">=" - Greater than or equal (version comparison)
//   - "<=" - Less than or equal (version comparison)
//   - ">"  - Greater than (version comparison)
//   - "<"  - Less than (version comparison)
//   - "==" - Equal (version equality when the value looks like a version, else string)
//   - "!=" - Not equal (same rule as "==")
//   - (no operator) - Exact string match
//
// A leading 'v' in front of a digit is ignored on both sides, so "v1.33.5"
// satisfies ">= 1.33".
//
// # Usage
//
//	set, err := validator.LoadConstraintSet("constraints.yaml")
//	inv, err := validator.LoadInventory("inventory.yaml")
//
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, set, inv)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//
// Constraints are evaluated concurrently, bounded by WithConcurrency; results
// keep the order of the constraint set.
//
// # Error Handling
//
// Constraints naming a component missing from the inventory, or carrying an
// expression that does not parse, are marked "skipped" and make the overall
// status "partial". Any failed constraint makes it "fail".
package validator
