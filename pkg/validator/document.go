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
	"sort"
	"strings"

	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/header"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
)

// Constraint names a component and the expression its version must satisfy.
type Constraint struct {
	// Name is the component name looked up in the inventory (e.g., "driver").
	Name string `json:"name" yaml:"name"`

	// Value is the constraint expression (e.g., ">= 535.104").
	Value string `json:"value" yaml:"value"`
}

// ConstraintSet is a document listing constraints to validate.
type ConstraintSet struct {
	header.Header `json:",inline" yaml:",inline"`

	Constraints []Constraint `json:"constraints" yaml:"constraints"`
}

// Inventory is a document mapping component names to installed versions.
type Inventory struct {
	header.Header `json:",inline" yaml:",inline"`

	Components map[string]string `json:"components" yaml:"components"`
}

// Lookup returns the version recorded for name. Names match exactly first,
// then case-insensitively.
func (inv *Inventory) Lookup(name string) (string, error) {
	if inv != nil {
		if v, ok := inv.Components[name]; ok {
			return v, nil
		}
		for k, v := range inv.Components {
			if strings.EqualFold(k, name) {
				return v, nil
			}
		}
	}
	return "", errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("component %q not found in inventory", name),
		map[string]any{"component": name})
}

// Names returns the component names in sorted order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Components))
	for k := range inv.Components {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LoadConstraintSet reads a constraint set from a JSON or YAML file, or
// stdin when path is "-".
func LoadConstraintSet(path string) (*ConstraintSet, error) {
	set, err := serializer.FromFile[ConstraintSet](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read constraint set", err)
	}
	if err := set.Expect(header.KindConstraintSet); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadInventory reads an inventory from a JSON or YAML file, or stdin when
// path is "-".
func LoadInventory(path string) (*Inventory, error) {
	inv, err := serializer.FromFile[Inventory](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read inventory", err)
	}
	if err := inv.Expect(header.KindInventory); err != nil {
		return nil, err
	}
	return inv, nil
}
