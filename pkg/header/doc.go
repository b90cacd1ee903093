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

// Package header provides the common envelope of versioncheck documents.
//
// Every document the tools write, and the constraint and inventory files they
// read, start with the same three fields:
//
//	kind: ValidationResult
//	apiVersion: versioncheck.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
// Embed Header inline and initialize it before writing:
//
//	type Result struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Passed bool `json:"passed" yaml:"passed"`
//	}
//
//	var r Result
//	r.Init(header.KindComparison, version)
//
// Check a header after reading:
//
//	if err := set.Expect(header.KindConstraintSet); err != nil {
//	    return err
//	}
//
// Files may omit kind and apiVersion; Expect only rejects values that are
// present and wrong.
package header
