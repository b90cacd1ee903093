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

// Package errors provides coded errors shared by the CLI and the API server.
//
// Version parsing never fails, so these errors come from the edges: constraint
// expressions that do not parse, inventories missing a component, documents
// that cannot be read, and HTTP requests the server refuses.
//
// Create and wrap:
//
//	err := errors.New(errors.ErrCodeInvalidRequest, "query parameter a is required")
//	err = errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read constraints", cause)
//
// Test for a code anywhere in the chain:
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // the inventory has no such component
//	}
//
// The server maps codes to HTTP status with server.HTTPStatusFromCode.
package errors
