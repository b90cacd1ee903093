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

// Package serializer writes command results and reads input documents.
//
// # Formats
//
// JSON:
//   - Indented, suitable for scripts and API responses
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, suitable for constraint and inventory files
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Aligned text for terminals
//   - Values implementing Tabular print as columns; anything else prints as
//     sorted FIELD/VALUE pairs with dotted keys named after json tags
//   - Write-only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// An empty path or "-" writes to stdout.
//
// # Reading
//
// FromFile picks the format from the file extension; "-" reads stdin as YAML,
// which also accepts JSON:
//
//	set, err := serializer.FromFile[validator.ConstraintSet]("constraints.yaml")
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// RespondJSON encodes into a buffer first so an encoding failure never leaves
// a partial response behind.
package serializer
