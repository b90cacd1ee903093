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
	"log/slog"
	"net/http"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/header"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
	"github.com/NVIDIA/versioncheck/pkg/server"
)

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Constraints ConstraintSet `json:"constraints" yaml:"constraints"`
	Inventory   Inventory     `json:"inventory" yaml:"inventory"`
}

// HandleValidate evaluates a constraint set against an inventory posted as
// one JSON or YAML document:
//
//	POST /v1/validate
//	Content-Type: application/x-yaml
//
//	constraints:
//	  constraints:
//	    - name: driver
//	      value: ">= 535.104"
//	inventory:
//	  components:
//	    driver: 550.54.15
//
// The reply is a ValidationResult. Failed constraints do not change the
// status code; callers read summary.status.
func (v *Validator) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	var req ValidateRequest
	if err := serializer.DecodeRequest(r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
		return
	}

	if err := req.Constraints.Expect(header.KindConstraintSet); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid constraint set", nil)
		return
	}
	if err := req.Inventory.Expect(header.KindInventory); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid inventory", nil)
		return
	}
	if len(req.Constraints.Constraints) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Constraint set must contain at least one constraint", false, nil)
		return
	}

	slog.Debug("validate request received",
		"constraints", len(req.Constraints.Constraints),
		"components", len(req.Inventory.Components))

	result, err := v.Validate(ctx, &req.Constraints, &req.Inventory)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to validate constraints", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}
