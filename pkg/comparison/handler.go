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
package comparison

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
	"github.com/NVIDIA/versioncheck/pkg/server"
)

// SortRequest is the body of POST /v1/sort.
type SortRequest struct {
	Versions   []string `json:"versions" yaml:"versions"`
	Descending bool     `json:"descending,omitempty" yaml:"descending,omitempty"`
}

// HandleCompare serves GET /v1/compare?a=1.0&b=1.0.1.
// Both parameters must be present; an empty value is the empty version.
func (c *Comparer) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if !requireParams(w, r, q, "a", "b") {
		return
	}

	res := c.Compare(q.Get("a"), q.Get("b"))
	slog.Debug("compared versions", "a", res.A.Input, "b", res.B.Input, "result", res.Result)
	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleNewer serves GET /v1/newer?current=1.0-SNAPSHOT&other=1.0.
// The newer field of the response tells whether other is newer than current.
func (c *Comparer) HandleNewer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if !requireParams(w, r, q, "current", "other") {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, c.Compare(q.Get("current"), q.Get("other")))
}

// HandleCanonical serves GET /v1/canonical?v=1.0.0-GA&v=1.0a1.
func (c *Comparer) HandleCanonical(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if !requireParams(w, r, q, "v") {
		return
	}
	if !withinLimit(w, r, len(q["v"])) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, c.Canonicalize(q["v"]...))
}

// HandleInspect serves GET /v1/inspect?v=1.0a1.
func (c *Comparer) HandleInspect(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	if !requireParams(w, r, q, "v") {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, c.Inspect(q.Get("v")))
}

// HandleSort serves POST /v1/sort with a JSON or YAML SortRequest body.
func (c *Comparer) HandleSort(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	var req SortRequest
	if err := serializer.DecodeRequest(r, &req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request body", nil)
		return
	}
	if !withinLimit(w, r, len(req.Versions)) {
		return
	}

	order := OrderAscending
	if req.Descending {
		order = OrderDescending
	}

	serializer.RespondJSON(w, http.StatusOK, c.Sort(req.Versions, order))
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{method},
		})
	return false
}

func requireParams(w http.ResponseWriter, r *http.Request, q url.Values, names ...string) bool {
	for _, name := range names {
		if !q.Has(name) {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Missing query parameter", false, map[string]any{"parameter": name})
			return false
		}
	}
	return true
}

func withinLimit(w http.ResponseWriter, r *http.Request, n int) bool {
	if n <= defaults.MaxSortVersions {
		return true
	}
	server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
		fmt.Sprintf("too many versions: %d exceeds limit of %d", n, defaults.MaxSortVersions),
		false, map[string]any{"count": n})
	return false
}
