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
package update

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/versioncheck/pkg/errors"
	"github.com/NVIDIA/versioncheck/pkg/serializer"
	"github.com/NVIDIA/versioncheck/pkg/server"
)

// HandleCheck serves update checks.
//
// GET takes both versions as query parameters:
//
//	GET /v1/check?current=1.2.3&latest=1.2.4
//
// POST takes the running version as a query parameter and the raw release
// payload as the body; the mapper parameter picks how the version is
// extracted (first-line by default):
//
//	POST /v1/check?current=1.2.3&mapper=github-release
//	Body: [{"tag_name": "1.2.4", ...}]
func (c *Checker) HandleCheck(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")

	var (
		res Result
		err error
	)

	switch r.Method {
	case http.MethodGet:
		if current == "" {
			writeMissingParam(w, r, "current")
			return
		}
		res = c.Check(current, r.URL.Query().Get("latest"))

	case http.MethodPost:
		defer func() {
			if r.Body != nil {
				r.Body.Close()
			}
		}()
		if current == "" {
			writeMissingParam(w, r, "current")
			return
		}
		name := r.URL.Query().Get("mapper")
		if name == "" {
			name = MapperFirstLine
		}
		mapper, mErr := MapperByName(name)
		if mErr != nil {
			server.WriteErrorFromErr(w, r, mErr, "Invalid mapper", nil)
			return
		}
		res, err = c.CheckPayload(current, r.Body, mapper)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				err = serializer.BodyError(err)
			}
			server.WriteErrorFromErr(w, r, err, "Failed to extract version from payload",
				map[string]any{"mapper": name})
			return
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	slog.Debug("update check",
		"current", res.Current,
		"reported", res.Reported,
		"status", res.Status)

	serializer.RespondJSON(w, http.StatusOK, res)
}

func writeMissingParam(w http.ResponseWriter, r *http.Request, name string) {
	server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
		"Missing query parameter", false, map[string]any{"parameter": name})
}
