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

package serializer

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/versioncheck/pkg/errors"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// DecodeRequest decodes the request body into v, reading YAML or JSON
// according to the Content-Type header. Errors are StructuredErrors:
// PAYLOAD_TOO_LARGE when the body hit an http.MaxBytesReader limit,
// INVALID_REQUEST otherwise. An empty body is an error.
func DecodeRequest(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New(errors.ErrCodeInvalidRequest, "Request body is empty")
	}

	reader, err := NewReader(FormatFromContentType(r.Header.Get("Content-Type")), r.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "Invalid request body", err)
	}
	defer reader.Close()

	if err := reader.Deserialize(v); err != nil {
		return BodyError(err)
	}
	return nil
}

// BodyError classifies an error from reading a request body.
func BodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.WrapWithContext(errors.ErrCodePayloadTooLarge, "Request body too large", err,
			map[string]any{"limitBytes": tooLarge.Limit})
	}
	return errors.Wrap(errors.ErrCodeInvalidRequest, "Invalid request body", err)
}
