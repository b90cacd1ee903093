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
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/versioncheck/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want int
	}{
		{"invalid request", errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"not found", errors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"validation failed", errors.ErrCodeValidationFailed, http.StatusUnprocessableEntity},
		{"rate limit", errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"payload too large", errors.ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"unavailable", errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", errors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want bool
	}{
		{errors.ErrCodeInvalidRequest, false},
		{errors.ErrCodeNotFound, false},
		{errors.ErrCodeMethodNotAllowed, false},
		{errors.ErrCodeValidationFailed, false},
		{errors.ErrCodeTimeout, true},
		{errors.ErrCodeUnavailable, true},
		{errors.ErrCodeRateLimitExceeded, true},
		{errors.ErrCodeInternal, true},
		{errors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got["a"] != 1 || got["b"] != 2 {
			t.Fatalf("expected both keys, got %#v", got)
		}
		if got["shared"] != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
		if a["shared"] != "old" {
			t.Fatal("inputs must not be modified")
		}
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	if resp.Details["k"] != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound,
		errors.ErrCodeNotFound, "missing", false, nil)

	if resp := decodeError(t, w); resp.RequestID == "" {
		t.Fatal("expected a generated request ID")
	}
}

func TestWriteErrorFromErr_StructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := stderrors.New("unexpected token")
	err := errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid constraint", cause,
		map[string]any{"constraint": "driver"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "invalid constraint" {
		t.Fatalf("expected message %q, got %q", "invalid constraint", resp.Message)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	if resp.Details["constraint"] != "driver" {
		t.Fatalf("expected constraint=driver, got %#v", resp.Details["constraint"])
	}
	if resp.Details["extra"] != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"] != "unexpected token" {
		t.Fatalf("expected cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_WrappedStructuredError(t *testing.T) {
	w := httptest.NewRecorder()
	err := stderrors.Join(errors.New(errors.ErrCodeTimeout, "too slow"))

	WriteErrorFromErr(w, httptest.NewRequest(http.MethodPost, "/v1/validate", nil), err, "fallback", nil)

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status %d, got %d", http.StatusGatewayTimeout, w.Code)
	}
	if resp := decodeError(t, w); !resp.Retryable {
		t.Fatal("expected timeout to be retryable")
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), stderrors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInternal, resp.Code)
	}
	if resp.Message != "fallback" {
		t.Fatalf("expected fallback message, got %q", resp.Message)
	}
	if resp.Details["error"] != "boom" || resp.Details["x"] != "y" {
		t.Fatalf("unexpected details %#v", resp.Details)
	}
}
