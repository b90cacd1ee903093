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
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NVIDIA/versioncheck/pkg/errors"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, testConfig{Name: "a", Value: 1})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var got testConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got.Name != "a" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestDecodeRequest(t *testing.T) {
	type payload struct {
		Versions []string `json:"versions" yaml:"versions"`
	}

	tests := []struct {
		name        string
		body        string
		contentType string
		want        int
		wantErr     bool
	}{
		{"json", `{"versions":["1.0","2.0"]}`, "application/json", 2, false},
		{"yaml", "versions:\n  - 1.0\n  - 2.0\n  - 3.0\n", "application/x-yaml", 3, false},
		{"no content type is json", `{"versions":["1"]}`, "", 1, false},
		{"malformed", `{versions`, "application/json", 0, true},
		{"empty", "", "application/json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(tt.body)
			if tt.body == "" {
				body = http.NoBody
			}
			req := httptest.NewRequest(http.MethodPost, "/", body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got payload
			err := DecodeRequest(req, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.Versions) != tt.want {
				t.Errorf("expected %d versions, got %v", tt.want, got.Versions)
			}
		})
	}
}

func TestDecodeRequestErrorCodes(t *testing.T) {
	var v struct {
		Versions []string `json:"versions"`
	}

	malformed := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{versions`))
	if err := DecodeRequest(malformed, &v); !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("malformed body: got %v, want %s", err, errors.ErrCodeInvalidRequest)
	}

	body := `{"versions":["` + strings.Repeat("1.0", 100) + `"]}`
	oversized := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	oversized.Body = http.MaxBytesReader(httptest.NewRecorder(), oversized.Body, 16)

	err := DecodeRequest(oversized, &v)
	if !errors.IsCode(err, errors.ErrCodePayloadTooLarge) {
		t.Fatalf("oversized body: got %v, want %s", err, errors.ErrCodePayloadTooLarge)
	}
	var se *errors.StructuredError
	if !stderrors.As(err, &se) || se.Context["limitBytes"] != int64(16) {
		t.Errorf("expected limitBytes context, got %+v", se)
	}
}
