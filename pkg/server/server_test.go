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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNew(t *testing.T) {
	s := New(
		WithName("test"),
		WithVersion("1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/test": okHandler}),
	)

	if s.config.Name != "test" || s.config.Version != "1.2.3" {
		t.Errorf("unexpected identity %q %q", s.config.Name, s.config.Version)
	}
	if s.httpServer == nil {
		t.Fatal("expected httpServer to be initialized")
	}
	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
	if s.httpServer.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", s.httpServer.Addr)
	}
	if _, ok := s.config.Handlers["/test"]; !ok {
		t.Error("expected /test handler to be registered")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestHealthEndpoint_RejectsPost(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") == "" {
		t.Error("expected Allow header")
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{"ready state", true, http.StatusOK},
		{"not ready state", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := httptest.NewRecorder()
			s.handleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRootListsRoutes(t *testing.T) {
	s := New(WithName("versioncheckd"), WithHandler(map[string]http.HandlerFunc{
		"/v1/b": okHandler,
		"/v1/a": okHandler,
	}))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp RootResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Name != "versioncheckd" {
		t.Errorf("expected name versioncheckd, got %q", resp.Name)
	}
	want := []string{"/v1/a", "/v1/b", "/health", "/ready", "/metrics"}
	if len(resp.Routes) != len(want) {
		t.Fatalf("expected routes %v, got %v", want, resp.Routes)
	}
	for i := range want {
		if resp.Routes[i] != want[i] {
			t.Errorf("route %d: expected %s, got %s", i, want[i], resp.Routes[i])
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/test": okHandler}))

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "versioncheck_http_requests_total") {
		t.Fatal("expected request counter in metrics output")
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"/test": okHandler}

	s := New(WithConfig(cfg))

	w1 := httptest.NewRecorder()
	s.Handler().ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/test", nil))
	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	s.Handler().ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/test", nil))
	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}
}

func TestMiddlewareChainSetsHeaders(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/test": okHandler}))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected X-Request-Id header")
	}
	if w.Header().Get("X-API-Version") == "" {
		t.Error("expected X-API-Version header")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	if s.isReady() {
		t.Error("expected server not ready after shutdown")
	}
}
