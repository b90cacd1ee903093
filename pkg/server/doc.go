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
// Package server provides the HTTP plumbing for the versioncheck API:
// system endpoints, a middleware chain and graceful shutdown. Domain
// handlers are supplied by the caller.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("versioncheckd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/compare": comparison.HandleCompare,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Every configured handler runs behind, outermost first:
//
//   - Prometheus metrics (count, latency, in-flight)
//   - API version negotiation (X-API-Version)
//   - request ID tracking (X-Request-Id, UUID)
//   - panic recovery
//   - token bucket rate limiting (golang.org/x/time/rate)
//   - request body size limit
//   - debug request logging
//
// # System Endpoints
//
// GET /health always answers 200. GET /ready answers 200 while the server is
// serving and 503 before start and during shutdown. GET /metrics exposes the
// Prometheus registry. GET / lists the routes.
//
// # Errors
//
// Errors share one JSON shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Missing query parameter",
//	  "details": {"parameter": "a"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from a StructuredError code with
// HTTPStatusFromCode.
//
// # Configuration
//
// PORT sets the listen port (default 8080). SHUTDOWN_TIMEOUT_SECONDS sets the
// graceful shutdown window. Rate limits and timeouts come from pkg/defaults.
package server
