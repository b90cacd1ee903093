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
// Package api assembles the versioncheck HTTP service: it configures
// structured logging, registers the domain handlers and hands lifecycle
// management to pkg/server.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/compare?a=&b=         - compare two versions
//   - GET  /v1/newer?current=&other= - is other newer than current
//   - GET  /v1/canonical?v=...       - canonical forms
//   - GET  /v1/inspect?v=            - parse tree of one version
//   - POST /v1/sort                  - sort a list of versions
//   - GET  /v1/check?current=&latest=, POST /v1/check?current=&mapper= - update check
//   - POST /v1/validate              - evaluate constraints against an inventory
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl "http://localhost:8080/v1/compare?a=1.0-SNAPSHOT&b=1.0"
//
//	curl -X POST http://localhost:8080/v1/validate \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @request.yaml
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/versioncheck/pkg/api.version=1.0.0'"
package api
