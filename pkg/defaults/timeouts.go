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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// CompareHandlerTimeout is the timeout for compare, newer, canonical,
	// check and sort requests.
	CompareHandlerTimeout = 5 * time.Second

	// ValidateHandlerTimeout is the timeout for constraint validation requests.
	ValidateHandlerTimeout = 30 * time.Second

	// ValidateEvalTimeout is the internal timeout for evaluating a constraint set.
	// Should be less than ValidateHandlerTimeout to allow error handling.
	ValidateEvalTimeout = 25 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIValidateTimeout is the default timeout for the validate command.
	CLIValidateTimeout = 1 * time.Minute
)
