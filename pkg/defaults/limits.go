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

// Request limits for the API server.
const (
	// ServerRateLimit is the sustained number of requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the number of requests allowed in a burst.
	ServerRateLimitBurst = 200

	// MaxRequestBodyBytes caps the size of POST bodies.
	MaxRequestBodyBytes = 1 << 20

	// MaxSortVersions caps the number of versions accepted by one sort request.
	MaxSortVersions = 1000
)

// Validation limits.
const (
	// MaxConstraints caps the number of constraints in one constraint set.
	MaxConstraints = 500

	// ValidatorConcurrency is the number of constraints evaluated at once.
	ValidatorConcurrency = 8
)
