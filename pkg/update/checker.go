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
	"io"

	"github.com/NVIDIA/versioncheck/pkg/header"
)

// Checker runs update checks and stamps results with the tool version.
type Checker struct {
	// Version is the tool version recorded in result metadata.
	Version string
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithVersion returns an Option that sets the Checker version string.
func WithVersion(version string) Option {
	return func(c *Checker) {
		c.Version = version
	}
}

// NewChecker creates a Checker with the provided options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs Check and records the outcome.
func (c *Checker) Check(current, latest string) Result {
	res := Check(current, latest)
	res.Init(header.KindCheckResult, c.Version)
	checksTotal.WithLabelValues(string(res.Status)).Inc()
	return res
}

// CheckPayload extracts the latest version from payload with mapper and
// checks current against it.
func (c *Checker) CheckPayload(current string, payload io.Reader, mapper Mapper) (Result, error) {
	latest, err := mapper(payload)
	if err != nil {
		mapperFailures.Inc()
		return Result{}, err
	}
	return c.Check(current, latest), nil
}
