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
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/versioncheck/pkg/defaults"
	"golang.org/x/time/rate"
)

const (
	// EnvPort names the environment variable holding the listen port.
	EnvPort = "PORT"

	// EnvShutdownTimeout names the environment variable holding the graceful
	// shutdown timeout in whole seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"

	defaultPort = 8080
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers maps a route pattern to its handler. Every handler is wrapped
	// in the middleware chain.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a Config with defaults, overridden by PORT and
// SHUTDOWN_TIMEOUT_SECONDS when set.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              defaultPort,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "env", EnvPort, "value", portStr)
		}
	}

	// Lets the shutdown window match the pod's termination grace period.
	if shutdownStr := os.Getenv(EnvShutdownTimeout); shutdownStr != "" {
		seconds, err := strconv.Atoi(shutdownStr)
		if err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "env", EnvShutdownTimeout, "value", shutdownStr)
		}
	}

	return cfg
}
