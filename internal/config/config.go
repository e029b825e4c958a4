// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: name, version and log level.
	App App `envPrefix:"APP_"`

	// Backend holds the hosted backend endpoint and its credentials.
	Backend Backend `envPrefix:"BACKEND_"`

	// Probe holds settings for the optional startup reachability check.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name identifies the application in the client info header.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Backend holds the location of the hosted backend service and the
// credentials used to reach it.
type Backend struct {
	// URL is the project endpoint address (e.g. "https://<ref>.supabase.co").
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// AnonKey is the public, low-privilege access key passed to the client
	// factory. Safe to embed in client-distributed code.
	// Env: BACKEND_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// ServiceRoleKey is the privileged key. It is carried for completeness
	// but never handed to the client factory; no privileged operation exists.
	// Must be kept confidential.
	// Env: BACKEND_SERVICE_ROLE_KEY
	ServiceRoleKey string `env:"SERVICE_ROLE_KEY"`

	// Schema is the database schema the REST client targets ("public" when empty).
	// Env: BACKEND_SCHEMA
	Schema string `env:"SCHEMA"`

	// Headers are extra headers sent with every request, in "k:v,k:v" form.
	// Env: BACKEND_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Probe configures the optional reachability check run after bootstrap.
type Probe struct {
	// Enabled turns the probe on.
	// Env: PROBE_ENABLED
	Enabled bool `env:"ENABLED"`

	// Path is the endpoint path requested relative to Backend.URL.
	// Env: PROBE_PATH
	Path string `env:"PATH"`

	// RequestTimeout bounds the probe request (e.g. "10s").
	// Env: PROBE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
