// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// EnvAPIURL is the environment variable that selects the remote API
	// origin. The HTTP client re-reads it on every request when no origin was
	// configured at startup.
	EnvAPIURL = "ADAPTER_API_URL"

	// DefaultAPIOrigin is used when no origin is configured at all.
	DefaultAPIOrigin = "http://localhost:10000"

	// APIRootPath is appended to the origin to form the versioned API root.
	APIRootPath = "/api/v1"

	// DefaultCacheSize is the number of distinct note-list filters kept in
	// the query cache.
	DefaultCacheSize = 64
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds the note-list query cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Log holds the log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// APIURL is the origin of the notes service (e.g. "https://notes.example.com").
	// The versioned API root is appended by the client.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps the
// session slot.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds settings of the note-list query cache.
type Cache struct {
	// Size is the maximum number of cached filter combinations.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`
}

// Log holds log output settings.
type Log struct {
	// File is the path of the JSON log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
