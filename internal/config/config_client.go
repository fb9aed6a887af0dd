// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the configured API origin. It may be empty, in which case the
	// transport resolves the origin from the environment on every request.
	APIURL string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCache holds query cache settings.
type ClientCache struct {
	// Size is the maximum number of cached note-list filters.
	Size int
}

// ClientLog holds log output settings.
type ClientLog struct {
	// File is the JSON log file path; empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Cache   ClientCache
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration, applying defaults for the session database
// location and the cache size.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			APIURL:         strings.TrimRight(strings.TrimSpace(cfg.Adapter.APIURL), "/"),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Cache: ClientCache{Size: cfg.Cache.Size},
		Log:   ClientLog{File: cfg.Log.File},
	}

	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultSessionDSN()
	}
	if clientCfg.Cache.Size == 0 {
		clientCfg.Cache.Size = DefaultCacheSize
	}

	return clientCfg, clientCfg.validate()
}

func defaultSessionDSN() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "session.db"
	}
	return filepath.Join(home, ".go-notes", "session.db")
}
