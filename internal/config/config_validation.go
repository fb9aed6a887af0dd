// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values that are set are
// checked; defaults are filled in later by [GetClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Cache.Size < 0 {
		return fmt.Errorf("%w: negative cache size", ErrInvalidCacheConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.APIURL != "" {
		u, err := url.Parse(cfg.Adapter.APIURL)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: api url %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
		}
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.Size <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}
