// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
)

// apiRootResolver computes the API root for every request. The configured
// origin wins; otherwise the environment is read again each time, and if it
// is empty too the local default is used.
type apiRootResolver struct {
	configured string
	warnOnce   sync.Once
	logger     *logger.Logger
}

func newAPIRootResolver(configured string, log *logger.Logger) (*apiRootResolver, error) {
	r := &apiRootResolver{logger: log}
	if strings.TrimSpace(configured) == "" {
		return r, nil
	}

	origin, err := normalizeOrigin(configured)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}
	r.configured = origin
	return r, nil
}

func (r *apiRootResolver) Resolve() string {
	if r.configured != "" {
		return r.configured + config.APIRootPath
	}

	if env := os.Getenv(config.EnvAPIURL); strings.TrimSpace(env) != "" {
		origin, err := normalizeOrigin(env)
		if err == nil {
			return origin + config.APIRootPath
		}
		r.logger.Warn().Err(err).Str("func", "apiRootResolver.Resolve").
			Str("value", env).Msgf("ignoring invalid %s", config.EnvAPIURL)
	}

	r.warnOnce.Do(func() {
		r.logger.Warn().Str("func", "apiRootResolver.Resolve").
			Str("origin", config.DefaultAPIOrigin).
			Msgf("%s is not set, using the default API origin", config.EnvAPIURL)
	})
	return config.DefaultAPIOrigin + config.APIRootPath
}

func normalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
