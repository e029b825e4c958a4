// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/supabase-bootstrap/internal/utils"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the final [ClientConfig] can be handed to the
// bootstrap. Each failure wraps one of the sentinel errors from errors.go.
func (cfg *ClientConfig) validate() error {
	if err := cfg.Backend.validate(); err != nil {
		return err
	}

	if cfg.Probe.Enabled {
		if cfg.Probe.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidProbeConfigs)
		}
		if !strings.HasPrefix(cfg.Probe.Path, "/") {
			return fmt.Errorf("%w: path %q must start with /", ErrInvalidProbeConfigs, cfg.Probe.Path)
		}
	}

	if !slices.Contains(logLevels, cfg.App.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}

func (b *ClientBackend) validate() error {
	if b.URL == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidBackendConfigs)
	}

	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackendConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidBackendConfigs)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url has no host", ErrInvalidBackendConfigs)
	}

	if b.AnonKey == "" {
		return fmt.Errorf("%w: empty anon key", ErrInvalidBackendConfigs)
	}

	if b.ServiceRoleKey != "" && b.AnonKey == b.ServiceRoleKey {
		return fmt.Errorf("%w: anon key equals service role key", ErrPrivilegedPublicKey)
	}

	// Opaque keys carry no claims to inspect.
	if claims, err := utils.ParseAPIKeyClaims(b.AnonKey); err == nil && claims.IsPrivileged() {
		return fmt.Errorf("%w: anon key has role %q", ErrPrivilegedPublicKey, claims.Role)
	}

	return nil
}
