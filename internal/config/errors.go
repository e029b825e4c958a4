package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, missing URL or public key).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrPrivilegedPublicKey indicates that the configured public key grants
	// the privileged service role.
	ErrPrivilegedPublicKey = errors.New("public key grants privileged access")
	// ErrInvalidProbeConfigs indicates invalid probe settings
	// (for example, a non-positive timeout or a relative path).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
