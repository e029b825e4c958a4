package config

import (
	"fmt"
	"maps"
	"os"
	"strings"
	"time"
)

// Defaults applied by [GetClientConfig] to fields no source has set.
const (
	DefaultAppName       = "supabase-bootstrap"
	DefaultLogLevel      = "info"
	DefaultProbePath     = "/auth/v1/health"
	DefaultProbeTimeout  = 10 * time.Second
	DefaultBackendSchema = "public"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Name identifies the application in the client info header.
	Name string
	// Version is the application version; may be empty when unset.
	Version string
	// LogLevel is the minimum emitted log level.
	LogLevel string
}

// ClientBackend holds the endpoint and credentials used to build the client
// handle.
type ClientBackend struct {
	// URL is the normalised backend endpoint without a trailing slash.
	URL string
	// AnonKey is the public access key handed to the client factory.
	AnonKey string
	// ServiceRoleKey is the privileged key. Never handed to the client factory.
	ServiceRoleKey string
	// Schema is the database schema targeted by the REST client.
	Schema string
	// Headers are extra headers attached to every request.
	Headers map[string]string
}

// ClientProbe holds settings for the optional reachability probe.
type ClientProbe struct {
	// Enabled turns the probe on.
	Enabled bool
	// Path is requested relative to the backend URL.
	Path string
	// RequestTimeout bounds the probe request.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Backend contains the endpoint and credentials.
	Backend ClientBackend
	// Probe contains reachability probe settings.
	Probe ClientProbe
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the bootstrap, fills defaults, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:     cfg.App.Name,
			Version:  cfg.App.Version,
			LogLevel: strings.ToLower(strings.TrimSpace(cfg.App.LogLevel)),
		},
		Backend: ClientBackend{
			URL:            strings.TrimRight(strings.TrimSpace(cfg.Backend.URL), "/"),
			AnonKey:        strings.TrimSpace(cfg.Backend.AnonKey),
			ServiceRoleKey: strings.TrimSpace(cfg.Backend.ServiceRoleKey),
			Schema:         cfg.Backend.Schema,
			Headers:        maps.Clone(cfg.Backend.Headers),
		},
		Probe: ClientProbe{
			Enabled:        cfg.Probe.Enabled,
			Path:           cfg.Probe.Path,
			RequestTimeout: cfg.Probe.RequestTimeout,
		},
	}
	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Backend.Schema == "" {
		cfg.Backend.Schema = DefaultBackendSchema
	}
	if cfg.Probe.Path == "" {
		cfg.Probe.Path = DefaultProbePath
	}
	if cfg.Probe.RequestTimeout == 0 {
		cfg.Probe.RequestTimeout = DefaultProbeTimeout
	}
}
