package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/supabase-bootstrap/internal/adapter"
	"github.com/MKhiriev/supabase-bootstrap/internal/backend"
	"github.com/MKhiriev/supabase-bootstrap/internal/config"
	"github.com/MKhiriev/supabase-bootstrap/internal/logger"
	"github.com/MKhiriev/supabase-bootstrap/models"
)

// ErrNilConfig is returned by [NewApp] when no configuration is supplied.
var ErrNilConfig = errors.New("client config is nil")

// App loads the backend handle and optionally verifies the endpoint.
type App struct {
	backendCfg config.ClientBackend
	appCfg     config.ClientApp

	bootstrap *backend.Bootstrap
	probe     adapter.HealthProbe
	handle    *backend.Handle

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp assembles the application. probe may be nil, in which case no
// reachability check runs. When the configured version is empty the build
// version is used for the client info header.
func NewApp(
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	factory backend.ClientFactory,
	probe adapter.HealthProbe,
	logger *logger.Logger,
) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	appCfg := cfg.App
	if appCfg.Version == "" && buildInfo.HasVersion() {
		appCfg.Version = buildInfo.BuildVersion()
	}

	return &App{
		backendCfg: cfg.Backend,
		appCfg:     appCfg,
		bootstrap:  backend.NewBootstrap(factory, logger),
		probe:      probe,
		logger:     logger,
	}, nil
}

// Run creates the backend handle and, when a probe is configured, checks the
// endpoint. The handle is kept even if the probe fails.
func (a *App) Run(ctx context.Context) error {
	handle, err := a.bootstrap.Load(a.backendCfg, a.appCfg)
	if err != nil {
		return fmt.Errorf("bootstrap backend client: %w", err)
	}
	a.handle = handle

	if a.probe == nil {
		a.logger.Info().Str("handle_id", handle.ID()).Msg("backend handle ready")
		return nil
	}

	if err = a.probe.Check(ctx); err != nil {
		return fmt.Errorf("probe backend %s: %w", handle.URL(), err)
	}

	a.logger.Info().
		Str("handle_id", handle.ID()).
		Str("url", handle.URL()).
		Msg("backend handle ready, endpoint reachable")

	return nil
}

// Handle returns the handle created by the last successful [App.Run], or nil.
func (a *App) Handle() *backend.Handle {
	return a.handle
}
