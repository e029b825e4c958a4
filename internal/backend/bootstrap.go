package backend

import (
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/supabase-bootstrap/internal/config"
	"github.com/MKhiriev/supabase-bootstrap/internal/logger"
	"github.com/MKhiriev/supabase-bootstrap/internal/utils"
	"github.com/supabase-community/supabase-go"
)

// clientInfoHeader identifies the calling application to the backend gateway.
const clientInfoHeader = "X-Client-Info"

// Bootstrap creates client handles from backend configuration.
type Bootstrap struct {
	factory ClientFactory
	ids     IDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewBootstrap returns a Bootstrap that delegates client construction to
// factory. A nil factory is accepted; [Bootstrap.Load] then fails with
// [ErrFactoryUnavailable].
func NewBootstrap(factory ClientFactory, logger *logger.Logger) *Bootstrap {
	return &Bootstrap{
		factory: factory,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger.Component("backend"),
	}
}

// Load is shorthand for NewBootstrap(factory, logger).Load(cfg, app).
func Load(cfg config.ClientBackend, app config.ClientApp, factory ClientFactory, logger *logger.Logger) (*Handle, error) {
	return NewBootstrap(factory, logger).Load(cfg, app)
}

// Load invokes the factory exactly once with cfg.URL and cfg.AnonKey and
// returns a new [Handle] wrapping the result. Every call produces a distinct
// handle; nothing is cached between calls.
//
// No handle is returned when the factory is unavailable, fails, or returns a
// nil client.
func (b *Bootstrap) Load(cfg config.ClientBackend, app config.ClientApp) (*Handle, error) {
	if isNilFactory(b.factory) {
		return nil, ErrFactoryUnavailable
	}

	claims := b.inspectKey(cfg.URL, cfg.AnonKey)

	client, err := b.factory.NewClient(cfg.URL, cfg.AnonKey, clientOptions(cfg, app))
	if err != nil {
		b.logger.Error().Err(err).Str("url", cfg.URL).Msg("backend client creation failed")
		return nil, fmt.Errorf("%w: %w", ErrClientCreation, err)
	}
	if client == nil {
		return nil, ErrInvalidHandle
	}

	h := &Handle{
		id:        b.ids.Generate(),
		url:       cfg.URL,
		createdAt: b.now(),
		client:    client,
	}
	if claims != nil {
		h.keyRole = claims.Role
	}

	b.logger.Info().
		Str("handle_id", h.id).
		Str("url", h.url).
		Str("key", utils.MaskKey(cfg.AnonKey)).
		Str("key_role", h.keyRole).
		Msg("backend client created")

	return h, nil
}

func clientOptions(cfg config.ClientBackend, app config.ClientApp) *supabase.ClientOptions {
	headers := make(map[string]string, len(cfg.Headers)+1)
	maps.Copy(headers, cfg.Headers)
	if _, ok := headers[clientInfoHeader]; !ok {
		headers[clientInfoHeader] = clientInfo(app)
	}

	return &supabase.ClientOptions{
		Headers: headers,
		Schema:  cfg.Schema,
	}
}

func clientInfo(app config.ClientApp) string {
	if app.Version == "" {
		return app.Name
	}
	return app.Name + "/" + app.Version
}
