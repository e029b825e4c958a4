package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/supabase-bootstrap/internal/config"
	"github.com/MKhiriev/supabase-bootstrap/internal/logger"
	"github.com/MKhiriev/supabase-bootstrap/internal/utils"
)

type httpHealthProbe struct {
	client *utils.HTTPClient
	path   string

	logger *logger.Logger
}

// NewHTTPHealthProbe constructs an HTTP implementation of [HealthProbe].
// It normalises and validates the base URL from backendCfg.URL and configures
// the underlying HTTP client with the public key headers and the probe
// request timeout.
//
// Returns an error if backendCfg.URL is empty or cannot be parsed as a
// valid URL.
func NewHTTPHealthProbe(backendCfg config.ClientBackend, probeCfg config.ClientProbe, logger *logger.Logger) (HealthProbe, error) {
	baseURL, err := normalizeBaseURL(backendCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := utils.NewAPIKeyHTTPClient(baseURL, backendCfg.AnonKey, probeCfg.RequestTimeout)
	for name, value := range backendCfg.Headers {
		client.SetHeader(name, value)
	}

	return &httpHealthProbe{
		client: client,
		path:   probeCfg.Path,
		logger: logger.Component("probe"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// Check implements [HealthProbe]. It issues GET {baseURL}{path} and maps any
// non-2xx status to the sentinel errors of this package. Transport failures
// (DNS, refused connection, timeout) are wrapped with [ErrUnreachable].
func (p *httpHealthProbe) Check(ctx context.Context) error {
	start := time.Now()

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(p.path)
	if err != nil {
		p.logger.Error().Err(err).Str("path", p.path).Msg("probe request failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	p.logger.Debug().
		Str("path", p.path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("probe response")

	return mapHTTPError(resp)
}
