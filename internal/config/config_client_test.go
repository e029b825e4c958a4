package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/supabase-bootstrap/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Backend: Backend{
			URL:     "https://example.supabase.co",
			AnonKey: "abc123",
		},
	}
}

func signKey(t *testing.T, role string) string {
	t.Helper()
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.APIKeyClaims{Role: role, Ref: "example"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return key
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg, err := newClientConfig(validStructuredConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultAppName, cfg.App.Name)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Empty(t, cfg.App.Version)
	assert.Equal(t, DefaultBackendSchema, cfg.Backend.Schema)
	assert.False(t, cfg.Probe.Enabled)
	assert.Equal(t, DefaultProbePath, cfg.Probe.Path)
	assert.Equal(t, DefaultProbeTimeout, cfg.Probe.RequestTimeout)
}

func TestNewClientConfig_MapsAndNormalises(t *testing.T) {
	src := &StructuredConfig{
		App: App{Name: "dashboard", Version: "1.0.0", LogLevel: " DEBUG "},
		Backend: Backend{
			URL:            " https://example.supabase.co/ ",
			AnonKey:        " abc123 ",
			ServiceRoleKey: "YOUR_SERVICE_ROLE_KEY_HERE",
			Schema:         "api",
			Headers:        map[string]string{"X-Tenant": "acme"},
		},
		Probe: Probe{Enabled: true, Path: "/rest/v1/", RequestTimeout: 2 * time.Second},
	}

	cfg, err := newClientConfig(src)
	require.NoError(t, err)

	assert.Equal(t, ClientApp{Name: "dashboard", Version: "1.0.0", LogLevel: "debug"}, cfg.App)
	assert.Equal(t, "https://example.supabase.co", cfg.Backend.URL)
	assert.Equal(t, "abc123", cfg.Backend.AnonKey)
	assert.Equal(t, "YOUR_SERVICE_ROLE_KEY_HERE", cfg.Backend.ServiceRoleKey)
	assert.Equal(t, "api", cfg.Backend.Schema)
	assert.Equal(t, map[string]string{"X-Tenant": "acme"}, cfg.Backend.Headers)
	assert.Equal(t, ClientProbe{Enabled: true, Path: "/rest/v1/", RequestTimeout: 2 * time.Second}, cfg.Probe)

	// headers are copied, not shared with the structured config
	cfg.Backend.Headers["X-Tenant"] = "changed"
	assert.Equal(t, "acme", src.Backend.Headers["X-Tenant"])
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty url",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.URL = "" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.URL = "example.supabase.co" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.URL = "ftp://example.supabase.co" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "url without host",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.URL = "https://" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "unparsable url",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.URL = "https://exa mple.co/%zz" },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "empty anon key",
			mutate:  func(cfg *StructuredConfig) { cfg.Backend.AnonKey = "   " },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name: "anon key equals service role key",
			mutate: func(cfg *StructuredConfig) {
				cfg.Backend.ServiceRoleKey = cfg.Backend.AnonKey
			},
			wantErr: ErrPrivilegedPublicKey,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "probe with negative timeout",
			mutate: func(cfg *StructuredConfig) {
				cfg.Probe = Probe{Enabled: true, RequestTimeout: -time.Second}
			},
			wantErr: ErrInvalidProbeConfigs,
		},
		{
			name: "probe with relative path",
			mutate: func(cfg *StructuredConfig) {
				cfg.Probe = Probe{Enabled: true, Path: "auth/v1/health"}
			},
			wantErr: ErrInvalidProbeConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := validStructuredConfig()
			tt.mutate(src)

			cfg, err := newClientConfig(src)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// A disabled probe is not validated.
func TestNewClientConfig_DisabledProbeSkipsValidation(t *testing.T) {
	src := validStructuredConfig()
	src.Probe = Probe{Path: "relative", RequestTimeout: -time.Second}

	_, err := newClientConfig(src)
	require.NoError(t, err)
}

func TestNewClientConfig_JWTKeys(t *testing.T) {
	t.Run("anon jwt accepted", func(t *testing.T) {
		src := validStructuredConfig()
		src.Backend.AnonKey = signKey(t, models.RoleAnon)

		_, err := newClientConfig(src)
		require.NoError(t, err)
	})

	t.Run("service role jwt rejected", func(t *testing.T) {
		src := validStructuredConfig()
		src.Backend.AnonKey = signKey(t, models.RoleServiceRole)

		_, err := newClientConfig(src)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPrivilegedPublicKey)
	})
}

func TestLoadClientConfig_FromEnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"BACKEND_URL":      "https://example.supabase.co",
		"BACKEND_ANON_KEY": "env-key",
	})

	cfg, err := loadClientConfig([]string{"-k", "abc123", "-probe"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.Backend.URL)
	assert.Equal(t, "abc123", cfg.Backend.AnonKey)
	assert.True(t, cfg.Probe.Enabled)
}

func TestLoadClientConfig_MissingBackend(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadClientConfig(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidBackendConfigs)
}

func TestLoadClientConfig_BadFlags(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadClientConfig([]string{"-nope"})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error get structured config")
}
