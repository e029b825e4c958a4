package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFlags_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
		wantName    string
		wantValue   string
	}{
		{
			name:      "simple pair",
			input:     "X-Tenant:acme",
			wantName:  "X-Tenant",
			wantValue: "acme",
		},
		{
			name:      "value with colons",
			input:     "X-Upstream:http://localhost:8080",
			wantName:  "X-Upstream",
			wantValue: "http://localhost:8080",
		},
		{
			name:      "surrounding spaces trimmed",
			input:     " X-Tenant : acme ",
			wantName:  "X-Tenant",
			wantValue: "acme",
		},
		{
			name:      "empty value allowed",
			input:     "X-Empty:",
			wantName:  "X-Empty",
			wantValue: "",
		},
		{
			name:        "missing colon",
			input:       "X-Tenant",
			expectError: true,
			errorMsg:    "need header in a form `name:value`",
		},
		{
			name:        "empty name",
			input:       ":acme",
			expectError: true,
			errorMsg:    "header name is empty",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need header in a form `name:value`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HeaderFlags{}
			err := h.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, h[tt.wantName])
		})
	}
}

func TestHeaderFlags_SetOnNilMap(t *testing.T) {
	var h HeaderFlags
	require.NoError(t, h.Set("X-Tenant:acme"))
	assert.Equal(t, HeaderFlags{"X-Tenant": "acme"}, h)
}

func TestHeaderFlags_String(t *testing.T) {
	var empty HeaderFlags
	assert.Equal(t, "", empty.String())

	h := HeaderFlags{"b": "2", "a": "1"}
	assert.Equal(t, "a:1,b:2", h.String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-u", "https://example.supabase.co",
				"-k", "abc123",
				"-service-role-key", "service-secret",
				"-schema", "api",
				"-H", "X-Tenant:acme",
				"-H", "X-Region:eu",
				"-c", "/path/to/config.json",
				"-app-name", "dashboard",
				"-log-level", "warn",
				"-probe",
				"-probe-path", "/rest/v1/",
				"-request-timeout", "3s",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://example.supabase.co", cfg.Backend.URL)
				assert.Equal(t, "abc123", cfg.Backend.AnonKey)
				assert.Equal(t, "service-secret", cfg.Backend.ServiceRoleKey)
				assert.Equal(t, "api", cfg.Backend.Schema)
				assert.Equal(t, map[string]string{"X-Tenant": "acme", "X-Region": "eu"}, cfg.Backend.Headers)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "dashboard", cfg.App.Name)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.True(t, cfg.Probe.Enabled)
				assert.Equal(t, "/rest/v1/", cfg.Probe.Path)
				assert.Equal(t, 3*time.Second, cfg.Probe.RequestTimeout)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
				assert.Nil(t, cfg.Backend.Headers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad header", args: []string{"-H", "no-colon"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "missing value", args: []string{"-u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
