package config

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// HeaderFlags collects repeated "-H name:value" flags into a header map.
// It implements the flag.Value interface.
type HeaderFlags map[string]string

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-u backend URL (e.g. https://<ref>.supabase.co)
//	-k public (anon) key
//	-service-role-key privileged key
//	-schema database schema
//	-H extra header in form name:value, repeatable
//	-c/-config json file path with configs
//	-app-name application name
//	-log-level log level (debug, info, warn, ...)
//	-probe run the reachability probe after bootstrap
//	-probe-path probe endpoint path
//	-request-timeout probe request timeout (e.g., "10s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("supabase-bootstrap", flag.ContinueOnError)

	var backendURL, anonKey, serviceRoleKey, schema string
	var jsonConfigPath string
	var appName, logLevel string
	var probeEnabled bool
	var probePath string
	var requestTimeout time.Duration
	headers := HeaderFlags{}

	fs.StringVar(&backendURL, "u", "", "Backend URL")
	fs.StringVar(&anonKey, "k", "", "Public (anon) key")
	fs.StringVar(&serviceRoleKey, "service-role-key", "", "Service role key")
	fs.StringVar(&schema, "schema", "", "Database schema")
	fs.Var(&headers, "H", "Extra header name:value (repeatable)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appName, "app-name", "", "Application name")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&probeEnabled, "probe", false, "Run reachability probe after bootstrap")
	fs.StringVar(&probePath, "probe-path", "", "Probe endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Probe request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     appName,
			LogLevel: logLevel,
		},
		Backend: Backend{
			URL:            backendURL,
			AnonKey:        anonKey,
			ServiceRoleKey: serviceRoleKey,
			Schema:         schema,
		},
		Probe: Probe{
			Enabled:        probeEnabled,
			Path:           probePath,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.Backend.Headers = headers
	}

	return cfg, nil
}

// String renders the collected headers as "k:v,k:v" in key order.
func (h *HeaderFlags) String() string {
	if h == nil || len(*h) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(*h))
	for _, k := range slices.Sorted(maps.Keys(*h)) {
		pairs = append(pairs, k+":"+(*h)[k])
	}
	return strings.Join(pairs, ",")
}

// Set parses one "name:value" pair. The name must be non-empty; the value may
// contain further colons.
func (h *HeaderFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("need header in a form `name:value`")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("header name is empty")
	}

	if *h == nil {
		*h = HeaderFlags{}
	}
	(*h)[name] = strings.TrimSpace(value)
	return nil
}
