package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Backend struct {
		URL            string            `json:"url"`
		AnonKey        string            `json:"anon_key"`
		ServiceRoleKey string            `json:"service_role_key"`
		Schema         string            `json:"schema"`
		Headers        map[string]string `json:"headers"`
	} `json:"backend,omitempty"`

	Probe struct {
		Enabled        bool     `json:"enabled"`
		Path           string   `json:"path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"probe,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     jsonCfg.App.Name,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			AnonKey:        jsonCfg.Backend.AnonKey,
			ServiceRoleKey: jsonCfg.Backend.ServiceRoleKey,
			Schema:         jsonCfg.Backend.Schema,
			Headers:        jsonCfg.Backend.Headers,
		},
		Probe: Probe{
			Enabled:        jsonCfg.Probe.Enabled,
			Path:           jsonCfg.Probe.Path,
			RequestTimeout: time.Duration(jsonCfg.Probe.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
