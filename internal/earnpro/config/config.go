// Package config loads client configuration from the EarnPro config file
// with environment variable overrides.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

// Config is the client configuration.
type Config struct {
	// APIURL is the backend base URL, e.g. "http://localhost:3000/api".
	// When empty (and Demo unset), demo mode is used.
	APIURL string `toml:"api_url" env:"EARNPRO_API_URL"`
	// Demo forces the local simulated backend regardless of APIURL.
	Demo bool `toml:"demo" env:"EARNPRO_DEMO"`
	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level" env:"EARNPRO_LOG_LEVEL"`
}

const appDir = "earnpro"

const defaultConfigToml = `# EarnPro client configuration

# Backend base URL. Leave empty to run against the built-in demo backend.
api_url = ""

# Force demo mode even when api_url is set.
demo = false

log_level = "info"
`

// Dir returns the EarnPro config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// TokenPath returns the durable auth token location.
func TokenPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// UIStatePath returns the persisted UI state location.
func UIStatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ui.json"), nil
}

// LogPath returns the log file location.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "earnpro.log"), nil
}

// Load reads config.toml from the config directory, writing the default
// file on first run, then applies environment overrides.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads the config from an explicit path. Used by tests.
func LoadFrom(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := os.WriteFile(path, []byte(defaultConfigToml), 0o644); werr == nil {
			raw = []byte(defaultConfigToml)
		}
	} else if err != nil {
		return Config{}, err
	}

	var cfg Config
	if len(raw) > 0 {
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// DemoMode reports whether the client should use the simulated backend.
func (c Config) DemoMode() bool {
	return c.Demo || c.APIURL == ""
}
