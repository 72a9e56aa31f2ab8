// Package config loads process configuration from a YAML file with
// environment-variable overrides.
//
// Configuration is constructed once at startup and passed explicitly
// into the components that need it; nothing reads ambient globals.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Env override variables. Each one, when set and non-empty, takes
// precedence over the config file.
const (
	EnvToken      = "TRUSTLEDGER_TOKEN"
	EnvDBPath     = "TRUSTLEDGER_DB_PATH"
	EnvExportPath = "TRUSTLEDGER_EXPORT_PATH"
)

// Config holds all process configuration.
type Config struct {
	// Token is the chat-bot access token. Only the chat surface needs
	// it; local CLI commands work without one.
	Token string `yaml:"token"`

	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// ExportPath is where the JSON export is written.
	ExportPath string `yaml:"export_path"`
}

// Default returns the configuration rooted under $HOME/.trustledger.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".trustledger")
	return Config{
		DBPath:     filepath.Join(dir, "trust.db"),
		ExportPath: filepath.Join(dir, "trust_log.json"),
	}, nil
}

// Load builds the effective configuration.
//
// Starting from defaults, it overlays the YAML file at path (an
// explicitly given path must exist; the default location is optional),
// then applies environment overrides.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".trustledger", "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Default location is optional; run on defaults.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvExportPath); v != "" {
		c.ExportPath = v
	}
}

// RequireToken fails when no bot token is configured. The chat surface
// calls this at startup; a missing token is fatal there and only there.
func (c Config) RequireToken() error {
	if c.Token == "" {
		return fmt.Errorf("no bot token configured: set %s or the token field in the config file", EnvToken)
	}
	return nil
}
