// Package config loads the rendercache configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvAddr      = "RENDERCACHE_ADDR"
	EnvLogLevel  = "RENDERCACHE_LOG_LEVEL"
	EnvBlocksDir = "RENDERCACHE_BLOCKS_DIR"
)

// Config holds all rendercache configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Preview PreviewConfig `yaml:"preview"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// BlocksConfig points at declarative block documents.
type BlocksConfig struct {
	Dir string `yaml:"dir"`
}

// PreviewConfig configures the preview renderer.
type PreviewConfig struct {
	TemplatesDir string      `yaml:"templates_dir"`
	Theme        ThemeConfig `yaml:"theme"`
}

// ThemeConfig is the default theme applied to previews.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "10s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path skips the file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBlocksDir)); v != "" {
		c.Blocks.Dir = v
	}
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server.addr is required")
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}
	if c.Preview.Theme.Name == "" && (c.Preview.Theme.Variant != "" || len(c.Preview.Theme.Tokens) > 0) {
		return errors.New("config: preview.theme.name is required when a variant or tokens are set")
	}
	return nil
}

// ShutdownTimeout parses server.shutdown_timeout, defaulting to ten seconds.
func (c Config) ShutdownTimeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.Server.ShutdownTimeout)
	if raw == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: server.shutdown_timeout must be positive, got %s", raw)
	}
	return d, nil
}
