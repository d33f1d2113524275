// Package config provides configuration types and defaults for dtype_inspector.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/miretskiy/dtypes/internal/log"
)

// Output formats understood by the inspector.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration options for dtype_inspector.
type Config struct {
	Format   string `mapstructure:"format" yaml:"format"`       // "text" (default), "json" or "yaml"
	Debug    bool   `mapstructure:"debug" yaml:"debug"`         // Enable debug logging
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`   // Empty logs to stderr
	LogLevel string `mapstructure:"log_level" yaml:"log_level"` // DEBUG, INFO, WARN or ERROR
}

// Defaults returns the configuration used when no file or flag overrides it.
func Defaults() Config {
	return Config{
		Format:   FormatText,
		Debug:    false,
		LogFile:  "",
		LogLevel: log.LevelDebug.String(),
	}
}

// Validate checks that every option has a usable value.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q: must be one of %s, %s, %s", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/dtypes/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dtypes", "config.yaml"), nil
}

// WriteDefaultConfig writes Defaults() as YAML to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		log.Warn(log.CatConfig, "Overwriting existing config", "path", configPath)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
