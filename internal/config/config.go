// Package config loads signupdesk settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultLayout      = "desktop"
	defaultServiceName = "signupdesk"
	envPrefix          = "SIGNUPDESK"
)

// Config holds runtime settings for the TUI.
type Config struct {
	Layout          string   `mapstructure:"layout"`
	Animate         bool     `mapstructure:"animate"`
	Durations       []string `mapstructure:"durations"` // empty uses the built-in list
	LogFile         string   `mapstructure:"log-file"`
	OTelEndpoint    string   `mapstructure:"otel-endpoint"`
	OTelServiceName string   `mapstructure:"otel-service-name"`
}

// DefaultPath returns ~/.config/signupdesk/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "signupdesk", "config.yml"), nil
}

// Load reads configPath (or the default path) and SIGNUPDESK_* environment
// variables. A missing default file is not an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("layout", defaultLayout)
	v.SetDefault("animate", true)
	v.SetDefault("durations", []string{})
	v.SetDefault("log-file", "")
	v.SetDefault("otel-endpoint", "")
	v.SetDefault("otel-service-name", defaultServiceName)
	if err := v.BindEnv("otel-endpoint", envPrefix+"_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return cfg, err
	}
	if err := v.BindEnv("otel-service-name", envPrefix+"_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME"); err != nil {
		return cfg, err
	}

	// Only the default file may be absent; a named file must exist.
	defaulted := configPath == ""
	if defaulted {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || !defaulted {
			return cfg, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the TUI cannot start with.
func (c Config) Validate() error {
	switch c.Layout {
	case "desktop", "mobile":
	default:
		return fmt.Errorf("layout must be desktop or mobile, got %q", c.Layout)
	}
	for i, d := range c.Durations {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("durations[%d] is blank", i)
		}
	}
	return nil
}
