package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `yaml:"app" envconfig:"APP"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// AppConfig identifies the server to connecting clients
type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME" validate:"required"`
	Version string `yaml:"version" envconfig:"VERSION" validate:"required"`
}

// LoggingConfig contains logging configuration.
// Stdout carries the protocol channel, so diagnostics default to stderr.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// defaultConfig returns the built-in configuration values
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "csv-export-mcp",
			Version: "1.0.0",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stderr",
			FilePath: "logs/csvexportd.log",
		},
	}
}

// Load loads configuration from an optional YAML file and environment
// variables. Defaults are applied first, then file values, then the
// environment, so environment variables win over file values.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("CSVEXPORT", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// configFilePath returns the path of the optional config file, or ""
// when none is present. CSVEXPORT_CONFIG overrides the default lookup.
func configFilePath() string {
	if path := os.Getenv("CSVEXPORT_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}
