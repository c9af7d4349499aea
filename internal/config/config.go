// Package config loads the stockpile configuration from config.yaml and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// File is the inventory snapshot path.
	File string `yaml:"file" mapstructure:"file"`

	// LowStockThreshold is the quantity below which an item counts as low
	// stock.
	LowStockThreshold int `yaml:"low_stock_threshold" mapstructure:"low_stock_threshold"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// Theme controls terminal output styling: "auto" or "plain".
	Theme string `yaml:"theme" mapstructure:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		File:              "inventory.json",
		LowStockThreshold: 5,
		LogLevel:          "info",
		Theme:             "auto",
	}
}

// Dir returns the directory searched for config.yaml after the working
// directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stockpile")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stockpile")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Defaults; AutomaticEnv only overrides keys viper knows about.
	v.SetDefault("file", cfg.File)
	v.SetDefault("low_stock_threshold", cfg.LowStockThreshold)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("theme", cfg.Theme)

	// Search paths
	v.AddConfigPath(".")
	v.AddConfigPath(Dir())

	// Environment variables, e.g. STOCKPILE_LOG_LEVEL
	v.SetEnvPrefix("STOCKPILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("config: file is required")
	}
	if c.LowStockThreshold < 1 {
		return fmt.Errorf("config: low_stock_threshold must be at least 1 (got %d)", c.LowStockThreshold)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch c.Theme {
	case "auto", "plain":
	default:
		return fmt.Errorf("config: invalid theme %q (must be auto or plain)", c.Theme)
	}
	return nil
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
