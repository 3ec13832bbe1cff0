// Package config loads blockflow settings from a YAML file, BLOCKFLOW_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: BLOCKFLOW_LAYOUT_GLYPH_SIZE
// sets layout.glyph_size.
const EnvPrefix = "BLOCKFLOW"

// Config holds the whole configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // console or json
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	// LogFile adds a rotated JSON log when set.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// LayoutConfig configures fixture layout runs.
type LayoutConfig struct {
	// Viewport overrides. Empty keeps the fixture's viewport; otherwise a
	// number, "min-content" or "max-content".
	ViewportWidth  string `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight string `mapstructure:"viewport_height" yaml:"viewport_height"`

	ScrollbarWidth float32 `mapstructure:"scrollbar_width" yaml:"scrollbar_width"`
	Measurer       string  `mapstructure:"measurer" yaml:"measurer"` // glyph, cells or basic
	GlyphSize      float32 `mapstructure:"glyph_size" yaml:"glyph_size"`
	Tolerance      float32 `mapstructure:"tolerance" yaml:"tolerance"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "blockflow")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Layout --
	v.SetDefault("layout.viewport_width", "")
	v.SetDefault("layout.viewport_height", "")
	v.SetDefault("layout.scrollbar_width", 15)
	v.SetDefault("layout.measurer", "glyph")
	v.SetDefault("layout.glyph_size", 10)
	v.SetDefault("layout.tolerance", 0.01)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// Load configures v with defaults and environment overrides, reads path
// if set (or ./blockflow.yaml if present) and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blockflow")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Layout.ScrollbarWidth <= 0 {
		return errors.New("layout.scrollbar_width must be positive")
	}
	if c.Layout.Tolerance < 0 {
		return errors.New("layout.tolerance must not be negative")
	}
	switch c.Layout.Measurer {
	case "glyph", "":
		if c.Layout.GlyphSize <= 0 {
			return errors.New("layout.glyph_size must be positive")
		}
	case "cells", "basic":
	default:
		return fmt.Errorf("layout.measurer must be glyph, cells or basic, got %q", c.Layout.Measurer)
	}
	return nil
}
