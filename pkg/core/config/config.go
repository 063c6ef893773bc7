// ============================================================================
// textkit - Code point safe string tooling
// ============================================================================
//
// Package:     config
// Description: Configuration file loading for the textkit binary
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Environment variables read by Resolve and Load
const (
	EnvConfig   = "TEXTKIT_CONFIG"
	EnvMarker   = "TEXTKIT_MARKER"
	EnvWidth    = "TEXTKIT_WIDTH"
	EnvLogLevel = "TEXTKIT_LOG_LEVEL"
)

// Color modes for OutputConfig.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete textkit configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Abbreviate AbbreviateConfig `toml:"abbreviate" yaml:"abbreviate"`
	Wrap       WrapConfig       `toml:"wrap" yaml:"wrap"`
	Pad        PadConfig        `toml:"pad" yaml:"pad"`
	Output     OutputConfig     `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// AbbreviateConfig holds the defaults of the abbreviate command
type AbbreviateConfig struct {
	Marker string `toml:"marker" yaml:"marker"`
	Width  int    `toml:"width" yaml:"width"`
	Offset int    `toml:"offset" yaml:"offset"`
}

// WrapConfig holds the defaults of the wrap command
type WrapConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Newline   string `toml:"newline" yaml:"newline"`
	LongWords bool   `toml:"long_words" yaml:"long_words"`
}

// PadConfig holds the defaults of the pad command
type PadConfig struct {
	Width int    `toml:"width" yaml:"width"`
	Pad   string `toml:"pad" yaml:"pad"`
}

// OutputConfig holds terminal output settings
type OutputConfig struct {
	Color string `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The decoder is chosen
// by extension: .toml, or .yaml and .yml. Environment overrides are applied
// after decoding and the result is validated.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("load").
			Code(mdwerror.CodeConfigError).
			Messagef("config file not found: %s", path).
			Detail("path", path).
			Build()
	}

	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve finds and loads the configuration. An explicit path wins, then
// TEXTKIT_CONFIG, then the default locations. When no file exists anywhere
// the defaults are used. The returned path is empty in that case.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// DefaultPaths lists the locations searched by Resolve, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/textkit.toml",
		"./textkit.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textkit", "textkit.toml"))
	}
	return paths
}

// Validate rejects settings the commands would refuse at run time
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}

	minWidth := stringx.Length(c.Abbreviate.Marker) + 1
	if c.Abbreviate.Width < minWidth {
		return invalid("abbreviate.width", c.Abbreviate.Width,
			fmt.Sprintf("must be at least %d for marker %q", minWidth, c.Abbreviate.Marker))
	}
	if c.Abbreviate.Offset < 0 {
		return invalid("abbreviate.offset", c.Abbreviate.Offset, "must not be negative")
	}

	if c.Wrap.Width < 1 {
		return invalid("wrap.width", c.Wrap.Width, "must be at least 1")
	}
	if c.Pad.Width < 0 {
		return invalid("pad.width", c.Pad.Width, "must not be negative")
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("output.color", c.Output.Color, "must be auto, always or never")
	}
	return nil
}

// decodeFile decodes path into cfg using the decoder for its extension
func decodeFile(path string, cfg *Config) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return parseError(path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return parseError(path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return parseError(path, err)
		}
	default:
		return errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("load").
			Code(mdwerror.CodeConfigError).
			Messagef("unsupported config file extension %q", ext).
			Detail("path", path).
			Build()
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Abbreviate
	if c.Abbreviate.Marker == "" {
		c.Abbreviate.Marker = stringx.DefaultMarker
	}
	if c.Abbreviate.Width == 0 {
		c.Abbreviate.Width = 40
	}

	// Wrap
	if c.Wrap.Width == 0 {
		c.Wrap.Width = 80
	}
	if c.Wrap.Newline == "" {
		c.Wrap.Newline = stringx.LF
	}

	// Pad
	if c.Pad.Width == 0 {
		c.Pad.Width = 20
	}
	if c.Pad.Pad == "" {
		c.Pad.Pad = stringx.Space
	}

	// Output
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}

// expandEnvVars expands environment variables in string values
func (c *Config) expandEnvVars() {
	c.Abbreviate.Marker = os.ExpandEnv(c.Abbreviate.Marker)
	c.Pad.Pad = os.ExpandEnv(c.Pad.Pad)
}

// applyEnv applies the TEXTKIT_* overrides. TEXTKIT_MARKER may be set to
// the empty string to turn abbreviation into a hard cut.
func (c *Config) applyEnv() error {
	if marker, ok := os.LookupEnv(EnvMarker); ok {
		c.Abbreviate.Marker = marker
	}
	if width := os.Getenv(EnvWidth); width != "" {
		n, err := strconv.Atoi(width)
		if err != nil {
			return invalid(EnvWidth, width, "must be an integer")
		}
		c.Abbreviate.Width = n
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
	return nil
}

func invalid(field string, value interface{}, reason string) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("validate").
		Code(mdwerror.CodeInvalidConfig).
		Messagef("invalid config %s: %s", field, reason).
		Detail("field", field).
		Detail("value", value).
		Build()
}

func parseError(path string, err error) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("load").
		Code(mdwerror.CodeConfigError).
		Message("failed to parse config").
		Cause(err).
		Detail("path", path).
		Build()
}
