// Package config loads locpack settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/locpack/internal/logger"
	"github.com/joshuapare/locpack/pkg/titles"
	"github.com/joshuapare/locpack/pkg/types"
)

// Newline settings.
const (
	NewlinePlatform = "platform"
	NewlineCRLF     = "crlf"
	NewlineLF       = "lf"
)

// Config represents the locpack configuration
type Config struct {
	Titles     []Title `yaml:"titles,omitempty"`
	Newline    string  `yaml:"newline"`
	GUIDFormat string  `yaml:"guid_format"`
	Workers    int     `yaml:"workers"`
	Logging    Logging `yaml:"logging"`
}

// Title registers an additional header pair
type Title struct {
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	Line1 int32  `yaml:"line1"`
	Line2 int32  `yaml:"line2"`
}

// Logging contains logging configuration. An empty Level leaves logging off.
type Logging struct {
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Newline:    NewlinePlatform,
		GUIDFormat: "hyphenated",
		Workers:    runtime.NumCPU(),
	}
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their DefaultConfig values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field and that the extra titles build a table.
func (c *Config) Validate() error {
	if _, err := c.NewlineString(); err != nil {
		return err
	}
	if _, ok := types.ParseGUIDStyle(c.GUIDFormat); !ok {
		return fmt.Errorf("guid_format %q: want hyphenated or compact", c.GUIDFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	_, err := c.TitleTable(titles.Default())
	return err
}

// NewlineString returns the line separator selected by Newline. An empty
// string means the platform newline.
func (c *Config) NewlineString() (string, error) {
	switch strings.ToLower(c.Newline) {
	case "", NewlinePlatform:
		return "", nil
	case NewlineCRLF:
		return "\r\n", nil
	case NewlineLF:
		return "\n", nil
	default:
		return "", fmt.Errorf("newline %q: want platform, crlf or lf", c.Newline)
	}
}

// GUIDStyle returns the identifier format selected by GUIDFormat.
func (c *Config) GUIDStyle() types.GUIDStyle {
	style, _ := types.ParseGUIDStyle(c.GUIDFormat)
	return style
}

// TitleTable returns base extended with the configured titles.
func (c *Config) TitleTable(base *titles.Table) (*titles.Table, error) {
	if len(c.Titles) == 0 {
		return base, nil
	}
	entries := make([]titles.Entry, 0, len(c.Titles))
	for _, t := range c.Titles {
		kind, ok := types.ParseFileKind(t.Kind)
		if !ok {
			return nil, fmt.Errorf("title %q: kind %q: want menus or subtitles", t.Title, t.Kind)
		}
		entries = append(entries, titles.Entry{Title: t.Title, Kind: kind, Line1: t.Line1, Line2: t.Line2})
	}
	return base.Extend(entries...)
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./locpack.yaml"
	}
	return filepath.Join(homeDir, ".config", "locpack", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
