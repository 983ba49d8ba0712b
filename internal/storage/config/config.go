package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"qlaunch/internal/domain"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "config.yaml"

// Config holds global application settings
type Config struct {
	GamePath    string `yaml:"game_path"`
	Keybindings string `yaml:"keybindings"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Fullscreen  bool   `yaml:"fullscreen"`
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		Keybindings: "vim",
		Width:       1280,
		Height:      720,
		Fullscreen:  true,
	}
}

// Load reads configuration from the given directory
func Load(configDir string) (*Config, error) {
	return LoadFile(filepath.Join(configDir, FileName))
}

// LoadFile reads configuration from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that cannot be used as they are.
func (c *Config) Validate() error {
	switch c.Keybindings {
	case "vim", "standard":
	default:
		return fmt.Errorf("%w: keybindings must be vim or standard, got %q", domain.ErrInvalidConfig, c.Keybindings)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", domain.ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Save writes configuration to the given directory
func (c *Config) Save(configDir string) error {
	return c.SaveFile(filepath.Join(configDir, FileName))
}

// SaveFile writes configuration to path, creating its directory.
func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
