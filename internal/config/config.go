// Package config loads user preferences for shoplist from a YAML file.
//
// The file lives in the OS configuration directory:
//   - Linux: $XDG_CONFIG_HOME/shoplist or $HOME/.config/shoplist
//   - macOS: $HOME/.config/shoplist
//   - Windows: %LOCALAPPDATA%\shoplist
//
// A missing file is not an error; defaults apply. Only preferences are
// stored here, never list contents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const (
	appName    = "shoplist"
	configFile = "config.yaml"
)

// Config holds the user preferences.
type Config struct {
	Theme    string `yaml:"theme"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{Theme: "classic", Color: "auto"}
}

// GetConfigDir returns the OS-appropriate configuration directory.
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	case "darwin":
		// always $HOME/.config
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the file at path, or the default path when path is empty.
// Fields left unset in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return cfg, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	if cfg.Color == "" {
		cfg.Color = Default().Color
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks theme, color mode and log level names.
func (c Config) Validate() error {
	if err := ui.ValidTheme(c.Theme); err != nil {
		return err
	}
	if err := ui.ValidColorMode(c.Color); err != nil {
		return err
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
