// Package config loads optional user settings for langcolor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"langcolor/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/langcolor"
	configFileName = "config.yaml"
)

// Config holds the user-tunable defaults. Flags override these.
type Config struct {
	// ColorSpace is the default distance metric for nearest-palette
	// matching: rgb, lab, luv, cie94, or ciede2000.
	ColorSpace string `yaml:"colorSpace"`
	// Color controls styled output: "auto" (detect terminal) or "never".
	Color string `yaml:"color"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ColorSpace: "rgb",
		Color:      "auto",
	}
}

// Load layers the optional user config file over the defaults. A missing
// file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := getUserConfigPath()
	if err != nil {
		// User config is optional; fall back to defaults.
		logging.Warn("Config", "Could not determine user config path: %v", err)
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	userCfg, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	cfg = mergeConfigs(cfg, userCfg)

	logging.Debug("Config", "Loaded user config from %s", path)
	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' into 'base'; empty overlay fields keep
// the base value.
func mergeConfigs(base, overlay Config) Config {
	if overlay.ColorSpace != "" {
		base.ColorSpace = overlay.ColorSpace
	}
	if overlay.Color != "" {
		base.Color = overlay.Color
	}
	return base
}
