package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/breakout.yaml
var defaultHostYAML []byte

// configFile is the file name searched for in the user and local dirs.
const configFile = "breakout.yaml"

// LoadHost loads host configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default
//
// Keys missing from the file keep their default values. Only an explicit
// customPath is allowed to fail; broken files elsewhere are skipped.
func LoadHost(customPath string) (HostConfig, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		data, err := os.ReadFile(path) //#nosec G304 -- user-supplied config path
		if err != nil {
			return HostConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := parseHost(data)
		if err != nil {
			return HostConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return HostConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", configFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseHost(defaultHostYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultHostConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile loads path if it exists and holds a valid config.
func tryFile(path string) (HostConfig, bool) {
	data, err := os.ReadFile(path) //#nosec G304 -- fixed search locations
	if err != nil {
		return HostConfig{}, false
	}
	cfg, err := parseHost(data)
	if err != nil || cfg.Validate() != nil {
		return HostConfig{}, false
	}
	return cfg, true
}

// parseHost decodes data over the defaults.
func parseHost(data []byte) (HostConfig, error) {
	cfg := DefaultHostConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HostConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
