package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadIsoCoins loads the coin game configuration.
// Search order: customPath -> ~/.arcade/configs/isocoins.yaml -> ./configs/isocoins.yaml -> embedded default
func LoadIsoCoins(customPath string) (IsoCoinsConfig, error) {
	cfg, err := load("isocoins.yaml", customPath, defaultIsoCoinsYAML, DefaultIsoCoinsConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid isocoins config: %w", err)
	}
	return cfg, nil
}

// LoadColorWipe loads the Color Wipe configuration.
// Search order: customPath -> ~/.arcade/configs/colorwipe.yaml -> ./configs/colorwipe.yaml -> embedded default
func LoadColorWipe(customPath string) (ColorWipeConfig, error) {
	cfg, err := load("colorwipe.yaml", customPath, defaultColorWipeYAML, DefaultColorWipeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid colorwipe config: %w", err)
	}
	return cfg, nil
}

// load decodes the first config file found for filename on top of the
// hardcoded defaults, so a file only needs the keys it changes.
// Only an explicit customPath makes read or parse failures an error.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
