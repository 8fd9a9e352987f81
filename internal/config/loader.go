package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.roids/configs/asteroids.{yaml,toml} ->
// ./configs/asteroids.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides
// the keys it names.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath("asteroids.yaml"),
		userConfigPath("asteroids.toml"),
		filepath.Join("configs", "asteroids.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := DefaultAsteroidsConfig()
		if err := decode(path, data, &layered); err != nil {
			continue
		}
		if layered.Validate() != nil {
			continue
		}
		return layered, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the decoder from the file extension.
func decode(path string, data []byte, cfg *AsteroidsConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roids", "configs", filename)
}
