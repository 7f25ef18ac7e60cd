package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads a shooter profile and validates it.
// Search order: customPath -> ~/.skyshooter/configs/<profile>.yaml ->
// ./configs/<profile>.yaml -> embedded default -> hard-coded default.
// An explicit customPath must exist and parse; override files found in the
// user or local directory are skipped silently when they fail to parse.
func Load(profile, customPath string) (ShooterConfig, error) {
	fallback, ok := DefaultConfig(profile)
	if !ok && customPath == "" {
		return ShooterConfig{}, fmt.Errorf("config: unknown profile %q", profile)
	}

	if customPath != "" {
		cfg, err := readFile(customPath, fallback)
		if err != nil {
			return cfg, err
		}
		if cfg.Name == "" {
			cfg.Name = profile
		}
		return cfg, validated(cfg, customPath)
	}

	filename := profile + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path, fallback); err == nil {
			if cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(profile), &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, validated(cfg, "embedded "+profile)
}

// readFile decodes a YAML or TOML file on top of base.
// Fields absent from the file keep the base value.
func readFile(path string, base ShooterConfig) (ShooterConfig, error) {
	cfg := base
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func validated(cfg ShooterConfig, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: invalid profile %s: %w", source, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyshooter", "configs", filename)
}

// ToYAML renders a config as YAML, for `skyshooter config`.
func ToYAML(cfg ShooterConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return out, nil
}
