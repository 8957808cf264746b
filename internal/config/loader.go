package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFarm loads the farm configuration.
// Search order: customPath -> ~/.farmstead/configs/farm.yaml -> ./configs/farm.yaml -> embedded default
// Each candidate is decoded into a fresh config so a rejected file cannot
// bleed entries into the next candidate down the chain.
func LoadFarm(customPath string) (FarmConfig, error) {
	// Try custom path first
	if customPath != "" {
		var cfg FarmConfig
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("farm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var cfg FarmConfig
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/farm.yaml"); err == nil {
		var cfg FarmConfig
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg FarmConfig
	if err := yaml.Unmarshal(defaultFarmYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultFarmConfig(), nil // Fallback to hardcoded if embed is unusable
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farmstead", "configs", filename)
}
