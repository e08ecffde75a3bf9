package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads Space Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	if customPath != "" {
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

	candidates := []string{
		userConfigPath("shooter.yaml"),
		filepath.Join("configs", "shooter.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultShooterConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
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

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Fixed keeps the starting spawn rate for the whole run; levels still count up.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.StartRate = 1
		cfg.Leveling.SpawnRateIncrease = 3
	case DifficultyNormal:
		cfg.Spawn.StartRate = 2
		cfg.Leveling.SpawnRateIncrease = 5
	case DifficultyHard:
		cfg.Spawn.StartRate = 5
		cfg.Leveling.SpawnRateIncrease = 8
		cfg.Damage.Enemy = 25
	case DifficultyFixed:
		cfg.Leveling.SpawnRateIncrease = 0
	}
}
