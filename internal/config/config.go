// Package config provides YAML-based game configuration loading,
// difficulty presets and environment defaults for the arcade platform.
package config

import "fmt"

// ShooterConfig contains all tunables for the Space Shooter simulation.
// Every constant of the simulation lives here so independent games can
// run side by side with different rules.
type ShooterConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Craft    CraftConfig    `yaml:"craft"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Damage   DamageConfig   `yaml:"damage"`
	Pickups  PickupConfig   `yaml:"pickups"`
	Leveling LevelingConfig `yaml:"leveling"`
	Descent  DescentConfig  `yaml:"descent"`
}

// FieldConfig defines the playfield size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CraftConfig defines the player's craft at spawn.
type CraftConfig struct {
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
	MaxHealth int `yaml:"max_health"`
}

// SpawnConfig defines per-tick spawn chances.
// Enemy and power-up chances are fractions of the current spawn rate.
type SpawnConfig struct {
	StartRate     int     `yaml:"start_rate"`     // Percentage chance per tick for asteroids
	EnemyFactor   float64 `yaml:"enemy_factor"`   // Enemy chance = rate * factor
	PowerUpFactor float64 `yaml:"powerup_factor"` // Power-up chance = rate * factor
}

// DamageConfig defines the health lost when a hazard hits the craft.
type DamageConfig struct {
	Asteroid int `yaml:"asteroid"`
	Enemy    int `yaml:"enemy"`
}

// PickupConfig defines power-up effect amounts.
type PickupConfig struct {
	Heal        int `yaml:"heal"`
	ShieldScore int `yaml:"shield_score"`
}

// LevelingConfig defines the score-driven difficulty ramp.
type LevelingConfig struct {
	StartLevel        int `yaml:"start_level"`
	ScoreThreshold    int `yaml:"score_threshold"`     // Level N ends at N * threshold
	SpawnRateIncrease int `yaml:"spawn_rate_increase"` // Added to spawn rate per level
}

// DescentConfig defines how often descending hazards move down.
// A hazard moves one cell on every tick that is a multiple of its interval.
type DescentConfig struct {
	AsteroidInterval int `yaml:"asteroid_interval"`
	EnemyInterval    int `yaml:"enemy_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value into a preset.
// Empty or unknown values return "" meaning "keep the config as loaded".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate checks that the config describes a playable simulation.
func (c ShooterConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if c.Craft.StartX < 0 || c.Craft.StartX >= c.Field.Width ||
		c.Craft.StartY < 0 || c.Craft.StartY >= c.Field.Height {
		return fmt.Errorf("config: craft start (%d, %d) is outside the field", c.Craft.StartX, c.Craft.StartY)
	}
	if c.Craft.MaxHealth <= 0 {
		return fmt.Errorf("config: max_health must be positive, got %d", c.Craft.MaxHealth)
	}
	if c.Spawn.StartRate < 0 || c.Spawn.StartRate > 100 {
		return fmt.Errorf("config: start_rate must be within [0, 100], got %d", c.Spawn.StartRate)
	}
	if c.Spawn.EnemyFactor < 0 || c.Spawn.PowerUpFactor < 0 {
		return fmt.Errorf("config: spawn factors must not be negative")
	}
	if c.Damage.Asteroid < 0 || c.Damage.Enemy < 0 || c.Pickups.Heal < 0 || c.Pickups.ShieldScore < 0 {
		return fmt.Errorf("config: damage and pickup amounts must not be negative")
	}
	if c.Leveling.StartLevel < 1 {
		return fmt.Errorf("config: start_level must be at least 1, got %d", c.Leveling.StartLevel)
	}
	if c.Leveling.ScoreThreshold <= 0 {
		return fmt.Errorf("config: score_threshold must be positive, got %d", c.Leveling.ScoreThreshold)
	}
	if c.Descent.AsteroidInterval < 1 || c.Descent.EnemyInterval < 1 {
		return fmt.Errorf("config: descent intervals must be at least 1")
	}
	return nil
}
