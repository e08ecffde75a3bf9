package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultDescentInterval is the tick modulus at which both hazard kinds
// descend one cell.
const DefaultDescentInterval = 10

// DefaultShooterConfig returns the default Space Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Craft: CraftConfig{
			StartX:    5,
			StartY:    10,
			MaxHealth: 100,
		},
		Spawn: SpawnConfig{
			StartRate:     2,
			EnemyFactor:   0.5,
			PowerUpFactor: 0.25,
		},
		Damage: DamageConfig{
			Asteroid: 10,
			Enemy:    20,
		},
		Pickups: PickupConfig{
			Heal:        20,
			ShieldScore: 50,
		},
		Leveling: LevelingConfig{
			StartLevel:        1,
			ScoreThreshold:    100,
			SpawnRateIncrease: 5,
		},
		Descent: DescentConfig{
			AsteroidInterval: DefaultDescentInterval,
			EnemyInterval:    DefaultDescentInterval,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter", "shooter_blitz":
		return defaultShooterYAML
	default:
		return nil
	}
}
