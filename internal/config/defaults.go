package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Speed: 20,
			Lives: 3,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed: 24,
		},
		Hazards: HazardConfig{
			BaseSpeed:      10,
			Drift:          0.5,
			MinSpin:        50,
			MaxSpin:        300,
			MaxLifetimeMs:  5000,
			SpawnOffsetMin: 1,
			SpawnOffsetMax: 6,
			ExitMargin:     3,
		},
		Scoring: ScoringConfig{
			SurvivalPoints:    10,
			DestructionPoints: 20,
		},
		Difficulty: DifficultyConfig{
			Thresholds:            []int{0, 300, 600, 900, 1200, 1500, 1800, 2100},
			BaseSpawnMs:           700,
			SpawnDecreaseMs:       100,
			MinSpawnMs:            0,
			SpeedStep:             0.1,
			BaseCooldownMs:        400,
			CooldownIncreaseLevel: 3,
			CooldownStepMs:        100,
			MaxCooldownMs:         800,
		},
		Effects: EffectConfig{
			AnimationFPS: 12,
		},
		Decorations: DecorationConfig{
			Count: 20,
		},
		Timing: TimingConfig{
			MaxFrameDeltaMs: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
