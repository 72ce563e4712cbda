// Package config provides YAML-based configuration loading, validation and
// the score-driven difficulty functions for the shooter.
package config

// ShooterConfig contains all tunable parameters of a shooter run.
// Speeds are in rows per second; horizontal motion is scaled by the cell
// aspect ratio inside the game so that movement looks isotropic.
type ShooterConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Weapon      WeaponConfig     `yaml:"weapon"`
	Hazards     HazardConfig     `yaml:"hazards"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	Effects     EffectConfig     `yaml:"effects"`
	Decorations DecorationConfig `yaml:"decorations"`
	Timing      TimingConfig     `yaml:"timing"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
	Lives int     `yaml:"lives"`
}

// WeaponConfig defines projectile parameters.
// The fire cooldown is level dependent and lives in DifficultyConfig.
type WeaponConfig struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

// HazardConfig defines meteor spawning and motion.
type HazardConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	Drift          float64 `yaml:"drift"`            // max |x| of the drift vector, y is always 1
	MinSpin        float64 `yaml:"min_spin"`         // degrees per second
	MaxSpin        float64 `yaml:"max_spin"`         // degrees per second
	MaxLifetimeMs  int     `yaml:"max_lifetime_ms"`  // age at which a hazard is pruned
	SpawnOffsetMin float64 `yaml:"spawn_offset_min"` // rows above the top edge
	SpawnOffsetMax float64 `yaml:"spawn_offset_max"`
	ExitMargin     float64 `yaml:"exit_margin"` // rows below the bottom edge before removal
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	SurvivalPoints    int `yaml:"survival_points"`    // per whole second survived
	DestructionPoints int `yaml:"destruction_points"` // per meteor shot down
}

// DifficultyConfig defines the level thresholds and the parameters that
// scale with level.
type DifficultyConfig struct {
	Thresholds      []int   `yaml:"thresholds"` // ascending score thresholds, first is 0
	BaseSpawnMs     int     `yaml:"base_spawn_ms"`
	SpawnDecreaseMs int     `yaml:"spawn_decrease_ms"`
	MinSpawnMs      int     `yaml:"min_spawn_ms"` // 0 means spawn every step
	SpeedStep       float64 `yaml:"speed_step"`   // hazard speed multiplier added per level

	BaseCooldownMs        int `yaml:"base_cooldown_ms"`
	CooldownIncreaseLevel int `yaml:"cooldown_increase_level"`
	CooldownStepMs        int `yaml:"cooldown_step_ms"`
	MaxCooldownMs         int `yaml:"max_cooldown_ms"`
}

// EffectConfig defines explosion animation playback.
type EffectConfig struct {
	AnimationFPS float64 `yaml:"animation_fps"`
}

// DecorationConfig defines the static background.
type DecorationConfig struct {
	Count int `yaml:"count"`
}

// TimingConfig defines how elapsed time is fed to the simulation.
type TimingConfig struct {
	MaxFrameDeltaMs int `yaml:"max_frame_delta_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known difficulty presets.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// IsValidPreset returns true if the preset name is known.
func IsValidPreset(preset DifficultyPreset) bool {
	for _, p := range Presets {
		if p == preset {
			return true
		}
	}
	return false
}
