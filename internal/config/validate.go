package config

import (
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration before any run starts and returns the
// first failing rule as a ValidationError.
func (c ShooterConfig) Validate() error {
	checks := []func() error{
		c.Difficulty.validateThresholds,
		c.Difficulty.validateSpawn,
		c.Difficulty.validateCooldown,
		c.validatePlayer,
		c.validateHazards,
		c.validateMisc,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// validateThresholds checks the level threshold list.
func (d DifficultyConfig) validateThresholds() error {
	if len(d.Thresholds) < 2 {
		return ValidationError{
			Code:    "THRESHOLDS_TOO_SHORT",
			Message: fmt.Sprintf("need at least 2 level thresholds, got %d", len(d.Thresholds)),
		}
	}
	if d.Thresholds[0] != 0 {
		return ValidationError{
			Code:    "THRESHOLDS_START",
			Message: fmt.Sprintf("first threshold must be 0, got %d", d.Thresholds[0]),
		}
	}
	for i := 1; i < len(d.Thresholds); i++ {
		if d.Thresholds[i] <= d.Thresholds[i-1] {
			return ValidationError{
				Code: "THRESHOLDS_ORDER",
				Message: fmt.Sprintf("thresholds must be strictly increasing: T[%d]=%d <= T[%d]=%d",
					i, d.Thresholds[i], i-1, d.Thresholds[i-1]),
			}
		}
	}
	return nil
}

// validateSpawn checks the spawn interval parameters.
func (d DifficultyConfig) validateSpawn() error {
	if d.BaseSpawnMs < 0 || d.SpawnDecreaseMs < 0 || d.MinSpawnMs < 0 {
		return ValidationError{
			Code:    "SPAWN_NEGATIVE",
			Message: "spawn intervals must be non-negative",
		}
	}
	if d.MinSpawnMs > d.BaseSpawnMs {
		return ValidationError{
			Code:    "SPAWN_RANGE",
			Message: fmt.Sprintf("min_spawn_ms %d > base_spawn_ms %d", d.MinSpawnMs, d.BaseSpawnMs),
		}
	}
	if d.SpeedStep < 0 {
		return ValidationError{
			Code:    "SPEED_STEP",
			Message: fmt.Sprintf("speed_step must be non-negative, got %g", d.SpeedStep),
		}
	}
	return nil
}

// validateCooldown checks the weapon cooldown parameters.
func (d DifficultyConfig) validateCooldown() error {
	if d.BaseCooldownMs < 0 || d.CooldownStepMs < 0 {
		return ValidationError{
			Code:    "COOLDOWN_NEGATIVE",
			Message: "cooldowns must be non-negative",
		}
	}
	if d.BaseCooldownMs > d.MaxCooldownMs {
		return ValidationError{
			Code:    "COOLDOWN_RANGE",
			Message: fmt.Sprintf("base_cooldown_ms %d > max_cooldown_ms %d", d.BaseCooldownMs, d.MaxCooldownMs),
		}
	}
	if d.CooldownIncreaseLevel < 1 {
		return ValidationError{
			Code:    "COOLDOWN_LEVEL",
			Message: fmt.Sprintf("cooldown_increase_level must be >= 1, got %d", d.CooldownIncreaseLevel),
		}
	}
	return nil
}

// validatePlayer checks the player and weapon parameters.
func (c ShooterConfig) validatePlayer() error {
	if c.Player.Lives <= 0 {
		return ValidationError{
			Code:    "LIVES",
			Message: fmt.Sprintf("lives must be positive, got %d", c.Player.Lives),
		}
	}
	if c.Player.Speed <= 0 || c.Weapon.ProjectileSpeed <= 0 {
		return ValidationError{
			Code:    "SPEED",
			Message: "player and projectile speeds must be positive",
		}
	}
	return nil
}

// validateHazards checks the hazard parameters.
func (c ShooterConfig) validateHazards() error {
	h := c.Hazards
	if h.BaseSpeed < 0 {
		return ValidationError{
			Code:    "SPEED",
			Message: fmt.Sprintf("hazard base_speed must be non-negative, got %g", h.BaseSpeed),
		}
	}
	if h.Drift < 0 {
		return ValidationError{
			Code:    "DRIFT",
			Message: fmt.Sprintf("drift must be non-negative, got %g", h.Drift),
		}
	}
	if h.MinSpin > h.MaxSpin {
		return ValidationError{
			Code:    "SPIN_RANGE",
			Message: fmt.Sprintf("min_spin %g > max_spin %g", h.MinSpin, h.MaxSpin),
		}
	}
	if h.MaxLifetimeMs <= 0 {
		return ValidationError{
			Code:    "LIFETIME",
			Message: fmt.Sprintf("max_lifetime_ms must be positive, got %d", h.MaxLifetimeMs),
		}
	}
	if h.SpawnOffsetMin < 0 || h.SpawnOffsetMin > h.SpawnOffsetMax || h.ExitMargin < 0 {
		return ValidationError{
			Code:    "SPAWN_OFFSET",
			Message: "spawn offsets must satisfy 0 <= spawn_offset_min <= spawn_offset_max and exit_margin >= 0",
		}
	}
	return nil
}

// validateMisc checks scoring, effects, decorations and timing.
func (c ShooterConfig) validateMisc() error {
	if c.Scoring.SurvivalPoints < 0 || c.Scoring.DestructionPoints < 0 {
		return ValidationError{
			Code:    "POINTS",
			Message: "point awards must be non-negative",
		}
	}
	if c.Effects.AnimationFPS <= 0 {
		return ValidationError{
			Code:    "EFFECT_FPS",
			Message: fmt.Sprintf("animation_fps must be positive, got %g", c.Effects.AnimationFPS),
		}
	}
	if c.Decorations.Count < 0 {
		return ValidationError{
			Code:    "DECORATIONS",
			Message: fmt.Sprintf("decoration count must be non-negative, got %d", c.Decorations.Count),
		}
	}
	if c.Timing.MaxFrameDeltaMs <= 0 {
		return ValidationError{
			Code:    "FRAME_DELTA",
			Message: fmt.Sprintf("max_frame_delta_ms must be positive, got %d", c.Timing.MaxFrameDeltaMs),
		}
	}
	return nil
}
