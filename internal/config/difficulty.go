package config

import "time"

// Params is the full set of level-dependent parameters for a given score.
type Params struct {
	Level           int
	SpawnInterval   time.Duration
	SpeedMultiplier float64
	WeaponCooldown  time.Duration
}

// LevelFor returns the 1-based level for a score.
//
// It is the smallest index i with score < Thresholds[i]. Past the end of the
// list the level is K (the number of thresholds) until the score clears one
// more threshold step, after which it is the ceiling K+1.
// For [0, 300, 600]: 0 -> 1, 299 -> 1, 300 -> 2, 600 -> 3, 900 -> 4.
func (d DifficultyConfig) LevelFor(score int) int {
	t := d.Thresholds
	for i, threshold := range t {
		if score < threshold {
			return max(i, 1)
		}
	}

	k := len(t)
	if k >= 2 && score >= t[k-1]+(t[k-1]-t[k-2]) {
		return k + 1
	}
	return max(k, 1)
}

// MaxLevel returns the highest level LevelFor can return.
func (d DifficultyConfig) MaxLevel() int {
	if len(d.Thresholds) < 2 {
		return max(len(d.Thresholds), 1)
	}
	return len(d.Thresholds) + 1
}

// LevelStart returns the lowest score at which LevelFor reports level.
// ok is false for levels outside [1, MaxLevel].
func (d DifficultyConfig) LevelStart(level int) (score int, ok bool) {
	t := d.Thresholds
	k := len(t)
	switch {
	case level < 1 || level > d.MaxLevel():
		return 0, false
	case level == 1:
		return 0, true
	case level <= k:
		return t[level-1], true
	default:
		return t[k-1] + (t[k-1] - t[k-2]), true
	}
}

// SpawnInterval returns the minimum time between hazard spawns at a level.
// Non-increasing in level and never below MinSpawnMs.
func (d DifficultyConfig) SpawnInterval(level int) time.Duration {
	ms := max(d.BaseSpawnMs-(level-1)*d.SpawnDecreaseMs, d.MinSpawnMs)
	return time.Duration(ms) * time.Millisecond
}

// HazardSpeedMultiplier returns the factor applied to the base hazard speed.
func (d DifficultyConfig) HazardSpeedMultiplier(level int) float64 {
	return 1.0 + float64(level-1)*d.SpeedStep
}

// WeaponCooldown returns the time between shots at a level.
// Constant below CooldownIncreaseLevel, then grows by CooldownStepMs per level
// and saturates at MaxCooldownMs.
func (d DifficultyConfig) WeaponCooldown(level int) time.Duration {
	ms := d.BaseCooldownMs
	if level >= d.CooldownIncreaseLevel {
		ms = min(d.BaseCooldownMs+(level-d.CooldownIncreaseLevel+1)*d.CooldownStepMs, d.MaxCooldownMs)
	}
	return time.Duration(ms) * time.Millisecond
}

// Params bundles every level-dependent value for the given score.
// It holds no state and is recomputed every step.
func (d DifficultyConfig) Params(score int) Params {
	level := d.LevelFor(score)
	return Params{
		Level:           level,
		SpawnInterval:   d.SpawnInterval(level),
		SpeedMultiplier: d.HazardSpeedMultiplier(level),
		WeaponCooldown:  d.WeaponCooldown(level),
	}
}
