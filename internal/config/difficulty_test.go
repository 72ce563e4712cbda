package config

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	d := DifficultyConfig{Thresholds: []int{0, 300, 600}}

	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{1, 1},
		{299, 1},
		{300, 2},
		{599, 2},
		{600, 3},
		{899, 3},
		{900, 4},
		{1000, 4},
		{100000, 4},
	}

	for _, tc := range tests {
		if got := d.LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	d := DefaultShooterConfig().Difficulty

	prev := d.LevelFor(0)
	if prev != 1 {
		t.Fatalf("LevelFor(0) = %d, expected 1", prev)
	}
	for score := 1; score <= 5000; score++ {
		level := d.LevelFor(score)
		if level < prev {
			t.Fatalf("LevelFor not monotonic: LevelFor(%d)=%d < %d", score, level, prev)
		}
		if level > d.MaxLevel() {
			t.Fatalf("LevelFor(%d)=%d exceeds MaxLevel %d", score, level, d.MaxLevel())
		}
		prev = level
	}
	if prev != d.MaxLevel() {
		t.Errorf("high scores should reach the ceiling level %d, got %d", d.MaxLevel(), prev)
	}
}

func TestSpawnInterval(t *testing.T) {
	d := DefaultShooterConfig().Difficulty
	d.MinSpawnMs = 150

	if got := d.SpawnInterval(1); got != 700*time.Millisecond {
		t.Errorf("SpawnInterval(1) = %v, expected 700ms", got)
	}
	if got := d.SpawnInterval(3); got != 500*time.Millisecond {
		t.Errorf("SpawnInterval(3) = %v, expected 500ms", got)
	}

	prev := d.SpawnInterval(1)
	for level := 2; level <= 20; level++ {
		got := d.SpawnInterval(level)
		if got > prev {
			t.Errorf("SpawnInterval increased at level %d: %v > %v", level, got, prev)
		}
		if got < 150*time.Millisecond {
			t.Errorf("SpawnInterval(%d) = %v, below minimum", level, got)
		}
		prev = got
	}
}

func TestSpawnIntervalZeroMinimum(t *testing.T) {
	d := DefaultShooterConfig().Difficulty

	if got := d.SpawnInterval(9); got != 0 {
		t.Errorf("SpawnInterval(9) = %v, expected 0", got)
	}
	if got := d.SpawnInterval(15); got != 0 {
		t.Errorf("SpawnInterval(15) = %v, expected floor of 0", got)
	}
}

func TestHazardSpeedMultiplier(t *testing.T) {
	d := DefaultShooterConfig().Difficulty

	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 1.1},
		{5, 1.4},
	}
	for _, tc := range tests {
		got := d.HazardSpeedMultiplier(tc.level)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("HazardSpeedMultiplier(%d) = %g, expected %g", tc.level, got, tc.want)
		}
	}
}

func TestWeaponCooldown(t *testing.T) {
	d := DefaultShooterConfig().Difficulty
	base := time.Duration(d.BaseCooldownMs) * time.Millisecond
	maxCooldown := time.Duration(d.MaxCooldownMs) * time.Millisecond

	for level := 1; level < d.CooldownIncreaseLevel; level++ {
		if got := d.WeaponCooldown(level); got != base {
			t.Errorf("WeaponCooldown(%d) = %v, expected constant %v", level, got, base)
		}
	}

	if got := d.WeaponCooldown(3); got != 500*time.Millisecond {
		t.Errorf("WeaponCooldown(3) = %v, expected 500ms", got)
	}

	prev := d.WeaponCooldown(d.CooldownIncreaseLevel - 1)
	for level := d.CooldownIncreaseLevel; level <= 20; level++ {
		got := d.WeaponCooldown(level)
		if got > maxCooldown {
			t.Errorf("WeaponCooldown(%d) = %v exceeds max %v", level, got, maxCooldown)
		}
		if prev < maxCooldown && got <= prev {
			t.Errorf("WeaponCooldown(%d) = %v should increase from %v", level, got, prev)
		}
		if prev == maxCooldown && got != maxCooldown {
			t.Errorf("WeaponCooldown(%d) = %v should stay saturated", level, got)
		}
		prev = got
	}
}

func TestParams(t *testing.T) {
	d := DefaultShooterConfig().Difficulty

	p := d.Params(650)
	if p.Level != 3 {
		t.Errorf("Params(650).Level = %d, expected 3", p.Level)
	}
	if p.SpawnInterval != d.SpawnInterval(3) {
		t.Errorf("Params(650).SpawnInterval = %v, expected %v", p.SpawnInterval, d.SpawnInterval(3))
	}
	if p.WeaponCooldown != d.WeaponCooldown(3) {
		t.Errorf("Params(650).WeaponCooldown = %v, expected %v", p.WeaponCooldown, d.WeaponCooldown(3))
	}
	if p != d.Params(650) {
		t.Error("Params should be idempotent")
	}
}

func TestLevelStart(t *testing.T) {
	d := DifficultyConfig{Thresholds: []int{0, 300, 600}}

	tests := []struct {
		level  int
		want   int
		wantOK bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 300, true},
		{3, 600, true},
		{4, 900, true},
		{5, 0, false},
	}
	for _, tc := range tests {
		got, ok := d.LevelStart(tc.level)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("LevelStart(%d) = %d, %v; expected %d, %v", tc.level, got, ok, tc.want, tc.wantOK)
		}
	}

	full := DefaultShooterConfig().Difficulty
	for level := 1; level <= full.MaxLevel(); level++ {
		start, _ := full.LevelStart(level)
		if got := full.LevelFor(start); got != level {
			t.Errorf("LevelFor(LevelStart(%d)) = %d", level, got)
		}
		if start > 0 && full.LevelFor(start-1) != level-1 {
			t.Errorf("score %d should still be level %d", start-1, level-1)
		}
	}
}
