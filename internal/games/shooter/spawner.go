package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Spawner creates hazards on a difficulty-driven timer and lays out the
// background once per run.
type Spawner struct {
	rng       *rand.Rand
	cfg       config.HazardConfig
	lastSpawn time.Duration
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.HazardConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset restarts the spawn timer for a new run. The RNG keeps its sequence.
func (s *Spawner) Reset() {
	s.lastSpawn = 0
}

// Update returns a new hazard when the spawn interval for the current level
// has elapsed since the previous spawn, or nil.
func (s *Spawner) Update(now time.Duration, p config.Params, area core.Rect) *Hazard {
	if now-s.lastSpawn < p.SpawnInterval {
		return nil
	}
	s.lastSpawn = now

	// Keep the full width on screen
	halfW := float64(meteorW) / 2
	x := s.uniform(float64(area.X)+halfW, float64(area.Right())-halfW)

	// Start strictly above the visible area
	offset := s.uniform(s.cfg.SpawnOffsetMin, s.cfg.SpawnOffsetMax)
	y := float64(area.Y) - float64(meteorH)/2 - offset

	drift := s.uniform(-s.cfg.Drift, s.cfg.Drift)
	spin := s.uniform(s.cfg.MinSpin, s.cfg.MaxSpin)
	speed := s.cfg.BaseSpeed * p.SpeedMultiplier
	lifetime := time.Duration(s.cfg.MaxLifetimeMs) * time.Millisecond

	return newHazard(core.V(x, y), drift, speed, spin, now, lifetime, s.cfg.ExitMargin)
}

// Decorations places n stars uniformly across the play area.
func (s *Spawner) Decorations(n int, area core.Rect) []*Decoration {
	stars := make([]*Decoration, 0, n)
	for range n {
		stars = append(stars, &Decoration{
			pos: core.V(
				s.uniform(float64(area.X), float64(area.Right())),
				s.uniform(float64(area.Y), float64(area.Bottom())),
			),
			variant: s.rng.Intn(len(starSprites)),
		})
	}
	return stars
}

// uniform samples [lo, hi). An empty range yields its midpoint.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}
