package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// cellAspect is how many columns make up the same physical length as one row.
// Horizontal velocities are multiplied by it.
const cellAspect = 2.0

// Kind is the closed set of entity categories.
type Kind int

const (
	KindDecoration Kind = iota
	KindHazard
	KindProjectile
	KindEffect
	KindPlayer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDecoration:
		return "decoration"
	case KindHazard:
		return "hazard"
	case KindProjectile:
		return "projectile"
	case KindEffect:
		return "effect"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// StepContext carries the per-step values every entity may read during Update.
type StepContext struct {
	Now    time.Duration // simulation time since the run started
	Level  int
	Bounds core.Rect // play area
}

// Entity is the capability set shared by every simulated object.
// Update mutates only the entity itself; dead entities are pruned by the game
// at the end of the step and never updated again.
type Entity interface {
	Kind() Kind
	Update(dt float64, ctx StepContext)
	Alive() bool
	Position() core.Vec2
	DrawItem() DrawItem
}

// prune drops dead entities in place, preserving order.
func prune[T Entity](items []T) []T {
	live := items[:0]
	for _, e := range items {
		if e.Alive() {
			live = append(live, e)
		}
	}
	clear(items[len(live):])
	return live
}
