package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Outcome is the result of one collision pass. It is pure data: the game
// applies it, the collision pass itself never mutates entities.
type Outcome struct {
	Damage           int         // one event per hazard touching the player
	DestroyedHazards []int       // indices into the hazard slice, ascending per category
	SpentProjectiles []int       // indices into the projectile slice
	ScoreDelta       int         // destruction points earned
	Effects          []core.Vec2 // explosion positions, one per projectile kill
}

// Empty reports whether nothing collided.
func (o Outcome) Empty() bool {
	return o.Damage == 0 && len(o.DestroyedHazards) == 0 && len(o.SpentProjectiles) == 0
}

// Resolve runs the collision pass over the live entities.
//
// Player against hazards comes first: every touching hazard is destroyed and
// counts as a separate damage event. Then each projectile, in firing order,
// destroys the first touching hazard in spawn order that is not already
// destroyed this pass. A projectile takes out at most one hazard.
func Resolve(player *Player, hazards []*Hazard, projectiles []*Projectile, points int) Outcome {
	var out Outcome
	if len(hazards) == 0 {
		return out
	}

	shapes := make([]MaskShape, len(hazards))
	destroyed := make([]bool, len(hazards))
	for i, h := range hazards {
		if h.Alive() {
			shapes[i] = h.Shape()
		}
	}

	if player != nil && player.Alive() {
		ps := player.Shape()
		for i, h := range hazards {
			if !h.Alive() {
				continue
			}
			if Intersects(ps, shapes[i]) {
				destroyed[i] = true
				out.DestroyedHazards = append(out.DestroyedHazards, i)
				out.Damage++
			}
		}
	}

	for j, p := range projectiles {
		if !p.Alive() {
			continue
		}
		ps := p.Shape()
		for i, h := range hazards {
			if !h.Alive() || destroyed[i] {
				continue
			}
			if Intersects(ps, shapes[i]) {
				destroyed[i] = true
				out.DestroyedHazards = append(out.DestroyedHazards, i)
				out.SpentProjectiles = append(out.SpentProjectiles, j)
				out.ScoreDelta += points
				out.Effects = append(out.Effects, p.Position())
				break
			}
		}
	}

	return out
}
