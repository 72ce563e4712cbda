package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship controlled by the input adapter.
// Lives only decrease; alive flips to false once, when lives reach zero.
type Player struct {
	pos      core.Vec2
	dir      core.Vec2
	speed    float64
	canShoot bool
	cooldown time.Duration
	lastShot time.Duration
	lives    int
	maxLives int
	alive    bool
}

func newPlayer(pos core.Vec2, speed float64, lives int, cooldown time.Duration) *Player {
	return &Player{
		pos:      pos,
		speed:    speed,
		canShoot: true,
		cooldown: cooldown,
		lives:    lives,
		maxLives: lives,
		alive:    true,
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Update implements Entity. Player motion is input driven and happens in Steer.
func (p *Player) Update(float64, StepContext) {}

// Alive implements Entity.
func (p *Player) Alive() bool { return p.alive }

// Position implements Entity.
func (p *Player) Position() core.Vec2 { return p.pos }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// DrawItem implements Entity.
func (p *Player) DrawItem() DrawItem {
	return DrawItem{Kind: KindPlayer, Pos: p.pos, Bounds: p.bounds()}
}

func (p *Player) bounds() core.Rect {
	return core.CenteredRect(p.pos, playerSprite.Width(), playerSprite.Height())
}

// Shape returns the player's collision mask at its current position.
func (p *Player) Shape() MaskShape {
	return NewMaskShape(p.pos, playerSprite)
}

// Steer moves the player along the requested direction and keeps the whole
// sprite inside the play area.
func (p *Player) Steer(move core.Vec2, dt float64, area core.Rect) {
	if move.Len() > 1 {
		move = move.Normalize()
	}
	p.dir = move
	p.pos.X += move.X * p.speed * cellAspect * dt
	p.pos.Y += move.Y * p.speed * dt

	halfW := float64(playerSprite.Width()) / 2
	halfH := float64(playerSprite.Height()) / 2
	p.pos.X = clampAxis(p.pos.X, float64(area.X)+halfW, float64(area.Right())-halfW)
	p.pos.Y = clampAxis(p.pos.Y, float64(area.Y)+halfH, float64(area.Bottom())-halfH)
}

// clampAxis clamps v to [lo, hi], collapsing to the midpoint when the range is empty.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return core.ClampF(v, lo, hi)
}

// SetCooldown updates the weapon cooldown for the current level.
func (p *Player) SetCooldown(d time.Duration) {
	p.cooldown = d
}

// TryFire reports whether a shot leaves the ship this step.
// The weapon re-arms once the cooldown has elapsed since the last shot.
func (p *Player) TryFire(now time.Duration, requested bool) bool {
	if !p.canShoot && now-p.lastShot >= p.cooldown {
		p.canShoot = true
	}
	if !requested || !p.canShoot || !p.alive {
		return false
	}
	p.canShoot = false
	p.lastShot = now
	return true
}

// Muzzle returns where a new projectile is centred: just above the nose.
func (p *Player) Muzzle() core.Vec2 {
	top := p.pos.Y - float64(playerSprite.Height())/2
	return core.V(p.pos.X, top-float64(projectileSprite.Height())/2)
}

// TakeDamage removes one life and reports whether a life was lost.
// Lives never go below zero; the hit that empties them kills the player.
func (p *Player) TakeDamage() bool {
	if p.lives <= 0 {
		return false
	}
	p.lives--
	if p.lives == 0 {
		p.alive = false
	}
	return true
}
