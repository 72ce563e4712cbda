package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Projectile is a shot travelling straight up.
type Projectile struct {
	pos   core.Vec2
	speed float64
	alive bool
}

func newProjectile(pos core.Vec2, speed float64) *Projectile {
	return &Projectile{pos: pos, speed: speed, alive: true}
}

func (p *Projectile) Kind() Kind          { return KindProjectile }
func (p *Projectile) Alive() bool         { return p.alive }
func (p *Projectile) Position() core.Vec2 { return p.pos }
func (p *Projectile) destroy()            { p.alive = false }

func (p *Projectile) bounds() core.Rect {
	return core.CenteredRect(p.pos, projectileSprite.Width(), projectileSprite.Height())
}

// Update moves the shot up and kills it once it has fully left the top edge.
func (p *Projectile) Update(dt float64, ctx StepContext) {
	p.pos.Y -= p.speed * dt
	if p.bounds().Bottom() <= ctx.Bounds.Y {
		p.alive = false
	}
}

// Shape returns the projectile's solid collision box.
func (p *Projectile) Shape() RectShape {
	return RectShape{R: p.bounds()}
}

func (p *Projectile) DrawItem() DrawItem {
	return DrawItem{Kind: KindProjectile, Pos: p.pos, Bounds: p.bounds()}
}

// Hazard is a falling, spinning meteor.
type Hazard struct {
	pos        core.Vec2
	dir        core.Vec2 // x is the drift, y is always 1
	speed      float64
	rotation   float64 // degrees
	spin       float64 // degrees per second
	born       time.Duration
	lifetime   time.Duration
	exitMargin float64
	alive      bool
}

func newHazard(pos core.Vec2, drift, speed, spin float64, born, lifetime time.Duration, exitMargin float64) *Hazard {
	return &Hazard{
		pos:        pos,
		dir:        core.V(drift, 1),
		speed:      speed,
		spin:       spin,
		born:       born,
		lifetime:   lifetime,
		exitMargin: exitMargin,
		alive:      true,
	}
}

func (h *Hazard) Kind() Kind          { return KindHazard }
func (h *Hazard) Alive() bool         { return h.alive }
func (h *Hazard) Position() core.Vec2 { return h.pos }
func (h *Hazard) destroy()            { h.alive = false }

// Age returns how long the hazard has existed at time now.
func (h *Hazard) Age(now time.Duration) time.Duration {
	return now - h.born
}

// Update advances position and rotation, then expires the hazard when it is
// too old or has fallen past the bottom margin.
func (h *Hazard) Update(dt float64, ctx StepContext) {
	h.pos.X += h.dir.X * h.speed * cellAspect * dt
	h.pos.Y += h.dir.Y * h.speed * dt
	h.rotation = math.Mod(h.rotation+h.spin*dt, 360)

	if h.Age(ctx.Now) >= h.lifetime {
		h.alive = false
		return
	}
	if float64(h.bounds().Y) > float64(ctx.Bounds.Bottom())+h.exitMargin {
		h.alive = false
	}
}

func (h *Hazard) frame() int {
	return meteorFrameIndex(h.rotation)
}

func (h *Hazard) bounds() core.Rect {
	return core.CenteredRect(h.pos, meteorW, meteorH)
}

// Shape returns the mask of the current rotation frame.
func (h *Hazard) Shape() MaskShape {
	return NewMaskShape(h.pos, meteorFrames[h.frame()])
}

func (h *Hazard) DrawItem() DrawItem {
	return DrawItem{
		Kind:       KindHazard,
		Pos:        h.pos,
		Rotation:   h.rotation,
		FrameIndex: h.frame(),
		Bounds:     h.bounds(),
	}
}

// Effect is a one-shot explosion animation.
type Effect struct {
	pos    core.Vec2
	index  float64
	fps    float64
	frames int
	alive  bool
}

func newEffect(pos core.Vec2, fps float64) *Effect {
	return &Effect{pos: pos, fps: fps, frames: len(explosionFrames), alive: true}
}

func (e *Effect) Kind() Kind          { return KindEffect }
func (e *Effect) Alive() bool         { return e.alive }
func (e *Effect) Position() core.Vec2 { return e.pos }

// Update advances the animation; it never loops.
func (e *Effect) Update(dt float64, _ StepContext) {
	e.index += e.fps * dt
	if e.index >= float64(e.frames) {
		e.alive = false
	}
}

func (e *Effect) frame() int {
	return min(int(e.index), e.frames-1)
}

func (e *Effect) DrawItem() DrawItem {
	s := explosionFrames[e.frame()]
	return DrawItem{
		Kind:       KindEffect,
		Pos:        e.pos,
		FrameIndex: e.frame(),
		Bounds:     core.CenteredRect(e.pos, s.Width(), s.Height()),
	}
}

// Decoration is a static background star.
type Decoration struct {
	pos     core.Vec2
	variant int
}

func (d *Decoration) Kind() Kind                  { return KindDecoration }
func (d *Decoration) Update(float64, StepContext) {}
func (d *Decoration) Alive() bool                 { return true }
func (d *Decoration) Position() core.Vec2         { return d.pos }

func (d *Decoration) DrawItem() DrawItem {
	s := starSprites[d.variant]
	return DrawItem{
		Kind:       KindDecoration,
		Pos:        d.pos,
		FrameIndex: d.variant,
		Bounds:     core.CenteredRect(d.pos, s.Width(), s.Height()),
	}
}
