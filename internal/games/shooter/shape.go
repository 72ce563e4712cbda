package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// CollisionShape is the footprint of an entity on the cell grid.
// Bounds gives the coarse box; OpaqueAt answers the exact per-cell test in
// world coordinates.
type CollisionShape interface {
	Bounds() core.Rect
	OpaqueAt(x, y int) bool
}

// RectShape is a solid axis-aligned box.
type RectShape struct {
	R core.Rect
}

// Bounds returns the box.
func (s RectShape) Bounds() core.Rect { return s.R }

// OpaqueAt reports whether the cell lies inside the box.
func (s RectShape) OpaqueAt(x, y int) bool { return s.R.Contains(x, y) }

// MaskShape is an opacity mask placed at the top-left of a box.
type MaskShape struct {
	R    core.Rect
	Mask *core.Mask
}

// NewMaskShape places a sprite's mask so that it is centred on pos.
func NewMaskShape(pos core.Vec2, s *Sprite) MaskShape {
	return MaskShape{
		R:    core.CenteredRect(pos, s.Width(), s.Height()),
		Mask: s.Mask(),
	}
}

// Bounds returns the box the mask occupies.
func (s MaskShape) Bounds() core.Rect { return s.R }

// OpaqueAt reports whether the mask is opaque at the world cell.
func (s MaskShape) OpaqueAt(x, y int) bool { return s.Mask.Opaque(x-s.R.X, y-s.R.Y) }

// Intersects reports whether two shapes share at least one opaque cell.
// Disjoint bounds are rejected first; the exact test only walks the overlap.
func Intersects(a, b CollisionShape) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if !ab.Intersects(bb) {
		return false
	}

	if am, ok := a.(MaskShape); ok {
		if bm, ok := b.(MaskShape); ok {
			return am.Mask.Overlaps(bm.Mask, bm.R.X-am.R.X, bm.R.Y-am.R.Y)
		}
	}

	area := ab.Intersection(bb)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if a.OpaqueAt(x, y) && b.OpaqueAt(x, y) {
				return true
			}
		}
	}
	return false
}
