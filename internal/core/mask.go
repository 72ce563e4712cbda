package core

// Mask is a per-cell opacity bitmap derived from a visual.
// It is the terminal equivalent of a pixel-opacity mask: a cell is opaque
// when the visual draws something there.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates a fully transparent mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{
		w:    w,
		h:    h,
		bits: make([]bool, w*h),
	}
}

// MaskFromRunes builds a mask where every non-space rune is opaque.
func MaskFromRunes(rows [][]rune) *Mask {
	h := len(rows)
	w := 0
	for _, row := range rows {
		w = Max(w, len(row))
	}

	m := NewMask(w, h)
	for y, row := range rows {
		for x, r := range row {
			if r != ' ' && r != 0 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in cells.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in cells.
func (m *Mask) Height() int {
	return m.h
}

// Set marks the cell at (x, y) as opaque or transparent.
// Out-of-bounds coordinates are silently ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// Opaque reports whether the cell at (x, y) is opaque.
// Out-of-bounds cells are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps reports whether any opaque cell of m coincides with an opaque cell
// of other when other's top-left corner is placed at (dx, dy) relative to m.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	area := NewRect(0, 0, m.w, m.h).Intersection(NewRect(dx, dy, other.w, other.h))
	if area.Empty() {
		return false
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if m.Opaque(x, y) && other.Opaque(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
