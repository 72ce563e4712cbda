package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestMeteorFrameIndex(t *testing.T) {
	tests := []struct {
		deg  float64
		want int
	}{
		{0, 0},
		{14.9, 0},
		{15, 1},
		{359.9, 23},
		{360, 0},
		{-15, 23},
		{735, 1},
	}
	for _, tc := range tests {
		if got := meteorFrameIndex(tc.deg); got != tc.want {
			t.Errorf("meteorFrameIndex(%g) = %d, expected %d", tc.deg, got, tc.want)
		}
	}
}

func TestMeteorFrames(t *testing.T) {
	if len(meteorFrames) != meteorSteps {
		t.Fatalf("expected %d frames, got %d", meteorSteps, len(meteorFrames))
	}

	differs := false
	base := meteorFrames[0].Mask()
	for i, f := range meteorFrames {
		m := f.Mask()
		if m.Width() != meteorW || m.Height() != meteorH {
			t.Errorf("frame %d: size %dx%d", i, m.Width(), m.Height())
		}
		if !m.Opaque(meteorW/2, meteorH/2) || !m.Opaque(meteorW/2-1, meteorH/2-1) {
			t.Errorf("frame %d: centre should be solid", i)
		}
		if m.Count() == meteorW*meteorH {
			t.Errorf("frame %d: outline should not fill the whole box", i)
		}
		if !sameMask(m, base) {
			differs = true
		}
	}
	if !differs {
		t.Error("rotation should change the meteor outline")
	}
}

func TestHazardMaskFollowsRotation(t *testing.T) {
	h := newHazard(core.V(40, 10), 0, 0, 90, 0, 5e9, 3)
	h.Update(0.5, StepContext{Bounds: core.NewRect(0, 0, 80, 24)})

	if h.rotation != 45 {
		t.Fatalf("rotation = %g, expected 45", h.rotation)
	}
	if h.Shape().Mask != meteorFrames[3].Mask() {
		t.Error("collision mask should be the mask of the current rotation frame")
	}
	if h.DrawItem().FrameIndex != 3 {
		t.Errorf("draw frame = %d, expected 3", h.DrawItem().FrameIndex)
	}
}

func TestEffectAnimationDoesNotLoop(t *testing.T) {
	e := newEffect(core.V(10, 10), 10)
	ctx := StepContext{}

	for i := 0; i < len(explosionFrames)-1; i++ {
		e.Update(0.1, ctx)
		if !e.Alive() {
			t.Fatalf("effect died early at frame %d", i+1)
		}
	}
	e.Update(0.1, ctx)
	if e.Alive() {
		t.Error("effect should die after the last frame")
	}
}

func TestSpriteDrawSkipsTransparentCells(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.DrawText(0, 0, "#####")
	playerSprite.Draw(s, 0, 0)

	if s.Get(0, 0) != '#' {
		t.Error("transparent sprite cell should not overwrite the background")
	}
	if s.Get(2, 0) != '▲' {
		t.Errorf("expected nose at (2, 0), got %q", s.Get(2, 0))
	}
}

func sameMask(a, b *core.Mask) bool {
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Opaque(x, y) != b.Opaque(x, y) {
				return false
			}
		}
	}
	return true
}
