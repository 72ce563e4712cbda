package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestEffectsAreFinite(t *testing.T) {
	for _, s := range core.Sounds {
		st := Effect(s)
		if st == nil {
			t.Errorf("%s: no effect", s)
			continue
		}

		buf := make([][2]float64, 512)
		total := 0
		for range 1000 {
			n, ok := st.Stream(buf)
			total += n
			for _, smp := range buf[:n] {
				if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1 {
					t.Fatalf("%s: sample %g out of range", s, smp[0])
				}
			}
			if !ok {
				break
			}
		}
		if total == 0 {
			t.Errorf("%s: produced no samples", s)
		}
		if total > sampleRate.N(2*time.Second) {
			t.Errorf("%s: effect did not end (%d samples)", s, total)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	if Effect(core.Sound("nope")) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Play(core.SoundShot)
	sm.Cleanup()
}

func TestSinkImplementations(t *testing.T) {
	var _ Sink = Silent{}
	var _ Sink = NewSoundManager(1)
}
