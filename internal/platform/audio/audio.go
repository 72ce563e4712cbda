// Package audio plays the simulation's sound triggers through the system
// speaker. Playback is best effort: when the device cannot be opened the
// manager stays silent and the game runs unchanged.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink receives sound triggers. Implementations must not block the caller.
type Sink interface {
	Play(s core.Sound)
}

// Silent discards every trigger. Used for SSH sessions and tests.
type Silent struct{}

func (Silent) Play(core.Sound) {}

// SoundManager mixes short synthesized effects onto a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with the given master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds. beep has no way to close the speaker, so
// the device stays open until the process exits.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues the effect for s. Unknown sounds are ignored.
func (sm *SoundManager) Play(s core.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := Effect(s)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(st, sm.volume))
	speaker.Unlock()
}

// Effect builds a finite streamer for a sound trigger, or nil when the
// trigger has no effect.
func Effect(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundShot:
		return shaped(newSweep(1400, 500, waveSquare), 70*time.Millisecond, 0.25)
	case core.SoundExplosion:
		return shaped(newNoise(1), 350*time.Millisecond, 0.5)
	case core.SoundDamage:
		return shaped(newSweep(220, 90, waveSaw), 250*time.Millisecond, 0.45)
	case core.SoundGameOver:
		return beep.Seq(
			shaped(newSweep(440, 440, waveSine), 180*time.Millisecond, 0.4),
			shaped(newSweep(330, 330, waveSine), 180*time.Millisecond, 0.4),
			shaped(newSweep(220, 110, waveSine), 500*time.Millisecond, 0.4),
		)
	}
	return nil
}

// shaped cuts the generator to d and applies a linear fade out scaled by gain.
func shaped(g beep.Streamer, d time.Duration, gain float64) beep.Streamer {
	n := sampleRate.N(d)
	return &fade{streamer: beep.Take(n, g), total: n, gain: gain}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

// sweep is an oscillator gliding linearly from one frequency to another
// over one second. Take bounds it to the effect length.
type sweep struct {
	from, to float64
	wave     wave
	phase    float64
	pos      int
}

func newSweep(from, to float64, w wave) *sweep {
	return &sweep{from: from, to: to, wave: w}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := math.Min(float64(o.pos)/float64(sampleRate), 1)
		freq := o.from + (o.to-o.from)*t

		var v float64
		switch o.wave {
		case waveSquare:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveSaw:
			v = 2 * (o.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// noise is white noise with a seeded source so effects are reproducible.
type noise struct {
	rng *rand.Rand
}

func newNoise(seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed))}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	gain     float64
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := f.gain * (1 - float64(f.pos)/float64(f.total))
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
