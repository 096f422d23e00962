// Package audio plays a looping sizzle whose loudness follows the
// transition fraction.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	pcore "github.com/ThomasA12354656/heat/pkg/core"
)

// Sizzle is an endless low-passed noise streamer. Its intensity can be
// changed from another goroutine while the speaker pulls samples.
type Sizzle struct {
	mu        sync.Mutex
	intensity float64

	rng   *pcore.RNG
	prev  float64
	alpha float64
}

// NewSizzle builds a sizzle for the given sample rate. cutoff is the
// low-pass corner in Hz.
func NewSizzle(sr beep.SampleRate, cutoff float64, seed int64) *Sizzle {
	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * cutoff)
	return &Sizzle{
		rng:   pcore.NewRNG(seed),
		alpha: dt / (rc + dt),
	}
}

// SetIntensity sets the amplitude, clamped to [0,1].
func (s *Sizzle) SetIntensity(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	v = min(max(v, 0), 1)
	s.mu.Lock()
	s.intensity = v
	s.mu.Unlock()
}

// Intensity reports the current amplitude.
func (s *Sizzle) Intensity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intensity
}

func (s *Sizzle) Stream(samples [][2]float64) (n int, ok bool) {
	gain := s.Intensity() * 0.3
	for i := range samples {
		noise := s.rng.Float64()*2 - 1
		s.prev += s.alpha * (noise - s.prev)
		// Occasional pops read as crackle.
		pop := 0.0
		if s.rng.Chance(0.0005) {
			pop = s.rng.Range(-1, 1)
		}
		v := gain * (s.prev + 0.5*pop)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *Sizzle) Err() error { return nil }
