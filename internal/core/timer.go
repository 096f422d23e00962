package core

import "time"

// FrameClock converts frame timestamps into simulated elapsed seconds. The
// first reading after Reset is always zero.
type FrameClock struct {
	last  time.Time
	speed float64
}

// NewFrameClock constructs a clock running at the given speed multiplier.
func NewFrameClock(speed float64) *FrameClock {
	fc := &FrameClock{}
	fc.SetSpeed(speed)
	return fc
}

// SetSpeed changes the time multiplier. Non-positive values fall back to 1.
func (f *FrameClock) SetSpeed(speed float64) {
	if speed <= 0 {
		speed = 1
	}
	f.speed = speed
}

// Speed reports the active time multiplier.
func (f *FrameClock) Speed() float64 { return f.speed }

// Reset drops the anchor so the next Elapsed call returns zero.
func (f *FrameClock) Reset() { f.last = time.Time{} }

// Elapsed returns scaled seconds since the previous reading and moves the
// anchor to now. A timestamp earlier than the anchor yields a negative value
// so callers can reject it.
func (f *FrameClock) Elapsed(now time.Time) float64 {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	return delta.Seconds() * f.speed
}
