// Package phase tracks the discrete material state and the transition
// progress that drives visual intensity.
package phase

import (
	"math"

	"github.com/ThomasA12354656/heat/internal/material"
)

// Tag is the discrete material state.
type Tag uint8

const (
	// Solid is the initial state.
	Solid Tag = iota
	// Transitioning is terminal: melted or charred depending on material.
	Transitioning
)

func (t Tag) String() string {
	switch t {
	case Solid:
		return "Solid"
	case Transitioning:
		return "Transitioning"
	default:
		return "unknown"
	}
}

// ProgressRate scales the per-tick temperature delta into progress.
const ProgressRate = 5.0

// Machine is the state machine for one block. The zero value is Solid with
// no progress.
type Machine struct {
	tag      Tag
	label    string
	progress float64
}

// Tag reports the current state.
func (m *Machine) Tag() Tag { return m.tag }

// Transitioned reports whether the threshold has been crossed.
func (m *Machine) Transitioned() bool { return m.tag == Transitioning }

// Label is "Solid" before the transition and the material label after it.
func (m *Machine) Label() string {
	if m.tag == Solid {
		return Solid.String()
	}
	return m.label
}

// Progress returns the accumulated transition progress.
func (m *Machine) Progress() float64 { return m.progress }

// Fraction normalises progress against maxProgress into [0, 1].
func (m *Machine) Fraction(maxProgress float64) float64 {
	if maxProgress <= 0 {
		return 0
	}
	f := m.progress / maxProgress
	return math.Max(0, math.Min(f, 1))
}

// Advance evaluates one tick. temperature is the post-integration value and
// delta the change this tick produced. It reports whether the transition
// fired on this call. Progress accrues only on ticks after the one that
// flipped the state, and only from positive deltas.
func (m *Machine) Advance(temperature, delta float64, spec material.Spec) bool {
	if m.tag == Transitioning {
		if delta > 0 {
			m.progress += delta * ProgressRate
		}
		return false
	}
	if temperature >= spec.MeltPoint {
		m.tag = Transitioning
		m.label = spec.TransitionLabel
		if m.label == "" {
			m.label = Transitioning.String()
		}
		return true
	}
	return false
}

// Reset returns the machine to Solid with zero progress.
func (m *Machine) Reset() { *m = Machine{} }
