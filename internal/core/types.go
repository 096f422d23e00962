package core

import "time"

// Size describes the dimensions of a simulation scene in logical pixels.
type Size struct {
	W int
	H int
}

// Vec2 is a 2D point or velocity in scene coordinates. Y grows downward.
type Vec2 struct {
	X float64
	Y float64
}

// ParticleView is the read-only projection of a live effect particle.
type ParticleView struct {
	X     float64
	Y     float64
	Size  float64
	Alpha float64
}

// Snapshot is an immutable view of the simulation after a tick. The
// Particles slice is owned by the snapshot and never aliased by the sim.
type Snapshot struct {
	Material     string
	Temperature  float64
	State        string
	Transitioned bool
	Progress     float64
	Fraction     float64
	Running      bool
	Heating      bool
	Elapsed      float64
	Ticks        int
	Particles    []ParticleView
}

// Sim defines the contract a rendering shell drives once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset() (Snapshot, error)
	Start()
	Pause()
	Tick(elapsed float64) (Snapshot, error)
	TickAt(now time.Time) (Snapshot, error)
	IsRunning() bool
	Snapshot() Snapshot
}
