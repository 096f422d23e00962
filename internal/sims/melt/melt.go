// Package melt drives the heat-to-melt simulation: one Sim owns the whole
// simulation state and advances it only when a shell calls Tick.
package melt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/particles"
	"github.com/ThomasA12354656/heat/internal/phase"
	"github.com/ThomasA12354656/heat/internal/scene"
	"github.com/ThomasA12354656/heat/internal/thermal"
	pcore "github.com/ThomasA12354656/heat/pkg/core"
)

var (
	// ErrInvalidMass is returned by Reset when the mass input is not a
	// positive finite number.
	ErrInvalidMass = errors.New("melt: mass must be > 0")
	// ErrInvalidTemperature is returned by Reset when the initial or source
	// temperature is NaN or infinite.
	ErrInvalidTemperature = errors.New("melt: temperature must be finite")
	// ErrNegativeElapsed is returned by Tick for negative or NaN elapsed time.
	ErrNegativeElapsed = errors.New("melt: elapsed time must be >= 0")
)

// State is the mutable simulation state. It is replaced wholesale on Reset.
type State struct {
	Temperature float64
	Material    material.Key
	Mass        float64
	HotSource   float64
	Phase       phase.Machine
	Running     bool

	Elapsed float64
	Ticks   int
}

// Sim is the simulation driver.
type Sim struct {
	cfg  Config
	st   State
	spec material.Spec

	clock *core.FrameClock
	fresh bool

	rng *pcore.RNG
	gen *particles.Generator

	events   eventLog
	capNoted bool
}

// New returns a Sim using DefaultConfig.
func New() *Sim {
	s, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig returns a Sim reset from cfg. It fails when cfg does not
// describe a valid starting state.
func NewWithConfig(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg, clock: core.NewFrameClock(cfg.Speed)}
	if _, err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "melt" }

// Size reports the logical scene size.
func (s *Sim) Size() core.Size { return s.cfg.Layout.Size() }

// Config returns the current inputs.
func (s *Sim) Config() Config { return s.cfg }

// Layout returns the scene geometry.
func (s *Sim) Layout() scene.Layout { return s.cfg.Layout }

// Spec returns the material spec of the active run.
func (s *Sim) Spec() material.Spec { return s.spec }

// State returns a copy of the simulation state.
func (s *Sim) State() State { return s.st }

// IsRunning reports whether ticks currently advance the simulation.
func (s *Sim) IsRunning() bool { return s.st.Running }

// Reset reinitialises the state from the current inputs and stops the run.
// On error the previous state is kept.
func (s *Sim) Reset() (core.Snapshot, error) {
	spec, err := material.Lookup(s.cfg.Material)
	if err != nil {
		return s.Snapshot(), err
	}
	if !(s.cfg.Mass > 0) || math.IsInf(s.cfg.Mass, 1) {
		return s.Snapshot(), fmt.Errorf("%w: got %v", ErrInvalidMass, s.cfg.Mass)
	}
	if !finite(s.cfg.InitialTemp) {
		return s.Snapshot(), fmt.Errorf("%w: initial temp %v", ErrInvalidTemperature, s.cfg.InitialTemp)
	}
	if !finite(s.cfg.HotSource) {
		return s.Snapshot(), fmt.Errorf("%w: hot source %v", ErrInvalidTemperature, s.cfg.HotSource)
	}

	s.spec = spec
	s.st = State{
		Temperature: s.cfg.InitialTemp,
		Material:    spec.Key,
		Mass:        s.cfg.Mass,
		HotSource:   s.cfg.HotSource,
	}
	s.rng = pcore.NewRNG(s.cfg.Seed)
	s.gen = particles.NewGenerator(s.cfg.Particles, s.rng)
	s.clock.Reset()
	s.clock.SetSpeed(s.cfg.Speed)
	s.fresh = false
	s.capNoted = false

	s.events.add(0, 0, CategorySim, KeyReset, string(spec.Key), s.st.Temperature)
	return s.Snapshot(), nil
}

// Start arms the simulation. The first tick after Start advances by zero.
func (s *Sim) Start() {
	s.st.Running = true
	s.clock.Reset()
	s.fresh = true
	s.events.add(s.st.Ticks, s.st.Elapsed, CategorySim, KeyStart, "", s.st.Temperature)
}

// Pause stops the run; ticks return the frozen snapshot until Start.
func (s *Sim) Pause() {
	if !s.st.Running {
		return
	}
	s.st.Running = false
	s.events.add(s.st.Ticks, s.st.Elapsed, CategorySim, KeyPause, "", s.st.Temperature)
}

// SetHeating connects or disconnects the heat source. It applies to the
// next tick.
func (s *Sim) SetHeating(on bool) { s.cfg.Heating = on }

// Heating reports whether the heat source is connected.
func (s *Sim) Heating() bool { return s.cfg.Heating }

// Tick advances the simulation by elapsed seconds and returns the new
// snapshot. A stopped sim returns its frozen snapshot.
func (s *Sim) Tick(elapsed float64) (core.Snapshot, error) {
	if math.IsNaN(elapsed) || elapsed < 0 {
		return s.Snapshot(), fmt.Errorf("%w: got %v", ErrNegativeElapsed, elapsed)
	}
	if !s.st.Running {
		return s.Snapshot(), nil
	}
	dt := elapsed
	if s.fresh {
		dt = 0
		s.fresh = false
	}
	s.step(dt)
	return s.Snapshot(), nil
}

// TickAt advances the simulation to the frame timestamp now, deriving the
// elapsed time from the previous frame scaled by the speed input.
func (s *Sim) TickAt(now time.Time) (core.Snapshot, error) {
	if !s.st.Running {
		return s.Snapshot(), nil
	}
	s.clock.SetSpeed(s.cfg.Speed)
	return s.Tick(s.clock.Elapsed(now))
}

func (s *Sim) step(dt float64) {
	if spec, err := material.Lookup(s.st.Material); err == nil {
		s.spec = spec
	}

	var delta float64
	if s.cfg.Heating {
		s.st.Temperature, delta = thermal.Step(s.st.Temperature, s.spec, s.st.Mass, s.st.HotSource, dt)
	}
	s.st.Ticks++
	s.st.Elapsed += dt

	if s.st.Phase.Advance(s.st.Temperature, delta, s.spec) {
		s.events.add(s.st.Ticks, s.st.Elapsed, CategoryState, KeyTransition, s.st.Phase.Label(), s.st.Temperature)
	}

	block := s.cfg.Layout.BlockAt(s.spec, s.fraction())
	s.gen.Update(s.st.Phase.Transitioned(), scene.Emitter(block))
	if !s.capNoted && s.gen.Evicted() > 0 {
		s.capNoted = true
		s.events.add(s.st.Ticks, s.st.Elapsed, CategoryParticles, KeyParticleCap,
			strconv.Itoa(s.gen.Params().Max), float64(s.gen.Len()))
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *Sim) fraction() float64 {
	return s.st.Phase.Fraction(s.spec.MaxProgress)
}

// Snapshot returns an immutable view of the current state.
func (s *Sim) Snapshot() core.Snapshot {
	snap := core.Snapshot{
		Material:     string(s.st.Material),
		Temperature:  s.st.Temperature,
		State:        s.st.Phase.Label(),
		Transitioned: s.st.Phase.Transitioned(),
		Progress:     s.st.Phase.Progress(),
		Fraction:     s.fraction(),
		Running:      s.st.Running,
		Heating:      s.cfg.Heating,
		Elapsed:      s.st.Elapsed,
		Ticks:        s.st.Ticks,
	}
	if s.gen == nil {
		return snap
	}
	live := s.gen.Particles()
	snap.Particles = make([]core.ParticleView, len(live))
	for i, p := range live {
		snap.Particles[i] = core.ParticleView{X: p.Pos.X, Y: p.Pos.Y, Size: p.Size, Alpha: p.Alpha}
	}
	return snap
}

// Events returns every recorded event.
func (s *Sim) Events() []Event { return s.events.since(0) }

// EventsSince returns the events recorded after the first n.
func (s *Sim) EventsSince(n int) []Event { return s.events.since(n) }

// EventCount reports how many events have been recorded.
func (s *Sim) EventCount() int { return len(s.events.entries) }
