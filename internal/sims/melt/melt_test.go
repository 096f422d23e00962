package melt

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/thermal"
)

const frame = 1.0 / 60

func newSim(t *testing.T, mutate func(*Config)) *Sim {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return s
}

// runUntilTransition ticks at dt until the state flips, returning the
// simulated seconds it took.
func runUntilTransition(t *testing.T, s *Sim, dt float64, limit int) float64 {
	t.Helper()
	s.Start()
	if _, err := s.Tick(0); err != nil {
		t.Fatalf("arming tick: %v", err)
	}
	for i := 0; i < limit; i++ {
		snap, err := s.Tick(dt)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if snap.Transitioned {
			return snap.Elapsed
		}
	}
	t.Fatalf("%s did not transition within %d ticks", s.Spec().Key, limit)
	return 0
}

func TestScenarioIceMeltsTowardSource(t *testing.T) {
	s := newSim(t, func(c *Config) {
		c.Material = material.Ice
		c.InitialTemp = -10
		c.Mass = 1
		c.HotSource = 1000
	})
	s.Start()
	prev := s.Snapshot().Temperature
	var snap = s.Snapshot()
	for i := 0; i < 60*30; i++ {
		var err error
		snap, err = s.Tick(frame)
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
		if snap.Temperature < prev {
			t.Fatalf("temperature fell from %v to %v", prev, snap.Temperature)
		}
		prev = snap.Temperature
	}
	if !snap.Transitioned || snap.State != "Melted" {
		t.Fatalf("ice should have melted after 30s, state=%q temp=%v", snap.State, snap.Temperature)
	}
	if snap.Temperature <= 0 || snap.Temperature > 1000 {
		t.Fatalf("temperature %v should be between melt point and source", snap.Temperature)
	}
	if snap.Progress <= 0 {
		t.Fatalf("progress should accumulate after melting, got %v", snap.Progress)
	}
}

func TestScenarioTransitionOrderMatchesClosedForm(t *testing.T) {
	const dt = 0.05
	times := map[material.Key]float64{}
	for _, key := range material.Keys() {
		s := newSim(t, func(c *Config) {
			c.Material = key
			c.InitialTemp = 20
			if key == material.Ice {
				c.InitialTemp = -10
			}
			c.Mass = 1
			c.HotSource = 1000
			c.Particles.SpawnChance = 0
		})
		times[key] = runUntilTransition(t, s, dt, 200000)

		spec := s.Spec()
		want, ok := thermal.TimeToReach(spec, 1, s.Config().InitialTemp, spec.MeltPoint, 1000)
		if !ok {
			t.Fatalf("%s: closed form says unreachable", key)
		}
		if math.Abs(times[key]-want) > 2*dt+want*0.01 {
			t.Fatalf("%s: simulated %vs vs closed form %vs", key, times[key], want)
		}
	}
	if !(times[material.Ice] < times[material.Metal]) {
		t.Fatalf("metal (%vs) should transition slower than ice (%vs)", times[material.Metal], times[material.Ice])
	}
	if !(times[material.Metal] < times[material.Wood]) {
		t.Fatalf("wood (%vs) should char slower than metal melts (%vs)", times[material.Wood], times[material.Metal])
	}
}

func TestScenarioResetRestoresInitialState(t *testing.T) {
	s := newSim(t, nil)
	runUntilTransition(t, s, 0.5, 1000)
	for i := 0; i < 200; i++ {
		s.Tick(frame)
	}
	if len(s.Snapshot().Particles) == 0 {
		t.Fatal("expected smoke before reset")
	}

	s.SetFloatParameter("initial_temp", -25)
	snap, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if snap.State != "Solid" || snap.Transitioned {
		t.Fatalf("state after reset = %q", snap.State)
	}
	if snap.Progress != 0 || snap.Fraction != 0 {
		t.Fatalf("progress after reset = %v / %v", snap.Progress, snap.Fraction)
	}
	if len(snap.Particles) != 0 {
		t.Fatalf("particles after reset = %d", len(snap.Particles))
	}
	if snap.Temperature != -25 {
		t.Fatalf("temperature after reset = %v, want freshly read -25", snap.Temperature)
	}
	if snap.Running || s.IsRunning() {
		t.Fatal("reset must stop the run")
	}
}

func TestResetIdempotent(t *testing.T) {
	s := newSim(t, nil)
	runUntilTransition(t, s, 0.5, 1000)
	a, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	b, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("reset snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestResetReplaysParticlesDeterministically(t *testing.T) {
	s := newSim(t, func(c *Config) { c.InitialTemp = 5 })
	run := func() []float64 {
		if _, err := s.Reset(); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		s.Start()
		var snap = s.Snapshot()
		for i := 0; i < 120; i++ {
			snap, _ = s.Tick(frame)
		}
		var xs []float64
		for _, p := range snap.Particles {
			xs = append(xs, p.X, p.Y, p.Alpha)
		}
		return xs
	}
	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and inputs must replay the same smoke")
	}
}

func TestFirstTickAfterStartIsZero(t *testing.T) {
	s := newSim(t, nil)
	before := s.Snapshot().Temperature
	s.Start()
	snap, err := s.Tick(5)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if snap.Temperature != before || snap.Elapsed != 0 {
		t.Fatalf("first tick after start moved state: temp %v elapsed %v", snap.Temperature, snap.Elapsed)
	}
	if snap.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", snap.Ticks)
	}
	snap, _ = s.Tick(5)
	if snap.Temperature == before {
		t.Fatal("second tick should heat the block")
	}
}

func TestStoppedSimIsFrozen(t *testing.T) {
	s := newSim(t, nil)
	frozen := s.Snapshot()
	snap, err := s.Tick(1)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !reflect.DeepEqual(snap, frozen) {
		t.Fatal("tick before start must not mutate state")
	}

	s.Start()
	s.Tick(0)
	s.Tick(1)
	s.Pause()
	paused := s.Snapshot()
	snap, _ = s.Tick(1)
	if !reflect.DeepEqual(snap, paused) {
		t.Fatal("tick after pause must not mutate state")
	}
	if s.IsRunning() {
		t.Fatal("pause must clear running")
	}
}

func TestNegativeElapsedRejected(t *testing.T) {
	s := newSim(t, nil)
	s.Start()
	s.Tick(0)
	s.Tick(1)
	before := s.State()
	for _, dt := range []float64{-0.1, math.NaN()} {
		_, err := s.Tick(dt)
		if !errors.Is(err, ErrNegativeElapsed) {
			t.Fatalf("dt=%v: expected ErrNegativeElapsed, got %v", dt, err)
		}
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Fatal("rejected tick must leave state untouched")
	}
}

func TestResetValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Material = "plasma"
	if _, err := NewWithConfig(cfg); !errors.Is(err, material.ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Mass = 0
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}

	s := newSim(t, nil)
	s.Start()
	s.Tick(0)
	s.Tick(1)
	before := s.State()
	s.cfg.Mass = -1
	if _, err := s.Reset(); !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Fatal("failed reset must keep the previous state")
	}
}

func TestResetRejectsNonFiniteInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"nan initial", func(c *Config) { c.InitialTemp = math.NaN() }, ErrInvalidTemperature},
		{"inf initial", func(c *Config) { c.InitialTemp = math.Inf(-1) }, ErrInvalidTemperature},
		{"nan source", func(c *Config) { c.HotSource = math.NaN() }, ErrInvalidTemperature},
		{"inf source", func(c *Config) { c.HotSource = math.Inf(1) }, ErrInvalidTemperature},
		{"inf mass", func(c *Config) { c.Mass = math.Inf(1) }, ErrInvalidMass},
		{"nan mass", func(c *Config) { c.Mass = math.NaN() }, ErrInvalidMass},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := NewWithConfig(cfg); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	s := newSim(t, nil)
	before := s.State()
	s.cfg.InitialTemp = math.NaN()
	if _, err := s.Reset(); !errors.Is(err, ErrInvalidTemperature) {
		t.Fatalf("expected ErrInvalidTemperature, got %v", err)
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Fatal("failed reset must keep the previous state")
	}
}

func TestSetFloatParameterRefusesNonFinite(t *testing.T) {
	s := newSim(t, nil)
	for _, key := range []string{"initial_temp", "hot_source", "mass", "speed"} {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if s.SetFloatParameter(key, v) {
				t.Fatalf("%s accepted %v", key, v)
			}
		}
	}
	if cfg := s.Config(); cfg != DefaultConfig() {
		t.Fatalf("refused values changed inputs: %+v", cfg)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	for _, key := range material.Keys() {
		s := newSim(t, func(c *Config) {
			c.Material = key
			c.InitialTemp = 20
			c.HotSource = 2500
			c.Speed = 1
		})
		s.Start()
		lastProgress := 0.0
		transitioned := false
		for i := 0; i < 4000; i++ {
			snap, err := s.Tick(0.5)
			if err != nil {
				t.Fatalf("%s tick %d: %v", key, i, err)
			}
			if transitioned && !snap.Transitioned {
				t.Fatalf("%s: state returned to solid", key)
			}
			transitioned = snap.Transitioned
			if !snap.Transitioned && snap.Progress != 0 {
				t.Fatalf("%s: progress %v while solid", key, snap.Progress)
			}
			if !snap.Transitioned && len(snap.Particles) != 0 {
				t.Fatalf("%s: smoke while solid", key)
			}
			if snap.Progress < lastProgress {
				t.Fatalf("%s: progress decreased %v -> %v", key, lastProgress, snap.Progress)
			}
			lastProgress = snap.Progress
			if snap.Fraction < 0 || snap.Fraction > 1 {
				t.Fatalf("%s: fraction %v out of [0,1]", key, snap.Fraction)
			}
			for _, p := range snap.Particles {
				if p.Alpha <= 0 || p.Alpha > 1 {
					t.Fatalf("%s: particle alpha %v", key, p.Alpha)
				}
			}
		}
	}
}

func TestTransitionEventOnce(t *testing.T) {
	s := newSim(t, func(c *Config) { c.InitialTemp = 0 })
	s.Start()
	for i := 0; i < 100; i++ {
		s.Tick(frame)
	}
	got := Filter(s.Events(), CategoryState, KeyTransition)
	if len(got) != 1 {
		t.Fatalf("transition events = %d, want 1", len(got))
	}
	if got[0].Tick != 1 || got[0].Value != "Melted" {
		t.Fatalf("melt point equal to initial temperature must fire on tick 1: %+v", got[0])
	}
	if n := len(s.EventsSince(s.EventCount())); n != 0 {
		t.Fatalf("EventsSince(count) = %d entries", n)
	}
}

func TestParticleCapEvent(t *testing.T) {
	s := newSim(t, func(c *Config) {
		c.InitialTemp = 10
		c.Particles.SpawnChance = 1
		c.Particles.Max = 10
	})
	s.Start()
	for i := 0; i < 60; i++ {
		snap, _ := s.Tick(frame)
		if len(snap.Particles) > 10 {
			t.Fatalf("cap exceeded: %d", len(snap.Particles))
		}
	}
	if n := len(Filter(s.Events(), CategoryParticles, KeyParticleCap)); n != 1 {
		t.Fatalf("particle cap events = %d, want 1", n)
	}
}

func TestHeatingToggle(t *testing.T) {
	s := newSim(t, nil)
	s.SetHeating(false)
	s.Start()
	for i := 0; i < 100; i++ {
		s.Tick(frame)
	}
	snap := s.Snapshot()
	if snap.Temperature != -10 || snap.Heating {
		t.Fatalf("disconnected source changed temperature to %v", snap.Temperature)
	}
	s.SetHeating(true)
	snap, _ = s.Tick(frame)
	if snap.Temperature <= -10 {
		t.Fatal("reconnected source should heat")
	}
}

func TestTickAtUsesFrameClock(t *testing.T) {
	s := newSim(t, func(c *Config) { c.Speed = 10 })
	base := time.Unix(1000, 0)

	snap, err := s.TickAt(base)
	if err != nil || snap.Ticks != 0 {
		t.Fatalf("TickAt before start must be frozen: %v ticks=%d", err, snap.Ticks)
	}
	s.Start()
	snap, _ = s.TickAt(base)
	if snap.Elapsed != 0 {
		t.Fatalf("first frame must be zero, got %v", snap.Elapsed)
	}
	snap, _ = s.TickAt(base.Add(500 * time.Millisecond))
	if math.Abs(snap.Elapsed-5) > 1e-9 {
		t.Fatalf("elapsed = %v, want 5 (0.5s at speed 10)", snap.Elapsed)
	}
	if _, err := s.TickAt(base); !errors.Is(err, ErrNegativeElapsed) {
		t.Fatalf("clock going backwards must be rejected, got %v", err)
	}
}

func TestParametersAndSetters(t *testing.T) {
	s := newSim(t, nil)
	if !s.SetChoiceParameter("material", "metal") {
		t.Fatal("metal must be selectable")
	}
	if s.SetChoiceParameter("material", "plasma") {
		t.Fatal("unknown material must be refused")
	}
	if s.SetFloatParameter("mass", 0) {
		t.Fatal("zero mass must be refused")
	}
	if !s.SetFloatParameter("mass", 2.5) || !s.SetIntParameter("max_particles", 50) {
		t.Fatal("valid inputs must be accepted")
	}
	if s.SetFloatParameter("unknown", 1) || s.SetIntParameter("unknown", 1) || s.SetChoiceParameter("mass", "ice") {
		t.Fatal("unknown keys must be refused")
	}

	params := s.Parameters()
	if p, ok := params.Lookup("material"); !ok || p.Value != "metal" {
		t.Fatalf("material parameter = %+v", p)
	}
	if p, ok := params.Lookup("mass"); !ok || p.Value != "2.5" {
		t.Fatalf("mass parameter = %+v", p)
	}
	if s.Snapshot().Material != "ice" {
		t.Fatal("inputs must not apply before reset")
	}
	snap, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if snap.Material != "metal" || s.State().Mass != 2.5 {
		t.Fatalf("reset did not apply inputs: %+v", s.State())
	}
	if len(s.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
}
