// Package particles keeps the short-lived smoke particles emitted by a
// transitioning block.
package particles

import (
	"github.com/ThomasA12354656/heat/internal/core"
)

// Source is the random stream the generator draws from. *rand.Rand and the
// seeded RNG wrapper in pkg/core both satisfy it.
type Source interface {
	Float64() float64
}

// Particle is a single smoke puff. Alpha doubles as remaining lifetime.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Alpha float64
}

// Params tunes spawning and decay. Velocities and decay are per tick.
type Params struct {
	SpawnChance float64
	Jitter      float64 // max horizontal offset from the emitter
	RiseMin     float64
	RiseMax     float64
	DriftMax    float64 // max horizontal speed either way
	SizeMin     float64
	SizeMax     float64
	AlphaMin    float64
	AlphaMax    float64
	Decay       float64

	// Max caps live particles; the oldest is evicted to make room.
	Max int
}

// DefaultParams returns the standard smoke tuning.
func DefaultParams() Params {
	return Params{
		SpawnChance: 0.5,
		Jitter:      40,
		RiseMin:     0.4,
		RiseMax:     1.0,
		DriftMax:    0.25,
		SizeMin:     4,
		SizeMax:     12,
		AlphaMin:    0.35,
		AlphaMax:    0.75,
		Decay:       0.01,
		Max:         200,
	}
}

// normalized clamps params into ranges that keep every live alpha in (0,1].
func (p Params) normalized() Params {
	def := DefaultParams()
	if p.Decay <= 0 {
		p.Decay = def.Decay
	}
	if p.Max <= 0 {
		p.Max = def.Max
	}
	p.AlphaMax = min(max(p.AlphaMax, 0.01), 1)
	p.AlphaMin = min(max(p.AlphaMin, 0.01), p.AlphaMax)
	if p.SizeMax < p.SizeMin {
		p.SizeMax = p.SizeMin
	}
	if p.RiseMax < p.RiseMin {
		p.RiseMax = p.RiseMin
	}
	return p
}

// Generator owns the live particle collection.
type Generator struct {
	p    Params
	rng  Source
	live []Particle

	evicted int
}

// NewGenerator constructs a generator drawing from rng.
func NewGenerator(p Params, rng Source) *Generator {
	p = p.normalized()
	return &Generator{p: p, rng: rng, live: make([]Particle, 0, min(p.Max, 64))}
}

// Params returns the effective tuning.
func (g *Generator) Params() Params { return g.p }

// Len reports the number of live particles.
func (g *Generator) Len() int { return len(g.live) }

// Evicted counts particles dropped by the cap since the last Clear.
func (g *Generator) Evicted() int { return g.evicted }

// Clear removes every particle.
func (g *Generator) Clear() {
	g.live = g.live[:0]
	g.evicted = 0
}

// Particles returns a copy of the live collection, oldest first.
func (g *Generator) Particles() []Particle {
	return append([]Particle(nil), g.live...)
}

// Update runs one tick: every live particle moves and fades, spent ones are
// dropped, then a new particle may be spawned at origin when emit is set.
// It reports whether a particle was spawned.
func (g *Generator) Update(emit bool, origin core.Vec2) bool {
	kept := g.live[:0]
	for _, pt := range g.live {
		pt.Pos.X += pt.Vel.X
		pt.Pos.Y += pt.Vel.Y
		pt.Alpha -= g.p.Decay
		if pt.Alpha <= 0 {
			continue
		}
		kept = append(kept, pt)
	}
	g.live = kept

	if !emit || g.rng == nil || g.rng.Float64() >= g.p.SpawnChance {
		return false
	}
	if len(g.live) >= g.p.Max {
		n := copy(g.live, g.live[1:])
		g.live = g.live[:n]
		g.evicted++
	}
	g.live = append(g.live, Particle{
		Pos: core.Vec2{
			X: origin.X + g.between(-g.p.Jitter, g.p.Jitter),
			Y: origin.Y,
		},
		Vel: core.Vec2{
			X: g.between(-g.p.DriftMax, g.p.DriftMax),
			Y: -g.between(g.p.RiseMin, g.p.RiseMax),
		},
		Size:  g.between(g.p.SizeMin, g.p.SizeMax),
		Alpha: g.between(g.p.AlphaMin, g.p.AlphaMax),
	})
	return true
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}
