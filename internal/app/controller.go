package app

import (
	"time"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/logging"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/sims/melt"
)

// Speed bounds for the faster/slower commands.
const (
	MinSpeed = 1.0
	MaxSpeed = 500.0
)

// Controller applies user commands to a simulation and forwards its events
// to the log. Both shells drive the sim through it.
type Controller struct {
	sim  *melt.Sim
	log  *logging.Logger
	seen int
}

// NewController wraps sim. A nil logger discards output.
func NewController(sim *melt.Sim, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	c := &Controller{sim: sim, log: log}
	c.drain()
	return c
}

// Sim returns the driven simulation.
func (c *Controller) Sim() *melt.Sim { return c.sim }

// Start arms the run.
func (c *Controller) Start() {
	c.sim.Start()
	c.drain()
}

// TogglePause pauses a running sim and resumes a paused one.
func (c *Controller) TogglePause() {
	if c.sim.IsRunning() {
		c.sim.Pause()
	} else {
		c.sim.Start()
	}
	c.drain()
}

// Reset reinitialises the sim from its inputs.
func (c *Controller) Reset() error {
	_, err := c.sim.Reset()
	if err != nil {
		c.log.Errorf("reset: %v", err)
	}
	c.drain()
	return err
}

// ToggleHeating connects or disconnects the heat source.
func (c *Controller) ToggleHeating() {
	on := !c.sim.Heating()
	c.sim.SetHeating(on)
	c.log.Infof("heat source on=%v", on)
}

// NextMaterial selects the next catalog material and resets onto it.
func (c *Controller) NextMaterial() error {
	next := core.CycleOption(material.Names(), string(c.sim.Config().Material), 1)
	c.sim.SetChoiceParameter("material", next)
	return c.Reset()
}

// ScaleSpeed multiplies the speed input, clamped to [MinSpeed, MaxSpeed].
func (c *Controller) ScaleSpeed(factor float64) float64 {
	speed := c.sim.Config().Speed * factor
	speed = min(max(speed, MinSpeed), MaxSpeed)
	c.sim.SetFloatParameter("speed", speed)
	c.log.Debugf("speed x%g", speed)
	return c.sim.Config().Speed
}

// Frame advances the sim to the frame timestamp now.
func (c *Controller) Frame(now time.Time) (core.Snapshot, error) {
	snap, err := c.sim.TickAt(now)
	if err != nil {
		c.log.Warnf("tick: %v", err)
	}
	c.drain()
	return snap, err
}

func (c *Controller) drain() {
	for _, e := range c.sim.EventsSince(c.seen) {
		if e.Category == melt.CategorySim {
			c.log.Debugf("%s", e)
		} else {
			c.log.Infof("%s", e)
		}
	}
	c.seen = c.sim.EventCount()
}
