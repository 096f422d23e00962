package ui

import (
	"fmt"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/sims/melt"
	"github.com/ThomasA12354656/heat/internal/thermal"
)

// debugEvents is how many recent events the overlay lists.
const debugEvents = 4

// debugSource is what the overlay needs beyond core.Sim.
type debugSource interface {
	Spec() material.Spec
	State() melt.State
	Config() melt.Config
	EventsSince(n int) []melt.Event
	EventCount() int
}

// debugLines builds the overlay text for the current run.
func debugLines(src debugSource, snap core.Snapshot) []string {
	spec := src.Spec()
	st := src.State()
	cfg := src.Config()

	lines := []string{
		fmt.Sprintf("ticks %d  speed x%g", snap.Ticks, cfg.Speed),
		fmt.Sprintf("particles %d/%d", len(snap.Particles), cfg.Particles.Max),
		fmt.Sprintf("tau %.1fs  stable dt < %.1fs", thermal.TimeConstant(spec, st.Mass), thermal.MaxStableStep(spec, st.Mass)),
	}
	switch {
	case snap.Transitioned:
		line := fmt.Sprintf("progress %.1f/%.0f", snap.Progress, spec.MaxProgress)
		if flips := melt.Filter(src.EventsSince(0), melt.CategoryState, melt.KeyTransition); len(flips) > 0 {
			line += fmt.Sprintf("  flip at %.2fs", flips[len(flips)-1].Elapsed)
		}
		lines = append(lines, line)
	case !snap.Heating:
		lines = append(lines, "eta: heat source off")
	default:
		eta, ok := thermal.TimeToReach(spec, st.Mass, st.Temperature, spec.MeltPoint, st.HotSource)
		if ok {
			lines = append(lines, fmt.Sprintf("eta %s: %.1fs", spec.TransitionLabel, eta))
		} else {
			lines = append(lines, fmt.Sprintf("eta %s: never", spec.TransitionLabel))
		}
	}

	from := max(src.EventCount()-debugEvents, 0)
	for _, e := range src.EventsSince(from) {
		lines = append(lines, e.String())
	}
	return lines
}
