// Package thermal integrates the lumped-capacitance heat model: the whole
// block shares one temperature and exchanges heat with a fixed-temperature
// source in proportion to their difference.
package thermal

import (
	"math"

	"github.com/ThomasA12354656/heat/internal/material"
)

// Integrate advances temperature by one explicit Euler step of length dt
// seconds toward hotSource.
func Integrate(temperature float64, spec material.Spec, mass, hotSource, dt float64) float64 {
	next, _ := Step(temperature, spec, mass, hotSource, dt)
	return next
}

// Step is Integrate that also reports the temperature delta of the step.
//
//	dQ = k·(hot − T)·dt
//	dT = dQ / (mass·c)
//
// A non-positive or NaN dt, or a non-positive mass, leaves the temperature
// unchanged. Large steps may overshoot hotSource; that is not corrected.
func Step(temperature float64, spec material.Spec, mass, hotSource, dt float64) (float64, float64) {
	if !(dt > 0) || !(mass > 0) || spec.SpecificHeat <= 0 {
		return temperature, 0
	}
	dQ := spec.Conductivity * (hotSource - temperature) * dt
	dT := dQ / (mass * spec.SpecificHeat)
	return temperature + dT, dT
}

// TimeConstant returns mass·c/k, the e-folding time of the continuous model.
// It is +Inf when the material does not conduct.
func TimeConstant(spec material.Spec, mass float64) float64 {
	if spec.Conductivity <= 0 {
		return math.Inf(1)
	}
	return mass * spec.SpecificHeat / spec.Conductivity
}

// MaxStableStep is the largest dt for which a single Euler step cannot carry
// the temperature past the source.
func MaxStableStep(spec material.Spec, mass float64) float64 {
	return TimeConstant(spec, mass)
}

// TimeToReach returns the seconds the continuous model needs to go from
// `from` to `target` with the source at hotSource:
//
//	t = τ·ln((hot − from) / (hot − target))
//
// ok is false when target is never reached (target at or beyond the source,
// or no conduction). A target already reached yields 0.
func TimeToReach(spec material.Spec, mass, from, target, hotSource float64) (float64, bool) {
	if mass <= 0 || spec.SpecificHeat <= 0 {
		return 0, false
	}
	heating := hotSource >= from
	if heating && from >= target || !heating && from <= target {
		return 0, true
	}
	if spec.Conductivity <= 0 {
		return 0, false
	}
	if heating && target >= hotSource || !heating && target <= hotSource {
		return 0, false
	}
	tau := TimeConstant(spec, mass)
	return tau * math.Log((hotSource-from)/(hotSource-target)), true
}
