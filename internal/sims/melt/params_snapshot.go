package melt

import (
	"strconv"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	groups := []core.ParameterGroup{
		{
			Name:    "Inputs",
			Summary: "Applied on reset",
			Params: []core.Parameter{
				choiceParam("material", "Material", string(cfg.Material)),
				floatParam("initial_temp", "Initial temp (C)", cfg.InitialTemp),
				floatParam("mass", "Mass (kg)", cfg.Mass),
				floatParam("hot_source", "Hot source (C)", cfg.HotSource),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				floatParam("speed", "Speed", cfg.Speed),
				boolParam("heating", "Heating", cfg.Heating),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Effects",
			Summary: "Applied on reset",
			Params: []core.Parameter{
				floatParam("spawn_chance", "Smoke spawn chance", cfg.Particles.SpawnChance),
				floatParam("particle_decay", "Smoke decay", cfg.Particles.Decay),
				intParam("max_particles", "Max particles", cfg.Particles.Max),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable inputs.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "material", Label: "Material", Type: core.ParamTypeChoice, Options: material.Names()},
		{Key: "initial_temp", Label: "Initial temp", Type: core.ParamTypeFloat, Step: 5, Min: -200, Max: 1500, HasMin: true, HasMax: true},
		{Key: "mass", Label: "Mass", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 50, HasMin: true, HasMax: true},
		{Key: "hot_source", Label: "Hot source", Type: core.ParamTypeFloat, Step: 50, Min: -200, Max: 3000, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 5, Min: 1, Max: 500, HasMin: true, HasMax: true},
		{Key: "spawn_chance", Label: "Smoke chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "max_particles", Label: "Max particles", Type: core.ParamTypeInt, Step: 25, Min: 25, Max: 2000, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point input. Invalid values,
// including NaN and infinities, are refused.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if !finite(value) {
		return false
	}
	switch key {
	case "initial_temp":
		s.cfg.InitialTemp = value
	case "mass":
		if !(value > 0) {
			return false
		}
		s.cfg.Mass = value
	case "hot_source":
		s.cfg.HotSource = value
	case "speed":
		if !(value > 0) {
			return false
		}
		s.cfg.Speed = value
		s.clock.SetSpeed(value)
	case "spawn_chance":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.Particles.SpawnChance = value
	case "particle_decay":
		if !(value > 0) {
			return false
		}
		s.cfg.Particles.Decay = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer input.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_particles":
		if value <= 0 {
			return false
		}
		s.cfg.Particles.Max = value
	case "seed":
		s.cfg.Seed = int64(value)
	default:
		return false
	}
	return true
}

// SetChoiceParameter selects the material input.
func (s *Sim) SetChoiceParameter(key string, option string) bool {
	if key != "material" {
		return false
	}
	if _, err := material.Lookup(material.Key(option)); err != nil {
		return false
	}
	s.cfg.Material = material.Key(option)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func choiceParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeChoice,
		Value: value,
	}
}
