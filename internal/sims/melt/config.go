package melt

import (
	"fmt"
	"strconv"

	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/particles"
	"github.com/ThomasA12354656/heat/internal/scene"
)

// Config holds the external inputs of the simulation. Material, InitialTemp,
// Mass and HotSource are read at Reset; Speed and Heating apply live.
type Config struct {
	Material    material.Key
	InitialTemp float64
	Mass        float64
	HotSource   float64
	Heating     bool
	Speed       float64

	Seed int64

	Particles particles.Params
	Layout    scene.Layout
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Material:    material.Ice,
		InitialTemp: -10,
		Mass:        1,
		HotSource:   1000,
		Heating:     true,
		Speed:       1,
		Seed:        1337,
		Particles:   particles.DefaultParams(),
		Layout:      scene.DefaultLayout(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or non-finite values keep their defaults; the material key is taken as is
// so an unknown one surfaces at Reset.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["material"]; ok && v != "" {
		c.Material = material.Key(v)
	}
	if v, ok := cfg["initial_temp"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			c.InitialTemp = parsed
		}
	}
	if v, ok := cfg["mass"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			c.Mass = parsed
		}
	}
	if v, ok := cfg["hot_source"]; ok {
		if parsed, err := parseFinite(v); err == nil {
			c.HotSource = parsed
		}
	}
	if v, ok := cfg["heating"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Heating = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_chance"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed >= 0 {
			c.Particles.SpawnChance = parsed
		}
	}
	if v, ok := cfg["particle_decay"]; ok {
		if parsed, err := parseFinite(v); err == nil && parsed > 0 {
			c.Particles.Decay = parsed
		}
	}
	if v, ok := cfg["max_particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Particles.Max = parsed
		}
	}
	return c
}

func parseFinite(v string) (float64, error) {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if !finite(parsed) {
		return 0, fmt.Errorf("melt: %q is not finite", v)
	}
	return parsed, nil
}
