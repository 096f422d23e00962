// Package material holds the fixed catalog of heatable materials: their
// physical constants and the presentation hints renderers need.
package material

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownMaterial is returned when a key is not part of the catalog.
var ErrUnknownMaterial = errors.New("material: unknown material")

// Key identifies a catalog entry.
type Key string

const (
	Ice   Key = "ice"
	Wood  Key = "wood"
	Metal Key = "metal"
)

// Spec is the immutable description of one material.
type Spec struct {
	Key  Key
	Name string

	MeltPoint    float64 // °C at which the state change happens
	SpecificHeat float64 // J/(kg·K)
	Conductivity float64 // W/(m·K), lumped coupling to the heat source
	MaxProgress  float64 // progress at which the visual transition is complete

	// TransitionLabel names the post-threshold state ("Melted", "Charred").
	TransitionLabel string

	Base         color.RGBA
	Transitioned color.RGBA
	Smoke        color.RGBA

	// MinHeight is the block height ratio left at full transition.
	MinHeight float64
	Drip      bool
	Flames    bool
}

var catalog = []Spec{
	{
		Key:             Ice,
		Name:            "Ice",
		MeltPoint:       0,
		SpecificHeat:    2100,
		Conductivity:    2,
		MaxProgress:     100,
		TransitionLabel: "Melted",
		Base:            rgb(0xaa, 0xee, 0xee),
		Transitioned:    rgb(0x33, 0x99, 0xff),
		Smoke:           rgb(0xe6, 0xf2, 0xff),
		MinHeight:       0.25,
		Drip:            true,
	},
	{
		Key:             Wood,
		Name:            "Wood",
		MeltPoint:       300,
		SpecificHeat:    1700,
		Conductivity:    0.2,
		MaxProgress:     200,
		TransitionLabel: "Charred",
		Base:            rgb(0xa0, 0x52, 0x2d),
		Transitioned:    rgb(0x11, 0x11, 0x11),
		Smoke:           rgb(0x77, 0x77, 0x77),
		MinHeight:       0.5,
		Flames:          true,
	},
	{
		Key:             Metal,
		Name:            "Metal",
		MeltPoint:       660,
		SpecificHeat:    900,
		Conductivity:    50,
		MaxProgress:     150,
		TransitionLabel: "Melted",
		Base:            rgb(0xcc, 0xcc, 0xcc),
		Transitioned:    rgb(0xff, 0x44, 0x44),
		Smoke:           rgb(0xb0, 0x98, 0x88),
		MinHeight:       0.5,
	},
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Lookup returns the spec for key.
func Lookup(key Key) (Spec, error) {
	for _, spec := range catalog {
		if spec.Key == key {
			return spec, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, string(key))
}

// Keys lists the catalog in display order.
func Keys() []Key {
	keys := make([]Key, len(catalog))
	for i, spec := range catalog {
		keys[i] = spec.Key
	}
	return keys
}

// Names lists the catalog keys as strings, in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, spec := range catalog {
		names[i] = string(spec.Key)
	}
	return names
}

// Validate checks the physical invariants every entry must satisfy.
func (s Spec) Validate() error {
	switch {
	case s.SpecificHeat <= 0:
		return fmt.Errorf("material %q: specific heat must be > 0", s.Key)
	case s.Conductivity < 0:
		return fmt.Errorf("material %q: conductivity must be >= 0", s.Key)
	case s.MaxProgress <= 0:
		return fmt.Errorf("material %q: max progress must be > 0", s.Key)
	case s.MinHeight < 0 || s.MinHeight > 1:
		return fmt.Errorf("material %q: min height must be within [0,1]", s.Key)
	}
	return nil
}
