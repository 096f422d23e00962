package render

import (
	"image/color"

	"github.com/ThomasA12354656/heat/internal/material"
)

// Blend mixes overlay into base with the given overlay weight in [0,1].
func Blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// BlockColor is the block tint at the given transition fraction.
func BlockColor(spec material.Spec, fraction float64) color.RGBA {
	return Blend(spec.Base, spec.Transitioned, fraction)
}
