// Package scene fixes the logical geometry shared by the simulation and the
// renderers: where the heat source, the block and the progress bar sit.
package scene

import (
	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
)

// Rect is an axis-aligned rectangle in scene pixels.
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Layout places the scene elements.
type Layout struct {
	Width  int
	Height int
	Source Rect
	Block  Rect
	Bar    Rect
}

// DefaultLayout mirrors the classic canvas arrangement: a red source on the
// left and the block to its right, with the bar under the block.
func DefaultLayout() Layout {
	return Layout{
		Width:  800,
		Height: 320,
		Source: Rect{X: 100, Y: 80, W: 50, H: 80},
		Block:  Rect{X: 300, Y: 80, W: 200, H: 80},
		Bar:    Rect{X: 300, Y: 260, W: 200, H: 12},
	}
}

// Size reports the layout dimensions.
func (l Layout) Size() core.Size { return core.Size{W: l.Width, H: l.Height} }

// BlockAt returns the block rectangle after shrinking by fraction. The block
// keeps its bottom edge and loses height down to spec.MinHeight.
func (l Layout) BlockAt(spec material.Spec, fraction float64) Rect {
	fraction = min(max(fraction, 0), 1)
	full := l.Block.H
	h := full - (full-full*spec.MinHeight)*fraction
	return Rect{X: l.Block.X, Y: l.Block.Bottom() - h, W: l.Block.W, H: h}
}

// Emitter is the point particles rise from: the top centre of block.
func Emitter(block Rect) core.Vec2 {
	return core.Vec2{X: block.X + block.W/2, Y: block.Y}
}
