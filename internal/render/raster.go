package render

import (
	"image/color"
	"math"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/scene"
)

// Palette slots written into the frame grid.
const (
	SlotBackground uint8 = iota
	SlotSource
	SlotBlock
	SlotDrip
	SlotFlame
	SlotBarFrame
	SlotBarFill
	// SlotSmoke is the faintest smoke level; denser levels follow it.
	SlotSmoke
)

// SmokeLevels is the number of alpha steps smoke is quantised into.
const SmokeLevels = 4

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 26, A: 255}
	sourceColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	dripColor       = color.RGBA{R: 0x66, G: 0xcc, B: 0xff, A: 255}
	flameColor      = color.RGBA{R: 255, G: 140, B: 40, A: 255}
	barFrameColor   = color.RGBA{R: 90, G: 90, B: 104, A: 255}
	barFillColor    = color.RGBA{R: 255, G: 170, B: 60, A: 255}
)

// Frame is a palette-indexed raster of one snapshot.
type Frame struct {
	Grid    *core.ByteGrid
	Palette []color.RGBA
}

// Color returns the palette colour of cell (x, y).
func (f Frame) Color(x, y int) color.RGBA {
	idx := int(f.Grid.At(x, y))
	if idx >= len(f.Palette) {
		idx = len(f.Palette) - 1
	}
	return f.Palette[idx]
}

// Rasterizer draws snapshots onto a coarse cell grid. One cell covers
// cell×cell scene pixels. The grid and palette are reused between frames.
type Rasterizer struct {
	layout  scene.Layout
	cell    float64
	grid    *core.ByteGrid
	palette []color.RGBA
}

// NewRasterizer allocates a rasterizer for layout at the given cell size.
func NewRasterizer(layout scene.Layout, cell int) *Rasterizer {
	if cell <= 0 {
		cell = 1
	}
	w := (layout.Width + cell - 1) / cell
	h := (layout.Height + cell - 1) / cell
	return &Rasterizer{
		layout:  layout,
		cell:    float64(cell),
		grid:    core.NewByteGrid(w, h),
		palette: make([]color.RGBA, int(SlotSmoke)+SmokeLevels),
	}
}

// Size returns the grid dimensions in cells.
func (r *Rasterizer) Size() (int, int) { return r.grid.W, r.grid.H }

// Rasterize paints snap for a block of material spec. The returned frame
// aliases the rasterizer's buffers and is valid until the next call.
func (r *Rasterizer) Rasterize(snap core.Snapshot, spec material.Spec) Frame {
	r.buildPalette(spec, snap.Fraction)
	r.grid.Clear()

	block := r.layout.BlockAt(spec, snap.Fraction)
	r.fillRect(r.layout.Source, SlotSource)
	r.fillRect(block, SlotBlock)

	if snap.Transitioned && spec.Drip {
		bob := math.Sin(snap.Elapsed*5) * 2
		r.fillDisc(block.X+block.W/2, block.Bottom()+10+bob, 7, SlotDrip, false)
	}
	if snap.Transitioned && spec.Flames {
		r.drawFlames(block, snap)
	}
	for _, p := range snap.Particles {
		r.fillDisc(p.X, p.Y, p.Size/2, smokeSlot(p.Alpha), true)
	}
	r.drawBar(snap.Fraction)

	return Frame{Grid: r.grid, Palette: r.palette}
}

func (r *Rasterizer) buildPalette(spec material.Spec, fraction float64) {
	r.palette[SlotBackground] = backgroundColor
	r.palette[SlotSource] = sourceColor
	r.palette[SlotBlock] = BlockColor(spec, fraction)
	r.palette[SlotDrip] = dripColor
	r.palette[SlotFlame] = flameColor
	r.palette[SlotBarFrame] = barFrameColor
	r.palette[SlotBarFill] = barFillColor
	for i := 0; i < SmokeLevels; i++ {
		alpha := float64(i+1) / SmokeLevels
		r.palette[int(SlotSmoke)+i] = Blend(backgroundColor, spec.Smoke, alpha)
	}
}

func smokeSlot(alpha float64) uint8 {
	level := int(math.Ceil(alpha*SmokeLevels)) - 1
	level = min(max(level, 0), SmokeLevels-1)
	return SlotSmoke + uint8(level)
}

func (r *Rasterizer) cellSpan(lo, hi float64) (int, int) {
	return int(math.Floor(lo / r.cell)), int(math.Ceil(hi / r.cell))
}

func (r *Rasterizer) fillRect(rect scene.Rect, slot uint8) {
	x0, x1 := r.cellSpan(rect.X, rect.X+rect.W)
	y0, y1 := r.cellSpan(rect.Y, rect.Y+rect.H)
	r.grid.FillRect(x0, y0, x1, y1, slot)
}

// fillDisc paints a disc centred at scene point (cx, cy). Smoke only covers
// background or fainter smoke.
func (r *Rasterizer) fillDisc(cx, cy, radius float64, slot uint8, smoke bool) {
	ccx, ccy := cx/r.cell, cy/r.cell
	rad := math.Max(radius/r.cell, 0.5)
	y0, y1 := int(math.Floor(ccy-rad)), int(math.Ceil(ccy+rad))
	x0, x1 := int(math.Floor(ccx-rad)), int(math.Ceil(ccx+rad))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - ccx
			dy := float64(y) + 0.5 - ccy
			if dx*dx+dy*dy > rad*rad || !r.grid.In(x, y) {
				continue
			}
			if smoke {
				cur := r.grid.At(x, y)
				if cur != SlotBackground && (cur < SlotSmoke || cur >= slot) {
					continue
				}
			}
			r.grid.Set(x, y, slot)
		}
	}
}

// drawFlames paints flickering tongues along the top of the block.
func (r *Rasterizer) drawFlames(block scene.Rect, snap core.Snapshot) {
	const tongues = 6
	width := block.W / tongues
	for i := 0; i < tongues; i++ {
		flicker := 0.6 + 0.4*math.Abs(math.Sin(snap.Elapsed*7+float64(i)*1.3))
		height := (8 + 16*snap.Fraction) * flicker
		x := block.X + float64(i)*width
		// Two stacked slabs give a tapered tongue.
		r.fillRect(scene.Rect{X: x + width*0.15, Y: block.Y - height*0.5, W: width * 0.7, H: height * 0.5}, SlotFlame)
		r.fillRect(scene.Rect{X: x + width*0.35, Y: block.Y - height, W: width * 0.3, H: height * 0.5}, SlotFlame)
	}
}

func (r *Rasterizer) drawBar(fraction float64) {
	bar := r.layout.Bar
	x0, x1 := r.cellSpan(bar.X, bar.X+bar.W)
	y0, y1 := r.cellSpan(bar.Y, bar.Y+bar.H)
	r.grid.FillRect(x0, y0, x1, y1, SlotBarFrame)

	ix0, ix1 := x0+1, x1-1
	iy0, iy1 := y0+1, y1-1
	if ix1 <= ix0 || iy1 <= iy0 {
		return
	}
	r.grid.FillRect(ix0, iy0, ix1, iy1, SlotBackground)
	fraction = min(max(fraction, 0), 1)
	filled := int(math.Round(float64(ix1-ix0) * fraction))
	r.grid.FillRect(ix0, iy0, ix0+filled, iy1, SlotBarFill)
}
