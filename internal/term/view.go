// Package term draws the simulation on a character terminal. Every
// terminal cell shows two stacked raster cells using an upper half block
// with the top cell as foreground and the bottom cell as background.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/render"
	"github.com/ThomasA12354656/heat/internal/scene"
)

// StatusRows is the number of text lines reserved under the picture.
const StatusRows = 2

const halfBlock = '▀'

// View renders snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
	layout scene.Layout

	cols, rows int
	cell       int
	rast       *render.Rasterizer
}

// NewView creates a view sized to the current screen.
func NewView(screen tcell.Screen, layout scene.Layout) *View {
	v := &View{screen: screen, layout: layout}
	v.Fit()
	return v
}

// Fit re-derives the raster cell size after a resize. It reports whether
// the size changed.
func (v *View) Fit() bool {
	cols, rows := v.screen.Size()
	if cols == v.cols && rows == v.rows && v.rast != nil {
		return false
	}
	v.cols, v.rows = cols, rows
	v.cell = FitCell(v.layout, cols, rows-StatusRows)
	v.rast = render.NewRasterizer(v.layout, v.cell)
	return true
}

// Cell returns the scene pixels covered by one raster cell.
func (v *View) Cell() int { return v.cell }

// FitCell returns the smallest cell size at which layout fits into cols
// columns and rows text rows of half blocks.
func FitCell(layout scene.Layout, cols, rows int) int {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cell := 1
	for {
		w := (layout.Width + cell - 1) / cell
		h := (layout.Height + cell - 1) / cell
		if w <= cols && (h+1)/2 <= rows {
			return cell
		}
		cell++
	}
}

// Draw paints snap and the status lines, then shows the screen.
func (v *View) Draw(snap core.Snapshot, spec material.Spec, status ...string) {
	v.screen.Clear()
	f := v.rast.Rasterize(snap, spec)

	gw, gh := f.Grid.W, f.Grid.H
	for ty := 0; ty*2 < gh && ty < v.rows; ty++ {
		for tx := 0; tx < gw && tx < v.cols; tx++ {
			top := f.Color(tx, ty*2)
			bottom := f.Color(tx, ty*2+1)
			if ty*2+1 >= gh {
				bottom = f.Palette[render.SlotBackground]
			}
			v.screen.SetContent(tx, ty, halfBlock, nil, CellStyle(top, bottom))
		}
	}

	base := (gh + 1) / 2
	for i, line := range status {
		if i >= StatusRows {
			break
		}
		v.drawText(0, base+i, line, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.cols {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// CellStyle is the style of a half-block cell.
func CellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

// StatusLine summarises snap for the line under the picture.
func StatusLine(snap core.Snapshot) string {
	run := "stopped"
	if snap.Running {
		run = "running"
	}
	heat := "heat on"
	if !snap.Heating {
		heat = "heat off"
	}
	return fmt.Sprintf("%-5s %8.1f°C  %-8s %3.0f%%  t=%6.1fs  %s, %s",
		snap.Material, snap.Temperature, snap.State, snap.Fraction*100, snap.Elapsed, run, heat)
}

// HelpLine lists the key bindings.
func HelpLine() string {
	return "s start  space pause  r reset  h heat  m material  +/- speed  q quit"
}
