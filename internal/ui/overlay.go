//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/scene"
)

type layoutProvider interface {
	Layout() scene.Layout
}

var (
	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 120}
	emitterColor = color.RGBA{R: 255, G: 220, B: 0, A: 200}
)

// Overlay draws optional debugging visuals on top of the scene. D toggles it.
type Overlay struct {
	sim   core.Sim
	scale float64
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	snap := o.sim.Snapshot()

	if lp, ok := o.sim.(layoutProvider); ok {
		if src, ok := o.sim.(debugSource); ok {
			block := lp.Layout().BlockAt(src.Spec(), snap.Fraction)
			s := float32(o.scale)
			vector.StrokeRect(screen, float32(block.X)*s, float32(block.Y)*s, float32(block.W)*s, float32(block.H)*s, 1, outlineColor, false)
			em := scene.Emitter(block)
			vector.FillCircle(screen, float32(em.X)*s, float32(em.Y)*s, 3, emitterColor, true)
		}
	}

	src, ok := o.sim.(debugSource)
	if !ok {
		return
	}
	for i, line := range debugLines(src, snap) {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*14)
	}
}
