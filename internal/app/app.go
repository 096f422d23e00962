//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/render"
	"github.com/ThomasA12354656/heat/internal/ui"
)

// HUDWidth is the width of the control panel in screen pixels.
const HUDWidth = 260

// SnapshotListener receives every snapshot the game produces.
type SnapshotListener interface {
	Update(core.Snapshot)
}

// Game adapts the melt simulation to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	rast    *render.Rasterizer
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	listeners []SnapshotListener
	snap      core.Snapshot
	scale     int
}

// New constructs a Game around ctl, drawing the scene at scale screen pixels
// per scene pixel.
func New(ctl *Controller, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	sim := ctl.Sim()
	layout := sim.Layout()
	rast := render.NewRasterizer(layout, 1)
	w, h := rast.Size()
	g := &Game{
		ctl:     ctl,
		rast:    rast,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, float64(scale)),
		snap:    sim.Snapshot(),
		scale:   scale,
	}
	g.hud.OnError = func(err error) { ctl.log.Errorf("hud: %v", err) }
	return g
}

// AddListener registers l for every produced snapshot.
func (g *Game) AddListener(l SnapshotListener) { g.listeners = append(g.listeners, l) }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ctl.ToggleHeating()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ctl.NextMaterial()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ctl.ScaleSpeed(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ctl.ScaleSpeed(0.5)
	}

	g.overlay.Update()
	g.hud.Update(g.sceneWidth())

	snap, err := g.ctl.Frame(time.Now())
	if err != nil {
		return nil
	}
	g.snap = snap
	for _, l := range g.listeners {
		l.Update(snap)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.rast.Rasterize(g.snap, g.ctl.Sim().Spec())
	g.painter.Blit(screen, frame, float64(g.scale))
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sceneWidth(), g.sceneHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sceneWidth() + HUDWidth, g.sceneHeight()
}

func (g *Game) sceneWidth() int  { return g.ctl.Sim().Size().W * g.scale }
func (g *Game) sceneHeight() int { return g.ctl.Sim().Size().H * g.scale }
