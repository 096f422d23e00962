package render

import (
	"testing"

	"github.com/ThomasA12354656/heat/internal/core"
	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/scene"
)

func mustSpec(t *testing.T, key material.Key) material.Spec {
	t.Helper()
	spec, err := material.Lookup(key)
	if err != nil {
		t.Fatalf("lookup %s: %v", key, err)
	}
	return spec
}

func TestRasterizerPlacesSceneElements(t *testing.T) {
	r := NewRasterizer(scene.DefaultLayout(), 4)
	if w, h := r.Size(); w != 200 || h != 80 {
		t.Fatalf("expected 200x80 grid, got %dx%d", w, h)
	}
	snap := core.Snapshot{
		Fraction:  0.5,
		Particles: []core.ParticleView{{X: 600, Y: 40, Size: 8, Alpha: 0.8}},
	}
	f := r.Rasterize(snap, mustSpec(t, material.Ice))

	cases := []struct {
		name string
		x, y int
		want uint8
	}{
		{"background", 2, 2, SlotBackground},
		{"source", 26, 21, SlotSource},
		{"block", 80, 35, SlotBlock},
		{"shrunk block top", 80, 22, SlotBackground},
		{"bar frame", 75, 65, SlotBarFrame},
		{"bar fill", 77, 66, SlotBarFill},
		{"bar empty", 123, 66, SlotBackground},
		{"dense smoke", 150, 10, SlotSmoke + 3},
	}
	for _, tc := range cases {
		if got := f.Grid.At(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s at (%d,%d): expected slot %d, got %d", tc.name, tc.x, tc.y, tc.want, got)
		}
	}
}

func TestRasterizerBlockColorFollowsFraction(t *testing.T) {
	spec := mustSpec(t, material.Wood)
	r := NewRasterizer(scene.DefaultLayout(), 4)

	f := r.Rasterize(core.Snapshot{}, spec)
	if got := f.Color(80, 25); got != spec.Base {
		t.Fatalf("expected base colour at fraction 0, got %+v", got)
	}
	f = r.Rasterize(core.Snapshot{Fraction: 1, Transitioned: true}, spec)
	if got := f.Color(80, 35); got != spec.Transitioned {
		t.Fatalf("expected transitioned colour at fraction 1, got %+v", got)
	}
}

func TestRasterizerDripOnlyAfterTransition(t *testing.T) {
	spec := mustSpec(t, material.Ice)
	r := NewRasterizer(scene.DefaultLayout(), 4)

	f := r.Rasterize(core.Snapshot{}, spec)
	if got := f.Grid.At(100, 42); got != SlotBackground {
		t.Fatalf("solid ice must not drip, got slot %d", got)
	}
	f = r.Rasterize(core.Snapshot{Transitioned: true}, spec)
	if got := f.Grid.At(100, 42); got != SlotDrip {
		t.Fatalf("melted ice must drip, got slot %d", got)
	}
}

func TestRasterizerFlamesOnlyForFlamingMaterials(t *testing.T) {
	r := NewRasterizer(scene.DefaultLayout(), 4)
	count := func(f Frame) int {
		n := 0
		for _, c := range f.Grid.Cells() {
			if c == SlotFlame {
				n++
			}
		}
		return n
	}
	snap := core.Snapshot{Transitioned: true, Fraction: 0.5}
	if n := count(r.Rasterize(snap, mustSpec(t, material.Wood))); n == 0 {
		t.Fatal("charred wood must show flames")
	}
	if n := count(r.Rasterize(snap, mustSpec(t, material.Metal))); n != 0 {
		t.Fatalf("metal must not show flames, got %d cells", n)
	}
}

func TestSmokeDoesNotCoverScene(t *testing.T) {
	r := NewRasterizer(scene.DefaultLayout(), 4)
	snap := core.Snapshot{Particles: []core.ParticleView{{X: 104, Y: 84, Size: 12, Alpha: 1}}}
	f := r.Rasterize(snap, mustSpec(t, material.Ice))
	if got := f.Grid.At(26, 21); got != SlotSource {
		t.Fatalf("smoke painted over the source: slot %d", got)
	}
}

func TestSmokeSlotQuantisesAlpha(t *testing.T) {
	cases := map[float64]uint8{
		0:    SlotSmoke,
		0.1:  SlotSmoke,
		0.25: SlotSmoke,
		0.3:  SlotSmoke + 1,
		0.75: SlotSmoke + 2,
		1:    SlotSmoke + 3,
		2:    SlotSmoke + 3,
	}
	for alpha, want := range cases {
		if got := smokeSlot(alpha); got != want {
			t.Fatalf("alpha %v: expected slot %d, got %d", alpha, want, got)
		}
	}
}
