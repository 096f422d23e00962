package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/ThomasA12354656/heat/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue drives the sizzle from simulation snapshots.
type Cue struct {
	mu          sync.Mutex
	sizzle      *Sizzle
	ctrl        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates a silent cue. Nothing is played until Init succeeds.
func NewCue(seed int64) *Cue {
	s := NewSizzle(sampleRate, 2500, seed)
	vol := &effects.Volume{Streamer: s, Base: 2, Volume: 0}
	return &Cue{
		sizzle: s,
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	c.mixer.Add(c.ctrl)
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Update follows snap: the sizzle plays while a transitioned block keeps
// heating, louder as the fraction grows.
func (c *Cue) Update(snap core.Snapshot) {
	level := 0.0
	if snap.Running && snap.Heating && snap.Transitioned {
		level = 0.2 + 0.8*snap.Fraction
	}
	c.sizzle.SetIntensity(level)

	c.mu.Lock()
	defer c.mu.Unlock()
	paused := level == 0
	if !c.initialized {
		c.ctrl.Paused = paused
		return
	}
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

// Playing reports whether the sizzle is audible.
func (c *Cue) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return !c.ctrl.Paused
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !c.ctrl.Paused
}

// Intensity reports the current sizzle amplitude.
func (c *Cue) Intensity() float64 { return c.sizzle.Intensity() }

// Close stops playback and releases the speaker.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
