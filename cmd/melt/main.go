//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ThomasA12354656/heat/internal/app"
	"github.com/ThomasA12354656/heat/internal/audio"
	"github.com/ThomasA12354656/heat/internal/logging"
	"github.com/ThomasA12354656/heat/internal/sims/melt"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyEnv(flag.CommandLine, nil)

	logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	sim, err := melt.NewWithConfig(cfg.SimConfig())
	if err != nil {
		log.Fatalf("invalid simulation inputs: %v", err)
	}

	ctl := app.NewController(sim, logger)
	game := app.New(ctl, cfg.Scale)

	if cfg.Audio {
		cue := audio.NewCue(cfg.Seed)
		if err := cue.Init(); err != nil {
			logger.Warnf("audio disabled: %v", err)
		} else {
			defer cue.Close()
			game.AddListener(cue)
		}
	}

	size := sim.Size()
	ebiten.SetWindowTitle("heat - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("run: %v", err)
		log.Fatal(err)
	}
}
