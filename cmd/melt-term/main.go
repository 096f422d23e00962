package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ThomasA12354656/heat/internal/app"
	"github.com/ThomasA12354656/heat/internal/audio"
	"github.com/ThomasA12354656/heat/internal/logging"
	"github.com/ThomasA12354656/heat/internal/sims/melt"
	"github.com/ThomasA12354656/heat/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyEnv(flag.CommandLine, nil)

	// tcell owns the terminal, so logs only go somewhere when a file is set.
	logger := logging.Discard()
	if cfg.LogFile != "" {
		l, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			log.Fatal(err)
		}
		defer closeLog()
		logger = l
	}

	sim, err := melt.NewWithConfig(cfg.SimConfig())
	if err != nil {
		log.Fatalf("invalid simulation inputs: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	var cue *audio.Cue
	if cfg.Audio {
		cue = audio.NewCue(cfg.Seed)
		if err := cue.Init(); err != nil {
			logger.Warnf("audio disabled: %v", err)
			cue = nil
		}
	}

	err = run(screen, app.NewController(sim, logger), cue, cfg.TPS)
	screen.Fini()
	if cue != nil {
		cue.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "heat: %v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, ctl *app.Controller, cue *audio.Cue, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	view := term.NewView(screen, ctl.Sim().Layout())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !apply(ctl, term.KeyCommand(ev)) {
					return nil
				}
			case *tcell.EventResize:
				view.Fit()
				screen.Sync()
			}

		case now := <-ticker.C:
			snap, _ := ctl.Frame(now)
			if cue != nil {
				cue.Update(snap)
			}
			view.Draw(snap, ctl.Sim().Spec(), term.StatusLine(snap), term.HelpLine())
		}
	}
}

// apply runs cmd and reports whether the loop should continue.
func apply(ctl *app.Controller, cmd term.Command) bool {
	switch cmd {
	case term.CmdQuit:
		return false
	case term.CmdStart:
		ctl.Start()
	case term.CmdTogglePause:
		ctl.TogglePause()
	case term.CmdReset:
		ctl.Reset()
	case term.CmdToggleHeating:
		ctl.ToggleHeating()
	case term.CmdNextMaterial:
		ctl.NextMaterial()
	case term.CmdFaster:
		ctl.ScaleSpeed(2)
	case term.CmdSlower:
		ctl.ScaleSpeed(0.5)
	}
	return true
}
