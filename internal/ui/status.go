package ui

import (
	"fmt"

	"github.com/ThomasA12354656/heat/internal/core"
)

// statusText is the run summary shown above the HUD controls.
func statusText(snap core.Snapshot) []string {
	run := "stopped"
	if snap.Running {
		run = "running"
	}
	heat := "on"
	if !snap.Heating {
		heat = "off"
	}
	return []string{
		fmt.Sprintf("Material: %s", snap.Material),
		fmt.Sprintf("Temperature: %.1f C", snap.Temperature),
		fmt.Sprintf("State: %s (%.0f%%)", snap.State, snap.Fraction*100),
		fmt.Sprintf("Time: %.1fs  %s", snap.Elapsed, run),
		fmt.Sprintf("Heat source: %s", heat),
	}
}
