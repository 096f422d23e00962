// Package report runs headless scenarios and compares the simulated time to
// transition with the closed-form prediction of the continuous model.
package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/sims/melt"
	"github.com/ThomasA12354656/heat/internal/thermal"
)

// Scenario is one headless run.
type Scenario struct {
	Material    material.Key
	Mass        float64
	HotSource   float64
	InitialTemp float64

	// Step is the fixed tick length and Limit the simulated time cap, both
	// in seconds.
	Step  float64
	Limit float64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s m=%g hot=%g from=%g", s.Material, s.Mass, s.HotSource, s.InitialTemp)
}

// Result is the outcome of a scenario.
type Result struct {
	Scenario Scenario

	Reached   bool
	Simulated float64

	Predictable bool
	Predicted   float64

	// Complete is the simulated time at which the fraction hit 1, or -1.
	Complete float64
	Ticks    int
	Err      error
}

// RelError is |simulated − predicted| / predicted. It is NaN when either
// side is missing.
func (r Result) RelError() float64 {
	if !r.Reached || !r.Predictable || r.Predicted <= 0 {
		return math.NaN()
	}
	return math.Abs(r.Simulated-r.Predicted) / r.Predicted
}

// Run simulates s with fixed ticks until the block is fully transitioned or
// the limit is hit.
func Run(s Scenario) Result {
	res := Result{Scenario: s, Complete: -1}
	if !(s.Step > 0) || !(s.Limit > 0) {
		res.Err = fmt.Errorf("report: %s: step and limit must be > 0", s)
		return res
	}

	cfg := melt.DefaultConfig()
	cfg.Material = s.Material
	cfg.Mass = s.Mass
	cfg.HotSource = s.HotSource
	cfg.InitialTemp = s.InitialTemp
	sim, err := melt.NewWithConfig(cfg)
	if err != nil {
		res.Err = err
		return res
	}

	spec := sim.Spec()
	res.Predicted, res.Predictable = thermal.TimeToReach(spec, s.Mass, s.InitialTemp, spec.MeltPoint, s.HotSource)

	// The arming tick advances by zero but still runs the state machine, so
	// a block starting at or above its threshold flips at t=0.
	sim.Start()
	snap, err := sim.Tick(0)
	for ; err == nil; snap, err = sim.Tick(s.Step) {
		res.Ticks = snap.Ticks
		if snap.Transitioned && !res.Reached {
			res.Reached = true
			res.Simulated = snap.Elapsed
		}
		if snap.Fraction >= 1 {
			res.Complete = snap.Elapsed
			return res
		}
		if snap.Elapsed >= s.Limit {
			return res
		}
	}
	res.Err = err
	return res
}

// Sweep runs scenarios on a pool of workers and returns the results ordered
// by material, mass and source temperature. Cancelling ctx stops handing
// out work; finished results are still returned.
func Sweep(ctx context.Context, scenarios []Scenario, workers int) []Result {
	workers = max(workers, 1)

	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- Run(s)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, s := range scenarios {
			select {
			case jobs <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	order := map[material.Key]int{}
	for i, k := range material.Keys() {
		order[k] = i
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Scenario, all[j].Scenario
		if a.Material != b.Material {
			return order[a.Material] < order[b.Material]
		}
		if a.Mass != b.Mass {
			return a.Mass < b.Mass
		}
		return a.HotSource < b.HotSource
	})
	return all
}

// Grid builds the cross product of materials, masses and source
// temperatures starting from initialTemp.
func Grid(keys []material.Key, masses, hot []float64, initialTemp, step, limit float64) []Scenario {
	var out []Scenario
	for _, k := range keys {
		for _, m := range masses {
			for _, h := range hot {
				out = append(out, Scenario{Material: k, Mass: m, HotSource: h, InitialTemp: initialTemp, Step: step, Limit: limit})
			}
		}
	}
	return out
}

// WriteTable prints results as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "material\tmass\thot\tsimulated\tpredicted\terr%\tcomplete\tticks\t")
	for _, r := range results {
		s := r.Scenario
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%g\t%g\terror: %v\t\t\t\t\t\n", s.Material, s.Mass, s.HotSource, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\t%s\t%s\t%s\t%d\t\n",
			s.Material, s.Mass, s.HotSource,
			seconds(r.Simulated, r.Reached), seconds(r.Predicted, r.Predictable),
			percent(r.RelError()), seconds(r.Complete, r.Complete >= 0), r.Ticks)
	}
	return tw.Flush()
}

func seconds(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1fs", v)
}

func percent(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v*100)
}
