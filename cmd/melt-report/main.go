package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/ThomasA12354656/heat/internal/material"
	"github.com/ThomasA12354656/heat/internal/report"
)

func main() {
	materials := flag.String("materials", strings.Join(material.Names(), ","), "comma-separated material keys")
	masses := flag.String("masses", "0.5,1,2", "comma-separated masses in kg")
	hot := flag.String("hot", "500,1000,1500", "comma-separated source temperatures in C")
	initial := flag.Float64("initial", -10, "initial temperature in C")
	step := flag.Float64("step", 0.05, "fixed tick length in seconds")
	limit := flag.Float64("limit", 600, "simulated time cap per scenario in seconds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	var keys []material.Key
	for _, k := range strings.Split(*materials, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, material.Key(k))
		}
	}
	massList, err := parseFloats(*masses)
	if err != nil {
		log.Fatalf("masses: %v", err)
	}
	hotList, err := parseFloats(*hot)
	if err != nil {
		log.Fatalf("hot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarios := report.Grid(keys, massList, hotList, *initial, *step, *limit)
	fmt.Printf("Running %d scenarios (%d workers, dt=%gs, limit %gs)\n\n", len(scenarios), *workers, *step, *limit)

	start := time.Now()
	results := report.Sweep(ctx, scenarios, *workers)
	if err := report.WriteTable(os.Stdout, results); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n%d/%d scenarios in %s\n", len(results), len(scenarios), time.Since(start).Round(time.Millisecond))
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
