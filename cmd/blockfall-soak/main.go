// Command blockfall-soak plays sessions headlessly with random input for a
// fixed wall-clock duration and prints a report of frame timings and game
// results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Flags(flag.CommandLine)
	maxActions := flag.Int("max-actions", 3, "The most random actions the autoplayer sends per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("flags: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	log.Printf("Running soak test for %s (seed %d)...\n", cfg.SoakDuration, cfg.Seed)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SoakDuration)
	defer cancel()

	report := soak(ctx, cfg, *maxActions)
	report.GCPauseMetrics = *gcPauseMetrics

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// soak drives one scheduler as fast as possible until ctx is done. Simulated
// time advances by one tick per update regardless of how long it took.
func soak(ctx context.Context, cfg config.Config, maxActions int) *Report {
	g := game.New(cfg.GameOptions()...)
	scheduler := loop.NewScheduler(g)

	report := &Report{
		Duration: cfg.SoakDuration,
		Seed:     cfg.Seed,
		TickRate: cfg.TickRate,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	player := newAutoplayer(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1)), maxActions)
	input := &loop.InputSystem{Source: player}
	gravity := &loop.GravitySystem{}
	phases := &loop.PhaseSystem{OnChange: func(from, to game.Phase, g *game.State) {
		if to == game.GameOver {
			report.recordGame(g)
		}
	}}
	scheduler.Register(input)
	scheduler.Register(gravity)
	scheduler.Register(phases)

	runtime.ReadMemStats(&report.MemStatsStart)

	dt := cfg.TickInterval().Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(float64(report.TotalUpdates) * dt * float64(time.Second))
	if g.Phase() == game.Playing {
		report.recordGame(g)
		report.Unfinished = true
	}
	report.Actions = input.Applied
	report.Locks = gravity.Locks
	report.Systems = scheduler.GetStats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}
