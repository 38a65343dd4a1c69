package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/highscore"
	"github.com/plus3/dotris/input"
	"github.com/plus3/dotris/session"
	"github.com/plus3/dotris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	players := flag.Int("players", 64, "The number of simulated players.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pieces and random input.")
	chance := flag.Float64("press-chance", 0.3, "Chance per tick that a player presses a button.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Keep session and highscore logging during the run.")
	flag.Parse()

	log.Println("Starting dotris stress test...")

	in := input.NewManager()
	sessions := session.NewManager(in, tetris.NewRandomizer(*seed), highscore.NewTable(nil), session.DefaultMapping(), *players)
	tally := &Tally{Source: sessions}

	scheduler := engine.NewScheduler()
	scheduler.Register(&input.PollSystem{Poller: NewRandomPoller(*seed, *players, *chance), Sink: in})
	scheduler.Register(in)
	scheduler.Register(sessions)
	scheduler.Register(display.NewSystem(sessions))
	scheduler.Register(tally)

	report := &Report{
		Duration:       *duration,
		Players:        *players,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d players for %s...\n", *players, *duration)
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	report.Tally = *tally
	report.Tally.Source = nil
	runtime.ReadMemStats(&report.MemStatsEnd)
	log.SetOutput(os.Stderr)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
