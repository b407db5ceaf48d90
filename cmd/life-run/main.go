package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"

	"github.com/guptarohit/asciigraph"

	"life-canvas/internal/batch"
	"life-canvas/internal/log"
)

func main() {
	cfg := batch.DefaultConfig()
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "generations to simulate per trial")
	flag.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of seeded boards")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel trials")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first trial")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "live cell density for random boards")
	flag.BoolVar(&cfg.Noise, "noise", cfg.Noise, "seed boards from Perlin noise instead of uniform random")
	plot := flag.Bool("plot", true, "print the mean population chart")
	level := flag.String("log-level", "info", "log level: debug, info, error, none")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infof("running %d trials of %d steps on %dx%d boards", cfg.Trials, cfg.Steps, cfg.Rows, cfg.Cols)
	results, err := batch.Run(ctx, cfg, logger)
	if err != nil {
		stdlog.Fatal(err)
	}

	for _, r := range results {
		fmt.Println(r)
	}
	summary := batch.Summarize(results)
	fmt.Printf("\n%s\n", summary)

	if *plot && len(summary.MeanPopulation) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(summary.MeanPopulation,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption("mean population per generation"),
		))
	}
}
