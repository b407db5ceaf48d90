// Package batch runs headless Life trials in parallel and reports how each
// seeded board settles.
package batch

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-canvas/internal/core"
	"life-canvas/internal/life"
	"life-canvas/internal/log"
	"life-canvas/internal/seed"
)

// ErrInvalidConfig reports a trial configuration that cannot run.
var ErrInvalidConfig = errors.New("invalid batch config")

// Config describes a set of trials. Trial i is seeded with Seed+i.
type Config struct {
	Rows, Cols int
	Steps      int
	Trials     int
	Workers    int
	Seed       int64
	Density    float64
	Noise      bool
	NoiseParam seed.NoiseParams
}

// DefaultConfig returns a small sweep over 64×64 boards.
func DefaultConfig() Config {
	return Config{
		Rows:       64,
		Cols:       64,
		Steps:      500,
		Trials:     8,
		Workers:    runtime.NumCPU(),
		Seed:       1,
		Density:    seed.DefaultDensity,
		NoiseParam: seed.DefaultNoise,
	}
}

// Validate rejects sizes and counts that cannot run.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, c.Steps)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d", ErrInvalidConfig, c.Trials)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %.2f", ErrInvalidConfig, c.Density)
	}
	return nil
}

// Result summarises one trial.
type Result struct {
	Trial int
	Seed  int64

	Initial int
	Final   int
	Peak    int

	// SettledAt is the first generation that repeats an earlier board, or -1
	// if none did within the step budget. Period is the cycle length; a
	// still life has period 1.
	SettledAt int
	Period    int

	Population []float64
}

// Extinct reports whether the board died out.
func (r Result) Extinct() bool { return r.Final == 0 }

// Settled reports whether a repeated board was found.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

// Outcome names how the trial ended.
func (r Result) Outcome() string {
	switch {
	case r.Extinct():
		return "extinct"
	case !r.Settled():
		return "active"
	case r.Period == 1:
		return "still"
	default:
		return fmt.Sprintf("period %d", r.Period)
	}
}

func (r Result) String() string {
	return fmt.Sprintf("trial %d seed %d: %s, population %d -> %d (peak %d)",
		r.Trial, r.Seed, r.Outcome(), r.Initial, r.Final, r.Peak)
}

// Simulate steps g up to steps times, recording the population and the first
// repeated board. It returns early only when ctx is cancelled.
func Simulate(ctx context.Context, g *core.Grid, steps int) (Result, error) {
	res := Result{SettledAt: -1, Population: make([]float64, 0, steps+1)}
	seen := make(map[[md5.Size]byte]int, steps+1)

	cur, next := g.Clone(), &core.Grid{}
	record := func(gen int) {
		pop := cur.Population()
		res.Population = append(res.Population, float64(pop))
		res.Final = pop
		res.Peak = max(res.Peak, pop)
		if res.Settled() {
			return
		}
		sum := md5.Sum(cur.Cells())
		if first, ok := seen[sum]; ok {
			res.SettledAt = gen
			res.Period = gen - first
			return
		}
		seen[sum] = gen
	}

	record(0)
	res.Initial = res.Final
	for gen := 1; gen <= steps; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		life.StepInto(next, cur)
		cur, next = next, cur
		record(gen)
	}
	return res, nil
}

// Board builds the starting board for one trial.
func (c Config) Board(trial int) (*core.Grid, int64) {
	s := c.Seed + int64(trial)
	g := core.NewGrid(c.Rows, c.Cols)
	if c.Noise {
		g.SetAll(seed.Noise(s, c.NoiseParam))
	} else {
		g.SetAll(seed.Random(core.NewRNG(s), c.Density))
	}
	return g, s
}

// Run executes every trial with at most cfg.Workers running at once. Results
// are returned in trial order.
func Run(ctx context.Context, cfg Config, logger *log.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}

	results := make([]Result, cfg.Trials)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.Workers, 1))
	for i := range cfg.Trials {
		eg.Go(func() error {
			board, s := cfg.Board(i)
			res, err := Simulate(ctx, board, cfg.Steps)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			res.Trial, res.Seed = i, s
			results[i] = res
			logger.Debugf("%s", res)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates a run.
type Summary struct {
	Trials   int
	Extinct  int
	Still    int
	Periodic int
	Active   int

	MeanFinal float64
	// MeanPopulation is the per-generation mean across trials.
	MeanPopulation []float64
}

// Summarize aggregates results that share a step budget.
func Summarize(results []Result) Summary {
	s := Summary{Trials: len(results)}
	if len(results) == 0 {
		return s
	}
	s.MeanPopulation = make([]float64, len(results[0].Population))
	for _, r := range results {
		switch {
		case r.Extinct():
			s.Extinct++
		case !r.Settled():
			s.Active++
		case r.Period == 1:
			s.Still++
		default:
			s.Periodic++
		}
		s.MeanFinal += float64(r.Final)
		for i := range min(len(s.MeanPopulation), len(r.Population)) {
			s.MeanPopulation[i] += r.Population[i]
		}
	}
	n := float64(len(results))
	s.MeanFinal /= n
	for i := range s.MeanPopulation {
		s.MeanPopulation[i] /= n
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d trials: %d extinct, %d still, %d periodic, %d active; mean final population %.1f",
		s.Trials, s.Extinct, s.Still, s.Periodic, s.Active, s.MeanFinal)
}
