package batch

import (
	"context"
	"errors"
	"testing"

	"life-canvas/internal/core"
)

func board(rows, cols int, cells ...[2]int) *core.Grid {
	g := core.NewGrid(rows, cols)
	for _, c := range cells {
		g.Set(c[0], c[1], 1)
	}
	return g
}

func TestSimulateDetectsCycles(t *testing.T) {
	tests := []struct {
		name      string
		g         *core.Grid
		settledAt int
		period    int
		outcome   string
	}{
		{"block", board(6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3}), 1, 1, "still"},
		{"blinker", board(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}), 2, 2, "period 2"},
		{"lone cell", board(5, 5, [2]int{2, 2}), 2, 1, "extinct"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Simulate(context.Background(), tc.g, 10)
			if err != nil {
				t.Fatal(err)
			}
			if res.SettledAt != tc.settledAt || res.Period != tc.period {
				t.Fatalf("settled at %d period %d, want %d/%d", res.SettledAt, res.Period, tc.settledAt, tc.period)
			}
			if res.Outcome() != tc.outcome {
				t.Fatalf("outcome %q, want %q", res.Outcome(), tc.outcome)
			}
			if len(res.Population) != 11 {
				t.Fatalf("recorded %d generations, want 11", len(res.Population))
			}
		})
	}
}

func TestSimulateLeavesInputUntouched(t *testing.T) {
	g := board(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := g.Clone()
	if _, err := Simulate(context.Background(), g, 3); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(before) {
		t.Fatal("Simulate modified its input")
	}
}

func TestGliderStaysActiveWithinBudget(t *testing.T) {
	g := board(8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	res, err := Simulate(context.Background(), g, 20)
	if err != nil {
		t.Fatal(err)
	}
	if res.Settled() || res.Outcome() != "active" {
		t.Fatalf("glider settled at %d", res.SettledAt)
	}
	if res.Initial != 5 || res.Final != 5 || res.Peak != 5 {
		t.Fatalf("population %d -> %d peak %d, want 5", res.Initial, res.Final, res.Peak)
	}
}

func TestRunIsDeterministicAndOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Steps, cfg.Trials, cfg.Workers = 16, 16, 40, 6, 3
	a, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 1
	b, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Trial != i || a[i].Seed != cfg.Seed+int64(i) {
			t.Fatalf("result %d is trial %d seed %d", i, a[i].Trial, a[i].Seed)
		}
		if a[i].Final != b[i].Final || a[i].SettledAt != b[i].SettledAt {
			t.Fatalf("trial %d differs between runs", i)
		}
	}
}

func TestRunNoiseBoards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Steps, cfg.Trials = 16, 16, 5, 2
	cfg.Noise = true
	res, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || len(res[0].Population) != 6 {
		t.Fatalf("unexpected results %+v", res)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := DefaultConfig()
	cfg.Trials = 2
	if _, err := Run(ctx, cfg, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Rows = 0 },
		func(c *Config) { c.Steps = -1 },
		func(c *Config) { c.Trials = 0 },
		func(c *Config) { c.Density = 1.5 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: err = %v", i, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Final: 0, SettledAt: 2, Period: 1, Population: []float64{4, 2, 0}},
		{Final: 4, SettledAt: 1, Period: 1, Population: []float64{4, 4, 4}},
		{Final: 3, SettledAt: 2, Period: 2, Population: []float64{3, 3, 3}},
		{Final: 5, SettledAt: -1, Population: []float64{5, 5, 5}},
	}
	s := Summarize(results)
	if s.Extinct != 1 || s.Still != 1 || s.Periodic != 1 || s.Active != 1 {
		t.Fatalf("summary %+v", s)
	}
	if s.MeanFinal != 3 {
		t.Fatalf("mean final %.2f, want 3", s.MeanFinal)
	}
	if s.MeanPopulation[0] != 4 || s.MeanPopulation[2] != 3 {
		t.Fatalf("mean population %v", s.MeanPopulation)
	}
}
