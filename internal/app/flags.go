package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"life-canvas/internal/game"
	"life-canvas/internal/log"
	"life-canvas/internal/seed"
)

// ErrInvalidConfig reports a flag combination that cannot run.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Width    int
	Height   int
	CellSize int
	MinCell  int
	MaxCell  int
	Speed    int
	MaxSpeed int
	Density  float64
	Seed     int64
	TPS      int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1024,
		Height:   768,
		CellSize: 10,
		MinCell:  2,
		MaxCell:  50,
		Speed:    10,
		MaxSpeed: 60,
		Density:  seed.DefaultDensity,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.MinCell, "min-cell", c.MinCell, "smallest cell size offered by the controls")
	fs.IntVar(&c.MaxCell, "max-cell", c.MaxCell, "largest cell size offered by the controls")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "fastest speed offered by the controls")
	fs.Float64Var(&c.Density, "density", c.Density, "chance a cell is alive after randomize")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, error, none")
}

// Validate rejects values the controls cannot represent.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.MinCell < 1 || c.MaxCell < c.MinCell:
		return fmt.Errorf("%w: cell range [%d, %d]", ErrInvalidConfig, c.MinCell, c.MaxCell)
	case c.CellSize < c.MinCell || c.CellSize > c.MaxCell:
		return fmt.Errorf("%w: cell size %d outside [%d, %d]", ErrInvalidConfig, c.CellSize, c.MinCell, c.MaxCell)
	case c.MaxSpeed < 1:
		return fmt.Errorf("%w: max speed %d", ErrInvalidConfig, c.MaxSpeed)
	case c.Speed < 1 || c.Speed > c.MaxSpeed:
		return fmt.Errorf("%w: speed %d outside [1, %d]", ErrInvalidConfig, c.Speed, c.MaxSpeed)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %.2f outside [0, 1]", ErrInvalidConfig, c.Density)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// Logger builds the leveled logger selected by LogLevel.
func (c *Config) Logger(out io.Writer) *log.Logger {
	return log.New(out, log.LevelFromString(c.LogLevel))
}

// Options converts the flags into game options.
func (c *Config) Options(logger *log.Logger) game.Options {
	opts := game.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.CellSize = c.CellSize
	opts.Speed = c.Speed
	opts.Density = c.Density
	opts.Seed = c.Seed
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.SpeedControl.Max = c.MaxSpeed
	opts.CellControl.Min = c.MinCell
	opts.CellControl.Max = c.MaxCell
	opts.Logger = logger
	return opts
}
