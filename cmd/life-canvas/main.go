//go:build ebiten

package main

import (
	"errors"
	"flag"
	stdlog "log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"life-canvas/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		stdlog.Fatal(err)
	}
	logger := cfg.Logger(os.Stderr)

	game := app.New(cfg, logger)

	ebiten.SetWindowTitle("life-canvas")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		stdlog.Fatal(err)
	}
	logger.Infof("stopped after %d generations", game.Sim().Generation())
}
