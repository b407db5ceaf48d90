package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"life-canvas/internal/app"
	"life-canvas/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 80, 46, 2
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		stdlog.Fatal(err)
	}

	// The terminal is owned by the UI, so logs only go to a file.
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			stdlog.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	if err := tui.Run(cfg.Options(cfg.Logger(out))); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
