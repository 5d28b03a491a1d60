package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/logging"
	"github.com/vovakirdan/tui-maze/internal/phase"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// terminalSize returns the size of stdout, 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// baseOptions builds visualizer options from the config. Global flags set
// on the command line win over the file.
func baseOptions(cmd *cobra.Command, cfg config.Config) tui.Options {
	// Validated by config.Load.
	palette, _ := cfg.MazePalette()

	fps := cfg.Timing.FPS
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}
	width, height := terminalSize()

	return tui.Options{
		Generator: cfg.Algorithms.Generator,
		Solver:    cfg.Algorithms.Solver,
		Width:     cfg.Grid.Width,
		Height:    cfg.Grid.Height,
		Layout:    cfg.MazeLayout(),
		Palette:   palette,
		RuntimeConfig: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: fps,
			Seed:     flagSeed,
		},
		Interval:    phase.IntervalForRate(cfg.Timing.StepsPerSecond),
		StartPaused: cfg.Timing.StartPaused,
		StepLimit:   cfg.Limits.MaxInstantSteps,
	}
}

// openLogger builds the logger for a command or exits. Without --log-file
// it writes to w; a nil w discards.
func openLogger(prefix string, w io.Writer) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: prefix,
		Writer: w,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// openStore opens the run history database. Failures are reported and the
// caller continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}
