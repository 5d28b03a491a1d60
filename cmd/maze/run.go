package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/phase"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var (
	flagGenerator string
	flagSolver    string
	flagWidth     int
	flagHeight    int
	flagSpeed     float64
	flagInstant   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate and solve one maze",
	Long: `Animate one maze: the generator carves it, then the solver searches
a path from the top-left to the bottom-right corner.

The visualizer starts paused. Buttons can be clicked with the mouse.

Controls:
  Space/P      - Play/Pause
  N/Right      - Single step (while paused)
  I/Enter      - Finish the current phase instantly
  R            - Reset with a new maze
  +/-          - Faster/slower animation
  Ctrl+S       - Save a text screenshot to ~/.maze/screenshots
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  maze run
  maze run --generator kruskal --solver dfs
  maze run --width 30 --height 15 --speed 120
  maze run --seed 42 --instant`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagGenerator, "generator", "g", "", "Generator ID (see 'maze list')")
	runCmd.Flags().StringVarP(&flagSolver, "solver", "s", "", "Solver ID (see 'maze list')")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (0 = fit the terminal)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (0 = fit the terminal)")
	runCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Algorithm steps per second")
	runCmd.Flags().BoolVar(&flagInstant, "instant", false, "Show the solved maze right away")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	opts := baseOptions(cmd, cfg)

	if cmd.Flags().Changed("generator") {
		opts.Generator = flagGenerator
	}
	if cmd.Flags().Changed("solver") {
		opts.Solver = flagSolver
	}
	if cmd.Flags().Changed("width") {
		opts.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		opts.Height = flagHeight
	}
	if cmd.Flags().Changed("speed") {
		opts.Interval = phase.IntervalForRate(flagSpeed)
	}
	opts.Instant = flagInstant

	gen, err := registry.Generator(opts.Generator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown generator %q\n", opts.Generator)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available algorithms.")
		os.Exit(1)
	}
	sol, err := registry.Solver(opts.Solver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown solver %q\n", opts.Solver)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available algorithms.")
		os.Exit(1)
	}
	opts.GeneratorFactory = gen
	opts.SolverFactory = sol

	// The TUI owns the terminal, so logs go to --log-file or nowhere.
	logger, logCloser := openLogger("maze", nil)
	opts.Logger = logger

	store := openStore()
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running visualizer: %v\n", runErr)
		os.Exit(1)
	}
}
