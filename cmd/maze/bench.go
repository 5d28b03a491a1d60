package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/phase"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagBenchRuns      int
	flagBenchWidth     int
	flagBenchHeight    int
	flagBenchGenerator string
	flagBenchSolver    string
	flagBenchSave      bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run mazes without a terminal and print step counts",
	Long: `Generate and solve mazes headless, as fast as possible, and print
the average number of steps each phase took.

Without --generator or --solver every registered algorithm is used, so
the default compares every pair on the same seeds.

Examples:
  maze bench
  maze bench --runs 50 --width 40 --height 20
  maze bench --generator wilson --seed 1
  maze bench --save   # record the runs in the history database`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&flagBenchRuns, "runs", "n", 5, "Runs per generator/solver pair")
	benchCmd.Flags().IntVar(&flagBenchWidth, "width", 20, "Maze width in cells")
	benchCmd.Flags().IntVar(&flagBenchHeight, "height", 20, "Maze height in cells")
	benchCmd.Flags().StringVarP(&flagBenchGenerator, "generator", "g", "", "Only this generator")
	benchCmd.Flags().StringVarP(&flagBenchSolver, "solver", "s", "", "Only this solver")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Store every run in the history database")
}

// benchTotals accumulates results for one generator/solver pair.
type benchTotals struct {
	runs     int
	solved   int
	generate int
	solve    int
	path     int
	elapsed  time.Duration
}

func runBench(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	generators := selectIDs(flagBenchGenerator, registry.Generators(), registry.GeneratorExists, "generator")
	solvers := selectIDs(flagBenchSolver, registry.Solvers(), registry.SolverExists, "solver")

	if flagBenchRuns < 1 || flagBenchWidth < 1 || flagBenchHeight < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs, --width and --height must be positive")
		os.Exit(1)
	}

	seed := core.RuntimeConfig{Seed: flagSeed}.Resolved().Seed

	logger, logCloser := openLogger("maze-bench", os.Stderr)
	defer logCloser.Close()

	var store *storage.Store
	if flagBenchSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	fmt.Printf("Benchmark: %d run(s) of %dx%d per pair, seed %d\n\n", flagBenchRuns, flagBenchWidth, flagBenchHeight, seed)
	fmt.Printf("  %-12s  %-6s  %6s  %9s  %9s  %8s  %10s\n",
		"Generator", "Solver", "Solved", "Avg gen", "Avg solve", "Avg path", "Time/run")
	fmt.Printf("  %-12s  %-6s  %6s  %9s  %9s  %8s  %10s\n",
		"---------", "------", "------", "-------", "---------", "--------", "--------")

	for _, genID := range generators {
		for _, solID := range solvers {
			gen, _ := registry.Generator(genID)
			sol, _ := registry.Solver(solID)

			var totals benchTotals
			for i := 0; i < flagBenchRuns; i++ {
				runSeed := seed + int64(i)
				ctrl := phase.NewController(phase.Config{
					Width:     flagBenchWidth,
					Height:    flagBenchHeight,
					Layout:    cfg.MazeLayout(),
					Seed:      runSeed,
					Generator: gen,
					Solver:    sol,
				})

				start := time.Now()
				if _, err := ctrl.CompleteRun(cfg.Limits.MaxInstantSteps); err != nil {
					logger.Warn("run did not finish", "generator", genID, "solver", solID, "seed", runSeed, "error", err)
					continue
				}
				totals.elapsed += time.Since(start)

				path := ctrl.Grid().Path()
				totals.runs++
				totals.generate += ctrl.Steps(phase.Generating)
				totals.solve += ctrl.Steps(phase.Solving)
				if len(path) > 0 {
					totals.solved++
					totals.path += len(path)
				}

				if store != nil {
					_, err := store.SaveRun(storage.Run{
						Session:       "bench",
						Generator:     genID,
						Solver:        solID,
						Width:         flagBenchWidth,
						Height:        flagBenchHeight,
						Seed:          runSeed,
						GenerateSteps: ctrl.Steps(phase.Generating),
						SolveSteps:    ctrl.Steps(phase.Solving),
						PathLength:    len(path),
						Solved:        len(path) > 0,
					})
					if err != nil {
						logger.Warn("could not store run", "error", err)
					}
				}
			}

			printTotals(genID, solID, totals)
		}
	}
}

// selectIDs returns the single requested ID, or every registered one.
func selectIDs(id string, infos []registry.Info, exists func(string) bool, kind string) []string {
	if id != "" {
		if !exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown %s %q\n", kind, id)
			fmt.Fprintln(os.Stderr, "Run 'maze list' to see available algorithms.")
			os.Exit(1)
		}
		return []string{id}
	}

	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

func printTotals(genID, solID string, t benchTotals) {
	if t.runs == 0 {
		fmt.Printf("  %-12s  %-6s  %6s\n", genID, solID, "failed")
		return
	}

	n := float64(t.runs)
	avgPath := 0.0
	if t.solved > 0 {
		avgPath = float64(t.path) / float64(t.solved)
	}
	fmt.Printf("  %-12s  %-6s  %3d/%-2d  %9.1f  %9.1f  %8.1f  %10s\n",
		genID, solID, t.solved, t.runs,
		float64(t.generate)/n,
		float64(t.solve)/n,
		avgPath,
		(t.elapsed / time.Duration(t.runs)).Round(time.Microsecond),
	)
}
