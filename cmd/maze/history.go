package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs and per-algorithm statistics",
	Long: `Display the most recent finished runs and averages for every
generator/solver pair that has been run.

A run is recorded when the solver finishes, both in the local
visualizer and in SSH sessions.

Examples:
  maze history
  maze history --limit 50
  maze history --db ./runs.db
  maze history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of recent runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'maze run' and let the solver finish to record one!")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-6s  %-7s  %6s  %6s  %5s  %s\n",
		"Date", "Generator", "Solver", "Size", "Gen", "Solve", "Path", "User")
	fmt.Printf("  %-16s  %-12s  %-6s  %-7s  %6s  %6s  %5s  %s\n",
		"----", "---------", "------", "----", "---", "-----", "----", "----")
	for _, r := range runs {
		path := "-"
		if r.Solved {
			path = fmt.Sprintf("%d", r.PathLength)
		}
		fmt.Printf("  %-16s  %-12s  %-6s  %-7s  %6d  %6d  %5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Generator,
			r.Solver,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.GenerateSteps,
			r.SolveSteps,
			path,
			r.Session,
		)
	}

	stats, err := store.AlgorithmStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("By algorithm")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %5s  %6s  %8s  %9s  %8s\n",
		"Generator", "Solver", "Runs", "Solved", "Avg gen", "Avg solve", "Avg path")
	fmt.Printf("  %-12s  %-6s  %5s  %6s  %8s  %9s  %8s\n",
		"---------", "------", "----", "------", "-------", "---------", "--------")
	for _, s := range stats {
		fmt.Printf("  %-12s  %-6s  %5d  %6d  %8.1f  %9.1f  %8.1f\n",
			s.Generator, s.Solver, s.Runs, s.Solved, s.AvgGenerate, s.AvgSolve, s.AvgPathLength)
	}
}
