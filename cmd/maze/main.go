// maze is a terminal visualizer for maze generation and solving algorithms.
//
// Usage:
//
//	maze run                 - Generate and solve one maze
//	maze menu                - Pick algorithms interactively
//	maze list                - List available generators and solvers
//	maze history             - Show recent runs and per-algorithm stats
//	maze serve               - Start SSH server for remote viewing
//	maze bench               - Run mazes headless and print step counts
//
// Global flags:
//
//	--fps <rate>        - Set host frame rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path>         - Set database path (default: ~/.maze/runs.db)
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import algorithms to register them
	_ "github.com/vovakirdan/tui-maze/internal/generators"
	_ "github.com/vovakirdan/tui-maze/internal/solvers"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "TUI Maze - Watch mazes being generated and solved",
	Long: `TUI Maze animates maze algorithms step by step in your terminal:
first a generator carves a perfect maze, then a solver searches it
from the top-left to the bottom-right corner.

Available commands:
  run      - Generate and solve one maze
  menu     - Interactive algorithm picker
  list     - Show all available algorithms
  history  - View recent runs and statistics
  serve    - Start SSH server for remote viewing
  bench    - Run mazes without a terminal

Examples:
  maze run
  maze run --generator wilson --solver dfs --speed 200
  maze menu
  maze serve --ssh :2222
  maze bench --runs 20 --width 30 --height 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
}
