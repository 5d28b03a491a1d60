package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an algorithm picker menu",
	Long: `Start the visualizer in interactive menu mode.

Pick a generator in the left column and a solver in the right one, then
press Enter. Esc in the visualizer returns to the menu. Tab opens the run
history.

Controls:
  Up/Down/j/k     - Navigate a column
  Left/Right/h/l  - Switch column
  Enter/Space     - Start
  Tab             - Run history
  Q               - Quit

Examples:
  maze menu
  maze menu --fps 30
  maze menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	base := baseOptions(cmd, cfg)

	logger, logCloser := openLogger("maze", nil)
	base.Logger = logger

	store := openStore()
	err := tui.RunSession(base, store)

	if store != nil {
		store.Close()
	}
	logCloser.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
