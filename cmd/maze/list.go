package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available algorithms",
	Long:  `Shows the generators and solvers registered in the visualizer.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	printInfos("Generators", registry.Generators())
	fmt.Println()
	printInfos("Solvers", registry.Solvers())

	fmt.Println()
	fmt.Println("Run 'maze run --generator <id> --solver <id>' to watch a pair.")
}

func printInfos(heading string, infos []registry.Info) {
	fmt.Printf("%s:\n\n", heading)

	if len(infos) == 0 {
		fmt.Println("  none registered")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Title)
	}
}
