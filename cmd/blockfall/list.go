package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available engines",
	Long:  `Shows a list of all board engines registered in blockfall.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	engines := registry.List()

	if len(engines) == 0 {
		fmt.Println("No engines available.")
		return
	}

	fmt.Println("Available engines:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range engines {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, e := range engines {
		fmt.Printf("  %-*s  %s\n", maxNameLen, e.Name, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'blockfall play <name>' to play with an engine.")
}
