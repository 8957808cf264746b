package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmstead/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List all available scenarios",
	Long:  `Shows a list of all scenarios registered in the simulator.`,
	Run:   runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	scenarios := scenario.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, sc := range scenarios {
		if len(sc.ID) > maxIDLen {
			maxIDLen = len(sc.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "----")

	// Print scenarios
	for _, sc := range scenarios {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, sc.ID, sc.Size, sc.Name)
	}

	fmt.Println()
	fmt.Println("Run 'farmstead run <id>' to play a scenario.")
}
