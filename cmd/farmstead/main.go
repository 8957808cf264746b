// farmstead is a deterministic tile-farming simulation driven from the
// command line.
//
// Usage:
//
//	farmstead run [scenario]     - Run an action script against a scenario
//	farmstead scenarios          - List available scenarios
//	farmstead ledger <scenario>  - Show recorded runs for a scenario
//	farmstead market             - Show the item price table
//
// Global flags:
//
//	--db <path>      - Set run database path (default: ~/.farmstead/runs.db)
//	--config <path>  - Set farm config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farmstead",
	Short: "Farmstead - A turn-based farming simulation",
	Long: `Farmstead simulates a small farm one action at a time: move around
the grid, till soil, plant seeds, harvest crops, trade at the market,
and advance the day cycle.

Available commands:
  run        - Execute an action script against a scenario
  scenarios  - Show all available scenarios
  ledger     - View recorded runs and their economy
  market     - Show item buy/sell prices

Examples:
  farmstead scenarios
  farmstead run meadow --script day1.txt
  farmstead run --map ./my-farm.yaml < actions.txt
  farmstead ledger meadow`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.farmstead/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to farm config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(marketCmd)
}
