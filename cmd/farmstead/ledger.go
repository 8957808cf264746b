package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmstead/internal/scenario"
	"github.com/vovakirdan/farmstead/internal/storage"
)

var flagRunID int64

var ledgerCmd = &cobra.Command{
	Use:   "ledger <scenario>",
	Short: "Show recorded runs for a scenario",
	Long: `Display the top 10 recorded runs for the specified scenario, ranked
by closing money. Use --run to show the economy events of one run.

Examples:
  farmstead ledger meadow
  farmstead ledger meadow --run 3`,
	Args: cobra.ExactArgs(1),
	Run:  runLedger,
}

func init() {
	ledgerCmd.Flags().Int64Var(&flagRunID, "run", 0, "Show the ledger entries of a single run")
}

func runLedger(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	// Check if scenario exists
	if !scenario.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'farmstead scenarios' to see available scenarios.")
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunID > 0 {
		printRunLedger(store, flagRunID)
		return
	}

	// Get top runs
	runs, err := store.TopRuns(scenarioID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Recorded Runs - %s\n", scenarioID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'farmstead run %s' to record the first run!\n", scenarioID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Run", "Days", "Money", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "---", "----", "-----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  #%-5d  %-6d  $%-7d  %s\n", i+1, entry.ID, entry.Days, entry.Money, dateStr)
	}

	// Show best result
	fmt.Println()
	best, err := store.BestMoney(scenarioID)
	if err == nil {
		fmt.Printf("Best: $%d\n", best)
	}
}

func printRunLedger(store *storage.Store, runID int64) {
	entries, err := store.RunLedger(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving ledger: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ledger - run #%d\n", runID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No economy events recorded for this run.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-4s  %s\n", "Day", "Kind", "Item", "Qty", "Amount")
	fmt.Printf("  %-4s  %-8s  %-12s  %-4s  %s\n", "---", "----", "----", "---", "------")

	total := 0
	for _, e := range entries {
		fmt.Printf("  %-4d  %-8s  %-12s  %-4d  $%d\n", e.Day, e.Kind, e.Item, e.Quantity, e.Amount)
		total += e.Amount
	}

	fmt.Println()
	fmt.Printf("Net: $%d\n", total)
}
