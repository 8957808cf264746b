package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmstead/internal/config"
	"github.com/vovakirdan/farmstead/internal/farm"
	"github.com/vovakirdan/farmstead/internal/platform/headless"
	"github.com/vovakirdan/farmstead/internal/scenario"
	"github.com/vovakirdan/farmstead/internal/storage"
)

var (
	flagScript string
	flagMap    string
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run an action script against a scenario",
	Long: `Execute an action script against the given scenario (default: meadow)
and record the result in the run database.

The script is read from --script, or from stdin when omitted. One action
per line; '#' starts a comment.

Actions:
  up/down/left/right (or w/s/a/d)  - Move the player
  till / untill                    - Work the ground under the player
  select <item>                    - Select an inventory item
  plant                            - Sow the selected seed
  harvest / remove                 - Harvest or destroy the plant underfoot
  buy <item> / sell <item>         - Trade at the market
  day                              - Advance to the next day

Examples:
  farmstead run meadow --script day1.txt
  farmstead run clearing < actions.txt
  farmstead run --map ./my-farm.yaml --script plan.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "Path to action script (default: stdin)")
	runCmd.Flags().StringVar(&flagMap, "map", "", "Path to a custom scenario YAML map file")
}

func runRun(cmd *cobra.Command, args []string) {
	// Load the static tables
	cfg, err := config.LoadFarm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	tables, err := cfg.Tables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Resolve the scenario: a custom map file wins over a registered ID
	var sc scenario.Scenario
	if flagMap != "" {
		sc, err = scenario.NewLoader(".").LoadFile(flagMap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		id := scenario.DefaultID
		if len(args) > 0 {
			id = args[0]
		}
		if !scenario.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'farmstead scenarios' to see available scenarios.")
			os.Exit(1)
		}
		sc, err = scenario.Get(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Read the action script
	in := os.Stdin
	if flagScript != "" {
		f, err := os.Open(flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	actions, err := headless.ParseScript(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runner, err := headless.NewRunner(sc, tables, store)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := runner.Run(actions)
	runID, commitErr := runner.Commit()

	if store != nil {
		store.Close()
	}

	printReport(report, runID)

	if commitErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", commitErr)
	}
}

func printReport(report headless.Report, runID int64) {
	fmt.Printf("Scenario: %s\n", report.ScenarioID)
	fmt.Printf("Days elapsed: %d\n", report.Days)
	fmt.Printf("Money: $%d\n", report.Money)
	fmt.Printf("Energy: %d\n", report.Energy)
	fmt.Printf("Actions: %d applied, %d rejected\n", report.Applied, report.Rejected)

	if len(report.Harvested) > 0 {
		items := make([]farm.Item, 0, len(report.Harvested))
		for item := range report.Harvested {
			items = append(items, item)
		}
		sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })

		fmt.Println("Harvested:")
		for _, item := range items {
			fmt.Printf("  %s x%d\n", item, report.Harvested[item])
		}
	}

	if runID > 0 {
		fmt.Printf("Recorded as run #%d\n", runID)
	}
}
