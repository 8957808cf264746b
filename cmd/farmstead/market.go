package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmstead/internal/config"
	"github.com/vovakirdan/farmstead/internal/farm"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Show the item price table",
	Long:  `Display the buy and sell prices of every item, as configured.`,
	Run:   runMarket,
}

func runMarket(cmd *cobra.Command, args []string) {
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

	fmt.Println("Market prices:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %s\n", "Item", "Buy", "Sell")
	fmt.Printf("  %-12s  %-6s  %s\n", "----", "---", "----")

	for _, item := range farm.AllItems() {
		price := tables.Prices[item]
		buy := "-"
		if price.Purchasable() {
			buy = fmt.Sprintf("$%d", price.Buy)
		}
		fmt.Printf("  %-12s  %-6s  $%d\n", item, buy, price.Sell)
	}
}
