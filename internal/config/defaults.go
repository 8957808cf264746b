package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the stock farm configuration. Kept in sync
// with defaults/farm.yaml as the fallback when the embed cannot parse.
func DefaultFarmConfig() FarmConfig {
	buy := func(n int) *int { return &n }
	return FarmConfig{
		Day: DayConfig{MaxEnergy: 100},
		Species: map[string]SpeciesConfig{
			"potato": {MaxStage: 3, YieldItem: "Potato", YieldAmount: 1},
			"kale":   {MaxStage: 5, YieldItem: "Kale", YieldAmount: 2},
			"berry":  {MaxStage: 6, YieldItem: "Berry", YieldAmount: 3},
		},
		Prices: map[string]PriceConfig{
			"Potato Seed": {Buy: buy(10), Sell: 5},
			"Kale Seed":   {Buy: buy(25), Sell: 10},
			"Berry Seed":  {Buy: buy(40), Sell: 20},
			"Potato":      {Sell: 20},
			"Kale":        {Sell: 40},
			"Berry":       {Sell: 60},
		},
	}
}

// GetDefaultYAML returns the embedded default farm YAML.
func GetDefaultYAML() []byte {
	return defaultFarmYAML
}
