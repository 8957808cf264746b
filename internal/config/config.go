// Package config provides YAML-based loading of the static farm tables:
// plant growth parameters, item prices, and day-cycle settings. The
// tables are loaded once at startup and treated as immutable for the
// process lifetime.
package config

import (
	"fmt"

	"github.com/vovakirdan/farmstead/internal/farm"
)

// FarmConfig contains all static configuration for the farm simulation.
type FarmConfig struct {
	Day     DayConfig                `yaml:"day"`
	Species map[string]SpeciesConfig `yaml:"species"`
	Prices  map[string]PriceConfig   `yaml:"prices"`
}

// DayConfig defines the day-cycle parameters.
type DayConfig struct {
	MaxEnergy int `yaml:"max_energy"`
}

// SpeciesConfig defines growth parameters for one species, keyed by the
// lowercase species name.
type SpeciesConfig struct {
	MaxStage    int    `yaml:"max_stage"`
	YieldItem   string `yaml:"yield_item"`
	YieldAmount int    `yaml:"yield_amount"`
}

// PriceConfig defines the prices for one item, keyed by the item's
// display name. A missing buy price means the item cannot be bought.
type PriceConfig struct {
	Buy  *int `yaml:"buy,omitempty"`
	Sell int  `yaml:"sell"`
}

// Validate checks the config for internal consistency: every species
// needs growth parameters and every item a price entry, stages and
// yields must be positive, prices non-negative, and all names known.
func (c FarmConfig) Validate() error {
	if c.Day.MaxEnergy <= 0 {
		return fmt.Errorf("config: max_energy must be positive, got %d", c.Day.MaxEnergy)
	}
	for _, sp := range farm.AllSpecies() {
		if _, ok := c.Species[sp.String()]; !ok {
			return fmt.Errorf("config: missing species %q", sp)
		}
	}
	for name, sc := range c.Species {
		if _, ok := farm.ParseSpecies(name); !ok {
			return fmt.Errorf("config: unknown species %q", name)
		}
		if sc.MaxStage <= 0 {
			return fmt.Errorf("config: species %q: max_stage must be positive", name)
		}
		if sc.YieldAmount <= 0 {
			return fmt.Errorf("config: species %q: yield_amount must be positive", name)
		}
		item, ok := farm.ParseItem(sc.YieldItem)
		if !ok {
			return fmt.Errorf("config: species %q: unknown yield item %q", name, sc.YieldItem)
		}
		if item.IsSeed() {
			return fmt.Errorf("config: species %q: yield item %q is a seed", name, sc.YieldItem)
		}
	}
	for _, item := range farm.AllItems() {
		if _, ok := c.Prices[item.String()]; !ok {
			return fmt.Errorf("config: missing price for %q", item)
		}
	}
	for name, pc := range c.Prices {
		if _, ok := farm.ParseItem(name); !ok {
			return fmt.Errorf("config: unknown item %q", name)
		}
		if pc.Buy != nil && *pc.Buy < 0 {
			return fmt.Errorf("config: item %q: negative buy price", name)
		}
		if pc.Sell < 0 {
			return fmt.Errorf("config: item %q: negative sell price", name)
		}
	}
	return nil
}

// Tables converts the config into the farm core's immutable tables.
// The config is validated first.
func (c FarmConfig) Tables() (farm.Tables, error) {
	if err := c.Validate(); err != nil {
		return farm.Tables{}, err
	}

	growth := make(map[farm.Species]farm.GrowthConfig, len(c.Species))
	for name, sc := range c.Species {
		sp, _ := farm.ParseSpecies(name)
		item, _ := farm.ParseItem(sc.YieldItem)
		growth[sp] = farm.GrowthConfig{
			MaxStage:    sc.MaxStage,
			YieldItem:   item,
			YieldAmount: sc.YieldAmount,
		}
	}

	prices := make(map[farm.Item]farm.PriceConfig, len(c.Prices))
	for name, pc := range c.Prices {
		item, _ := farm.ParseItem(name)
		buy := -1
		if pc.Buy != nil {
			buy = *pc.Buy
		}
		prices[item] = farm.PriceConfig{Buy: buy, Sell: pc.Sell}
	}

	return farm.Tables{
		Growth:    growth,
		Prices:    prices,
		MaxEnergy: c.Day.MaxEnergy,
	}, nil
}
