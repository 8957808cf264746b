package farm

// PriceConfig holds the static buy/sell prices of one item kind.
// A negative buy price means the item cannot be bought, only sold.
type PriceConfig struct {
	Buy  int
	Sell int
}

// Purchasable reports whether the item can be bought at all.
func (p PriceConfig) Purchasable() bool {
	return p.Buy >= 0
}

// Tables bundles the immutable configuration the model is constructed
// with: growth parameters per species, prices per item, and the energy
// ceiling restored by each new day.
type Tables struct {
	Growth    map[Species]GrowthConfig
	Prices    map[Item]PriceConfig
	MaxEnergy int
}

// DefaultTables returns the stock species and price tables.
func DefaultTables() Tables {
	return Tables{
		Growth: map[Species]GrowthConfig{
			SpeciesPotato: {MaxStage: 3, YieldItem: ItemPotato, YieldAmount: 1},
			SpeciesKale:   {MaxStage: 5, YieldItem: ItemKale, YieldAmount: 2},
			SpeciesBerry:  {MaxStage: 6, YieldItem: ItemBerry, YieldAmount: 3},
		},
		Prices: map[Item]PriceConfig{
			ItemPotatoSeed: {Buy: 10, Sell: 5},
			ItemKaleSeed:   {Buy: 25, Sell: 10},
			ItemBerrySeed:  {Buy: 40, Sell: 20},
			ItemPotato:     {Buy: -1, Sell: 20},
			ItemKale:       {Buy: -1, Sell: 40},
			ItemBerry:      {Buy: -1, Sell: 60},
		},
		MaxEnergy: 100,
	}
}
