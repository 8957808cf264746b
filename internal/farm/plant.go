package farm

// Species identifies one of the closed set of plantable crop species.
type Species int

const (
	SpeciesPotato Species = iota
	SpeciesKale
	SpeciesBerry

	speciesCount
)

// String returns the lowercase species name.
func (s Species) String() string {
	switch s {
	case SpeciesPotato:
		return "potato"
	case SpeciesKale:
		return "kale"
	case SpeciesBerry:
		return "berry"
	default:
		return "unknown"
	}
}

// Valid reports whether the value is one of the defined species.
func (s Species) Valid() bool {
	return s >= 0 && s < speciesCount
}

// AllSpecies returns every defined species in declaration order.
func AllSpecies() []Species {
	all := make([]Species, 0, speciesCount)
	for s := Species(0); s < speciesCount; s++ {
		all = append(all, s)
	}
	return all
}

// ParseSpecies resolves a lowercase species name (e.g. "potato").
func ParseSpecies(name string) (Species, bool) {
	for s := Species(0); s < speciesCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// GrowthConfig holds the static per-species growth parameters.
type GrowthConfig struct {
	MaxStage    int  // Stage at which the plant is mature
	YieldItem   Item // Item produced on harvest
	YieldAmount int  // Units produced on harvest
}

// Plant is a single crop occupying one soil tile. It is created at stage 0
// and advances one stage per elapsed day until it reaches its species'
// maximum stage, at which point it can be harvested.
type Plant struct {
	species Species
	stage   int
	growth  GrowthConfig
}

// NewPlant creates a stage-0 plant of the given species.
func NewPlant(species Species, growth GrowthConfig) *Plant {
	return &Plant{species: species, growth: growth}
}

// AdvanceStage moves the plant one stage closer to maturity.
// Called once per elapsed day; saturates at the species' maximum stage.
func (p *Plant) AdvanceStage() {
	if p.stage < p.growth.MaxStage {
		p.stage++
	}
}

// CanHarvest reports whether the plant has reached its mature stage.
func (p *Plant) CanHarvest() bool {
	return p.stage >= p.growth.MaxStage
}

// Yield returns the item stack produced when this plant is harvested.
func (p *Plant) Yield() ItemStack {
	return ItemStack{Item: p.growth.YieldItem, Quantity: p.growth.YieldAmount}
}

// Species returns the plant's species.
func (p *Plant) Species() Species {
	return p.species
}

// Name returns the lowercase species name.
func (p *Plant) Name() string {
	return p.species.String()
}

// Stage returns the current growth stage, in [0, MaxStage].
func (p *Plant) Stage() int {
	return p.stage
}

// MaxStage returns the stage at which the plant matures.
func (p *Plant) MaxStage() int {
	return p.growth.MaxStage
}
