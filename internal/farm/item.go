// Package farm implements a deterministic, turn-based farming simulation:
// a tile grid, a player with an inventory and money, plants that grow by
// one stage per day, and a day cycle that ties them together. The package
// contains pure logic with no I/O, so a controller can drive it one call
// at a time and read the state back between calls.
package farm

// Item identifies one of the closed set of tradable item kinds.
type Item int

const (
	ItemPotatoSeed Item = iota
	ItemKaleSeed
	ItemBerrySeed
	ItemPotato
	ItemKale
	ItemBerry

	itemCount
)

// String returns the display name of the item.
func (i Item) String() string {
	switch i {
	case ItemPotatoSeed:
		return "Potato Seed"
	case ItemKaleSeed:
		return "Kale Seed"
	case ItemBerrySeed:
		return "Berry Seed"
	case ItemPotato:
		return "Potato"
	case ItemKale:
		return "Kale"
	case ItemBerry:
		return "Berry"
	default:
		return "unknown"
	}
}

// IsSeed reports whether the item can be planted.
func (i Item) IsSeed() bool {
	switch i {
	case ItemPotatoSeed, ItemKaleSeed, ItemBerrySeed:
		return true
	default:
		return false
	}
}

// Species returns the species grown from this item.
// The second return value is false for non-seed items.
func (i Item) Species() (Species, bool) {
	switch i {
	case ItemPotatoSeed:
		return SpeciesPotato, true
	case ItemKaleSeed:
		return SpeciesKale, true
	case ItemBerrySeed:
		return SpeciesBerry, true
	default:
		return 0, false
	}
}

// Valid reports whether the value is one of the defined item kinds.
func (i Item) Valid() bool {
	return i >= 0 && i < itemCount
}

// AllItems returns every defined item kind in declaration order.
func AllItems() []Item {
	items := make([]Item, 0, itemCount)
	for i := Item(0); i < itemCount; i++ {
		items = append(items, i)
	}
	return items
}

// ParseItem resolves a display name (case-sensitive, e.g. "Potato Seed")
// to its item kind.
func ParseItem(name string) (Item, bool) {
	for i := Item(0); i < itemCount; i++ {
		if i.String() == name {
			return i, true
		}
	}
	return 0, false
}

// ItemStack is a quantity of a single item kind, e.g. a harvest yield.
type ItemStack struct {
	Item     Item
	Quantity int
}
