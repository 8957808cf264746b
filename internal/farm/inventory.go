package farm

// Inventory maps item kinds to owned quantities. An item can be "known"
// with an explicit zero quantity, which is distinct from absent: known
// items stay listed and selectable even when the player owns none.
type Inventory struct {
	counts map[Item]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[Item]int)}
}

// Add credits the quantity, creating the entry if absent. Adding zero
// registers the item as known without granting any units.
func (inv *Inventory) Add(item Item, n int) {
	if n < 0 {
		return
	}
	inv.counts[item] += n
}

// Remove debits the quantity. Quantities never go negative: removing more
// than is owned is rejected without mutation. The entry stays known at
// zero rather than disappearing.
func (inv *Inventory) Remove(item Item, n int) error {
	if n < 0 {
		return ErrInsufficientInventory
	}
	have, ok := inv.counts[item]
	if !ok || have < n {
		return ErrInsufficientInventory
	}
	inv.counts[item] = have - n
	return nil
}

// Count returns the owned quantity, zero for unknown items.
func (inv *Inventory) Count(item Item) int {
	return inv.counts[item]
}

// Known reports whether the item has an entry, including zero entries.
func (inv *Inventory) Known(item Item) bool {
	_, ok := inv.counts[item]
	return ok
}

// Items returns the known items in declaration order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.counts))
	for i := Item(0); i < itemCount; i++ {
		if _, ok := inv.counts[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Counts returns a copy of the item-to-quantity mapping.
func (inv *Inventory) Counts() map[Item]int {
	out := make(map[Item]int, len(inv.counts))
	for item, n := range inv.counts {
		out[item] = n
	}
	return out
}
