package farm

// Direction is one of the four cardinal facing directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a lowercase direction name.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return 0, false
	}
}

// Offset returns the row/col delta of one step in this direction.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Player holds the player's position, facing direction, energy, money and
// inventory. All quantities are validated at mutation time; money and
// inventory counts never go negative.
type Player struct {
	pos         Pos
	dir         Direction
	energy      int
	maxEnergy   int
	money       int
	inv         *Inventory
	selected    Item
	hasSelected bool
}

// NewPlayer creates a player at the given position with full energy.
func NewPlayer(pos Pos, dir Direction, money, maxEnergy int) *Player {
	return &Player{
		pos:       pos,
		dir:       dir,
		energy:    maxEnergy,
		maxEnergy: maxEnergy,
		money:     money,
		inv:       NewInventory(),
	}
}

// Move turns the player to face the direction, then steps one cell if the
// destination is inside the rows×cols grid. Facing changes even when the
// step is blocked by the grid edge. Movement costs no energy.
func (p *Player) Move(dir Direction, rows, cols int) bool {
	p.dir = dir
	dRow, dCol := dir.Offset()
	next := Pos{Row: p.pos.Row + dRow, Col: p.pos.Col + dCol}
	if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
		return false
	}
	p.pos = next
	return true
}

// SelectItem marks an inventory item as the current selection. Items with
// a zero-quantity entry are selectable; items the player has never seen
// are not, and the previous selection is kept.
func (p *Player) SelectItem(item Item) bool {
	if !p.inv.Known(item) {
		return false
	}
	p.selected = item
	p.hasSelected = true
	return true
}

// SelectedItem returns the current selection, if any.
func (p *Player) SelectedItem() (Item, bool) {
	return p.selected, p.hasSelected
}

// AddItem credits a stack to the inventory.
func (p *Player) AddItem(stack ItemStack) {
	p.inv.Add(stack.Item, stack.Quantity)
}

// RemoveItem debits a stack from the inventory.
func (p *Player) RemoveItem(stack ItemStack) error {
	return p.inv.Remove(stack.Item, stack.Quantity)
}

// Buy debits the unit price and credits one unit of the item. Buying an
// item for more money than the player holds is rejected.
func (p *Player) Buy(item Item, unitPrice int) error {
	if p.money < unitPrice {
		return ErrInsufficientFunds
	}
	p.money -= unitPrice
	p.inv.Add(item, 1)
	return nil
}

// Sell debits one unit of the item and credits the unit price. Selling an
// item the player owns none of is rejected.
func (p *Player) Sell(item Item, unitPrice int) error {
	if p.inv.Count(item) == 0 {
		return ErrInsufficientInventory
	}
	if err := p.inv.Remove(item, 1); err != nil {
		return err
	}
	p.money += unitPrice
	return nil
}

// DrainEnergy subtracts energy, clamped at zero.
func (p *Player) DrainEnergy(n int) {
	p.energy -= n
	if p.energy < 0 {
		p.energy = 0
	}
}

// RestoreEnergy refills energy to the maximum.
func (p *Player) RestoreEnergy() {
	p.energy = p.maxEnergy
}

// Position returns the player's grid position.
func (p *Player) Position() Pos { return p.pos }

// Direction returns the facing direction.
func (p *Player) Direction() Direction { return p.dir }

// Energy returns the remaining energy.
func (p *Player) Energy() int { return p.energy }

// Money returns the money balance.
func (p *Player) Money() int { return p.money }

// Inventory returns the player's inventory.
func (p *Player) Inventory() *Inventory { return p.inv }
