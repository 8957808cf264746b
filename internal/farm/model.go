package farm

// Setup describes the initial world state a model is constructed from:
// the tile layout plus the player's starting position, direction, money
// and inventory. Scenario files produce a Setup; tests build one inline.
type Setup struct {
	Layout    []string
	PlayerPos Pos
	PlayerDir Direction
	Money     int
	Inventory map[Item]int
}

// Model is the single root of truth for one running simulation. It owns
// the grid, the player and the day counter; every mutation flows through
// it and either fully applies or fully no-ops. The model is single-
// threaded by contract: one controller drives it one call at a time.
type Model struct {
	grid   *Grid
	player *Player
	tables Tables
	day    int
}

// New constructs a model from a setup and static tables. The setup's
// player position must be inside the layout.
func New(setup Setup, tables Tables) (*Model, error) {
	grid, err := NewGrid(setup.Layout)
	if err != nil {
		return nil, err
	}
	if !grid.InBounds(setup.PlayerPos) {
		return nil, ErrOutOfBounds
	}
	player := NewPlayer(setup.PlayerPos, setup.PlayerDir, setup.Money, tables.MaxEnergy)
	for item, n := range setup.Inventory {
		if n < 0 || !item.Valid() {
			return nil, ErrUnknownItem
		}
		player.AddItem(ItemStack{Item: item, Quantity: n})
	}
	return &Model{grid: grid, player: player, tables: tables}, nil
}

// actionCost is the energy drained by each successful farming action.
// Movement and trading are free; see the player type.
const actionCost = 1

// NewDay advances the world by one day: the day counter increments, every
// live plant grows one stage, and the player's energy is restored. The
// player's position, money and inventory are untouched.
func (m *Model) NewDay() {
	m.day++
	m.grid.AdvancePlants()
	m.player.RestoreEnergy()
}

// MovePlayer turns the player and steps one cell if the destination is
// within the grid. The facing direction updates even when the step is
// rejected at the grid edge.
func (m *Model) MovePlayer(dir Direction) bool {
	return m.player.Move(dir, m.grid.Rows(), m.grid.Cols())
}

// Till converts untilled ground at the position to soil.
func (m *Model) Till(pos Pos) error {
	if err := m.grid.Till(pos); err != nil {
		return err
	}
	m.player.DrainEnergy(actionCost)
	return nil
}

// Untill converts soil at the position back to untilled ground. Soil with
// a live plant is rejected; harvest or remove the plant first.
func (m *Model) Untill(pos Pos) error {
	if err := m.grid.Untill(pos); err != nil {
		return err
	}
	m.player.DrainEnergy(actionCost)
	return nil
}

// Plant sows one seed of the species on the soil tile at the position,
// consuming the seed from the player's inventory. The tile must be
// unoccupied soil and the inventory must hold at least one matching seed;
// nothing changes otherwise.
func (m *Model) Plant(pos Pos, species Species) error {
	growth, ok := m.tables.Growth[species]
	if !ok {
		return ErrUnknownItem
	}
	seed, ok := seedFor(species)
	if !ok {
		return ErrUnknownItem
	}
	if m.player.Inventory().Count(seed) == 0 {
		return ErrInsufficientInventory
	}
	if err := m.grid.AddPlant(pos, NewPlant(species, growth)); err != nil {
		return err
	}
	// Cannot fail: the count was checked above and nothing ran in between.
	_ = m.player.RemoveItem(ItemStack{Item: seed, Quantity: 1})
	m.player.DrainEnergy(actionCost)
	return nil
}

// seedFor returns the seed item that grows the species.
func seedFor(species Species) (Item, bool) {
	for i := Item(0); i < itemCount; i++ {
		if sp, ok := i.Species(); ok && sp == species {
			return i, true
		}
	}
	return 0, false
}

// RemovePlant destroys any plant at the position without yield.
func (m *Model) RemovePlant(pos Pos) {
	if m.grid.PlantAt(pos) == nil {
		return
	}
	m.grid.RemovePlant(pos)
	m.player.DrainEnergy(actionCost)
}

// Harvest removes a mature plant at the position and credits its yield to
// the player's inventory. An empty tile or an immature plant is rejected
// with the grid and inventory unchanged.
func (m *Model) Harvest(pos Pos) (ItemStack, error) {
	stack, err := m.grid.HarvestPlant(pos)
	if err != nil {
		return ItemStack{}, err
	}
	m.player.AddItem(stack)
	m.player.DrainEnergy(actionCost)
	return stack, nil
}

// Buy purchases one unit of the item at its table price. Items without a
// buy price cannot be purchased.
func (m *Model) Buy(item Item) error {
	price, ok := m.tables.Prices[item]
	if !ok || !price.Purchasable() {
		return ErrUnknownItem
	}
	return m.player.Buy(item, price.Buy)
}

// Sell sells one unit of the item at its table price.
func (m *Model) Sell(item Item) error {
	price, ok := m.tables.Prices[item]
	if !ok {
		return ErrUnknownItem
	}
	return m.player.Sell(item, price.Sell)
}

// SelectItem sets the player's current selection. Unknown items (never in
// the inventory, not even at zero) leave the selection unchanged.
func (m *Model) SelectItem(item Item) bool {
	return m.player.SelectItem(item)
}

// Price returns the buy/sell prices for the item.
func (m *Model) Price(item Item) (PriceConfig, bool) {
	price, ok := m.tables.Prices[item]
	return price, ok
}

// Map returns the tile grid as rows of layout symbols.
func (m *Model) Map() []string {
	return m.grid.Layout()
}

// Plants returns a copy of the plant-by-position mapping.
func (m *Model) Plants() map[Pos]*Plant {
	return m.grid.Plants()
}

// Dimensions returns the grid size as (rows, cols).
func (m *Model) Dimensions() (rows, cols int) {
	return m.grid.Rows(), m.grid.Cols()
}

// PlayerPosition returns the player's grid position.
func (m *Model) PlayerPosition() Pos {
	return m.player.Position()
}

// PlayerDirection returns the player's facing direction.
func (m *Model) PlayerDirection() Direction {
	return m.player.Direction()
}

// Player returns the player entity.
func (m *Model) Player() *Player {
	return m.player
}

// DaysElapsed returns the number of completed new-day transitions.
func (m *Model) DaysElapsed() int {
	return m.day
}
