package farm

// Pos identifies a grid cell by (row, col), row 0 at the top.
type Pos struct {
	Row, Col int
}

// TileKind is the ground kind of a single grid cell. The values double as
// the map-file layout symbols.
type TileKind byte

const (
	TileGrass    TileKind = 'G'
	TileUntilled TileKind = 'U'
	TileSoil     TileKind = 'S'
)

// ValidTileKind reports whether the symbol is a known ground kind.
func ValidTileKind(k TileKind) bool {
	switch k {
	case TileGrass, TileUntilled, TileSoil:
		return true
	default:
		return false
	}
}

// Tillable reports whether the tile can be converted to soil.
// Grass cannot be tilled; it is not workable ground.
func (k TileKind) Tillable() bool {
	return k == TileUntilled
}

// Grid is the 2D tile map plus the plants growing on it, keyed by position.
// It owns all plant lifecycle: at most one plant per tile, and plants exist
// only on soil.
type Grid struct {
	tiles  [][]TileKind
	plants map[Pos]*Plant
	rows   int
	cols   int
}

// NewGrid parses a layout of tile symbols into a grid. Every row must have
// the same length and contain only known symbols.
func NewGrid(layout []string) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrIneligibleTile
	}
	cols := len(layout[0])
	tiles := make([][]TileKind, len(layout))
	for r, row := range layout {
		if len(row) != cols {
			return nil, ErrIneligibleTile
		}
		tiles[r] = make([]TileKind, cols)
		for c := 0; c < cols; c++ {
			k := TileKind(row[c])
			if !ValidTileKind(k) {
				return nil, ErrIneligibleTile
			}
			tiles[r][c] = k
		}
	}
	return &Grid{
		tiles:  tiles,
		plants: make(map[Pos]*Plant),
		rows:   len(layout),
		cols:   cols,
	}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Tile returns the ground kind at the position.
// The second return value is false for out-of-bounds positions.
func (g *Grid) Tile(p Pos) (TileKind, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.tiles[p.Row][p.Col], true
}

// Till converts untilled ground to soil.
func (g *Grid) Till(p Pos) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if !g.tiles[p.Row][p.Col].Tillable() {
		return ErrIneligibleTile
	}
	g.tiles[p.Row][p.Col] = TileSoil
	return nil
}

// Untill converts soil back to untilled ground. A tile with a live plant
// cannot be untilled; the plant must be harvested or removed first.
func (g *Grid) Untill(p Pos) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.tiles[p.Row][p.Col] != TileSoil {
		return ErrIneligibleTile
	}
	if _, occupied := g.plants[p]; occupied {
		return ErrOccupiedTile
	}
	g.tiles[p.Row][p.Col] = TileUntilled
	return nil
}

// AddPlant places a plant on an unoccupied soil tile.
func (g *Grid) AddPlant(p Pos, plant *Plant) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.tiles[p.Row][p.Col] != TileSoil {
		return ErrIneligibleTile
	}
	if _, occupied := g.plants[p]; occupied {
		return ErrOccupiedTile
	}
	g.plants[p] = plant
	return nil
}

// PlantAt returns the plant at the position, or nil if there is none.
func (g *Grid) PlantAt(p Pos) *Plant {
	return g.plants[p]
}

// RemovePlant destroys any plant at the position. Removing from an empty
// or out-of-bounds position is a no-op.
func (g *Grid) RemovePlant(p Pos) {
	delete(g.plants, p)
}

// HarvestPlant removes a mature plant and returns its yield. The tile
// stays soil. An empty tile or an immature plant leaves the grid unchanged.
func (g *Grid) HarvestPlant(p Pos) (ItemStack, error) {
	if !g.InBounds(p) {
		return ItemStack{}, ErrOutOfBounds
	}
	plant, ok := g.plants[p]
	if !ok {
		return ItemStack{}, ErrIneligibleTile
	}
	if !plant.CanHarvest() {
		return ItemStack{}, ErrNotMature
	}
	delete(g.plants, p)
	return plant.Yield(), nil
}

// AdvancePlants moves every live plant one stage forward.
func (g *Grid) AdvancePlants() {
	for _, plant := range g.plants {
		plant.AdvanceStage()
	}
}

// Layout returns the tile map as rows of layout symbols.
func (g *Grid) Layout() []string {
	rows := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]byte, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = byte(g.tiles[r][c])
		}
		rows[r] = string(row)
	}
	return rows
}

// Plants returns a copy of the plant-by-position mapping.
func (g *Grid) Plants() map[Pos]*Plant {
	out := make(map[Pos]*Plant, len(g.plants))
	for p, plant := range g.plants {
		out[p] = plant
	}
	return out
}
