// Package scenario provides farm map definitions: the tile layout a model
// starts from plus the player's starting state. Scenarios are loaded from
// YAML map files or drawn from the built-in set; the farm core never reads
// files itself.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/farmstead/internal/farm"
)

// Start describes the player's initial state.
type Start struct {
	Pos       farm.Pos
	Dir       farm.Direction
	Money     int
	Inventory map[farm.Item]int
}

// Scenario is a complete map definition ready to construct a model from.
type Scenario struct {
	ID       string
	Name     string
	Layout   []string
	Start    Start
	FilePath string // Source file, empty for built-ins
}

// Validate checks that the layout is rectangular, uses only known tile
// symbols, and contains the start position.
func (s *Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario: missing id")
	}
	if len(s.Layout) == 0 || len(s.Layout[0]) == 0 {
		return fmt.Errorf("scenario %s: empty layout", s.ID)
	}
	cols := len(s.Layout[0])
	for r, row := range s.Layout {
		if len(row) != cols {
			return fmt.Errorf("scenario %s: row %d has %d columns, want %d", s.ID, r, len(row), cols)
		}
		for c := 0; c < cols; c++ {
			if !farm.ValidTileKind(farm.TileKind(row[c])) {
				return fmt.Errorf("scenario %s: unknown tile symbol %q at (%d,%d)", s.ID, row[c], r, c)
			}
		}
	}
	if s.Start.Pos.Row < 0 || s.Start.Pos.Row >= len(s.Layout) ||
		s.Start.Pos.Col < 0 || s.Start.Pos.Col >= cols {
		return fmt.Errorf("scenario %s: start position (%d,%d) out of bounds", s.ID, s.Start.Pos.Row, s.Start.Pos.Col)
	}
	if s.Start.Money < 0 {
		return fmt.Errorf("scenario %s: negative starting money", s.ID)
	}
	for item, n := range s.Start.Inventory {
		if !item.Valid() {
			return fmt.Errorf("scenario %s: unknown inventory item %d", s.ID, int(item))
		}
		if n < 0 {
			return fmt.Errorf("scenario %s: negative quantity for %s", s.ID, item)
		}
	}
	return nil
}

// Setup converts the scenario into the farm core's construction input.
func (s *Scenario) Setup() farm.Setup {
	inv := make(map[farm.Item]int, len(s.Start.Inventory))
	for item, n := range s.Start.Inventory {
		inv[item] = n
	}
	return farm.Setup{
		Layout:    append([]string(nil), s.Layout...),
		PlayerPos: s.Start.Pos,
		PlayerDir: s.Start.Dir,
		Money:     s.Start.Money,
		Inventory: inv,
	}
}

// NewModel constructs a fresh model from this scenario.
func (s *Scenario) NewModel(tables farm.Tables) (*farm.Model, error) {
	return farm.New(s.Setup(), tables)
}
