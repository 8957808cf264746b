package farm

// PlantState is the externally visible state of one plant.
type PlantState struct {
	Species Species
	Stage   int
}

// Snapshot captures the complete model state for determinism testing and
// for pull-based rendering by a controller. It shares no mutable storage
// with the model.
type Snapshot struct {
	Day         int
	Layout      []string
	Plants      map[Pos]PlantState
	PlayerPos   Pos
	PlayerDir   Direction
	Energy      int
	Money       int
	Inventory   map[Item]int
	Selected    Item
	HasSelected bool
}

// Snapshot returns the current model snapshot.
func (m *Model) Snapshot() Snapshot {
	plants := make(map[Pos]PlantState, len(m.grid.plants))
	for pos, plant := range m.grid.plants {
		plants[pos] = PlantState{Species: plant.Species(), Stage: plant.Stage()}
	}
	selected, hasSelected := m.player.SelectedItem()
	return Snapshot{
		Day:         m.day,
		Layout:      m.grid.Layout(),
		Plants:      plants,
		PlayerPos:   m.player.Position(),
		PlayerDir:   m.player.Direction(),
		Energy:      m.player.Energy(),
		Money:       m.player.Money(),
		Inventory:   m.player.Inventory().Counts(),
		Selected:    selected,
		HasSelected: hasSelected,
	}
}
