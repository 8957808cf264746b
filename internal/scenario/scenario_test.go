package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/farmstead/internal/farm"
)

const validMapYAML = `id: test-farm
name: Test Farm
layout:
  - GGGG
  - GUSG
  - GGGG
start:
  row: 1
  col: 1
  direction: right
  money: 50
  inventory:
    Potato Seed: 3
    Kale Seed: 1
`

func TestParseValidMap(t *testing.T) {
	sc, err := Parse([]byte(validMapYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sc.ID != "test-farm" {
		t.Errorf("ID should be test-farm, got %s", sc.ID)
	}
	if sc.Name != "Test Farm" {
		t.Errorf("Name should be Test Farm, got %s", sc.Name)
	}
	if len(sc.Layout) != 3 || sc.Layout[1] != "GUSG" {
		t.Errorf("layout should round-trip, got %v", sc.Layout)
	}
	if sc.Start.Pos != (farm.Pos{Row: 1, Col: 1}) {
		t.Errorf("start position should be (1,1), got %v", sc.Start.Pos)
	}
	if sc.Start.Dir != farm.DirRight {
		t.Errorf("direction should be right, got %s", sc.Start.Dir)
	}
	if sc.Start.Money != 50 {
		t.Errorf("money should be 50, got %d", sc.Start.Money)
	}
	if sc.Start.Inventory[farm.ItemPotatoSeed] != 3 {
		t.Errorf("should start with 3 potato seeds, got %d", sc.Start.Inventory[farm.ItemPotatoSeed])
	}
	if sc.Start.Inventory[farm.ItemKaleSeed] != 1 {
		t.Errorf("should start with 1 kale seed, got %d", sc.Start.Inventory[farm.ItemKaleSeed])
	}
}

func TestParseDefaultDirection(t *testing.T) {
	yaml := `id: mini
name: Mini
layout: [UU]
start: {row: 0, col: 0, money: 0}
`
	sc, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Start.Dir != farm.DirDown {
		t.Errorf("omitted direction should default to down, got %s", sc.Start.Dir)
	}
}

func TestParseRejectsBadMaps(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing id", "name: X\nlayout: [UU]\nstart: {row: 0, col: 0}"},
		{"empty layout", "id: x\nname: X\nstart: {row: 0, col: 0}"},
		{"ragged layout", "id: x\nname: X\nlayout: [UU, U]\nstart: {row: 0, col: 0}"},
		{"unknown symbol", "id: x\nname: X\nlayout: [UX]\nstart: {row: 0, col: 0}"},
		{"start out of bounds", "id: x\nname: X\nlayout: [UU]\nstart: {row: 5, col: 0}"},
		{"unknown direction", "id: x\nname: X\nlayout: [UU]\nstart: {row: 0, col: 0, direction: sideways}"},
		{"unknown item", "id: x\nname: X\nlayout: [UU]\nstart: {row: 0, col: 0, inventory: {Corn Seed: 1}}"},
		{"negative money", "id: x\nname: X\nlayout: [UU]\nstart: {row: 0, col: 0, money: -1}"},
		{"negative quantity", "id: x\nname: X\nlayout: [UU]\nstart: {row: 0, col: 0, inventory: {Potato Seed: -2}}"},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc.yaml)); err == nil {
			t.Errorf("%s: Parse should fail", tc.name)
		}
	}
}

func TestScenarioNewModel(t *testing.T) {
	sc, err := Parse([]byte(validMapYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	m, err := sc.NewModel(farm.DefaultTables())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.PlayerPosition() != sc.Start.Pos {
		t.Errorf("model should start the player at %v, got %v", sc.Start.Pos, m.PlayerPosition())
	}
	if m.Player().Money() != 50 {
		t.Errorf("model should start with 50 coins, got %d", m.Player().Money())
	}

	// The setup is a copy: mutating the model must not touch the scenario
	if err := m.Till(farm.Pos{Row: 1, Col: 1}); err != nil {
		t.Fatalf("Till: %v", err)
	}
	if sc.Layout[1] != "GUSG" {
		t.Errorf("scenario layout should be untouched by model mutations, got %s", sc.Layout[1])
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()

	// Two valid maps, one broken map, one non-map file
	second := strings.Replace(validMapYAML, "test-farm", "another", 1)
	writeFile(t, filepath.Join(dir, "b.yaml"), validMapYAML)
	writeFile(t, filepath.Join(dir, "sub", "a.yml"), second)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "layout: [QQ]")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a map")

	loader := NewLoader(dir)
	scenarios, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("should load 2 valid maps, got %d", len(scenarios))
	}

	// Sorted by ID
	if scenarios[0].ID != "another" || scenarios[1].ID != "test-farm" {
		t.Errorf("scenarios should be sorted by ID, got %s, %s", scenarios[0].ID, scenarios[1].ID)
	}
	if scenarios[1].FilePath == "" {
		t.Error("loaded scenario should record its source file")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "farm.yaml"), validMapYAML)

	loader := NewLoader(dir)
	sc, err := loader.LoadByID("test-farm")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if sc.ID != "test-farm" {
		t.Errorf("wrong scenario loaded: %s", sc.ID)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for an unknown ID")
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	if !Exists(DefaultID) {
		t.Fatalf("default scenario %q should be registered", DefaultID)
	}

	sc, err := Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q): %v", DefaultID, err)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("built-in scenario should validate, got %v", err)
	}

	// Every built-in constructs a working model
	for _, info := range List() {
		sc, err := Get(info.ID)
		if err != nil {
			t.Fatalf("Get(%q): %v", info.ID, err)
		}
		if _, err := sc.NewModel(farm.DefaultTables()); err != nil {
			t.Errorf("built-in %q should construct a model, got %v", info.ID, err)
		}
	}

	if _, err := Get("no-such-map"); err == nil {
		t.Error("Get should fail for an unregistered ID")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
