package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/farmstead/internal/farm"
)

// yamlScenario is the YAML structure of a map file.
type yamlScenario struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Layout []string  `yaml:"layout"`
	Start  yamlStart `yaml:"start"`
}

// yamlStart is the player block of a map file.
type yamlStart struct {
	Row       int            `yaml:"row"`
	Col       int            `yaml:"col"`
	Direction string         `yaml:"direction,omitempty"`
	Money     int            `yaml:"money"`
	Inventory map[string]int `yaml:"inventory,omitempty"`
}

// Parse parses and validates a YAML map file.
func Parse(data []byte) (Scenario, error) {
	var ys yamlScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("scenario: yaml unmarshal: %w", err)
	}

	dir := farm.DirDown
	if ys.Start.Direction != "" {
		parsed, ok := farm.ParseDirection(ys.Start.Direction)
		if !ok {
			return Scenario{}, fmt.Errorf("scenario %s: unknown direction %q", ys.ID, ys.Start.Direction)
		}
		dir = parsed
	}

	inv := make(map[farm.Item]int, len(ys.Start.Inventory))
	for name, n := range ys.Start.Inventory {
		item, ok := farm.ParseItem(name)
		if !ok {
			return Scenario{}, fmt.Errorf("scenario %s: unknown item %q", ys.ID, name)
		}
		inv[item] = n
	}

	sc := Scenario{
		ID:     ys.ID,
		Name:   ys.Name,
		Layout: ys.Layout,
		Start: Start{
			Pos:       farm.Pos{Row: ys.Start.Row, Col: ys.Start.Col},
			Dir:       dir,
			Money:     ys.Start.Money,
			Inventory: inv,
		},
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}
