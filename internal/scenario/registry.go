package scenario

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered scenario.
type Info struct {
	ID   string
	Name string
	Size string // "rows x cols" for display
}

var (
	registered = make(map[string]Scenario)
	mu         sync.RWMutex
)

// Register adds a scenario to the registry. Built-ins register from this
// package's init; commands may register file-loaded scenarios as well.
// Panics on duplicate IDs or invalid scenarios.
func Register(sc Scenario) {
	if err := sc.Validate(); err != nil {
		panic(fmt.Sprintf("scenario: refusing to register: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[sc.ID]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", sc.ID))
	}
	registered[sc.ID] = sc
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for _, sc := range registered {
		result = append(result, Info{
			ID:   sc.ID,
			Name: sc.Name,
			Size: fmt.Sprintf("%dx%d", len(sc.Layout), len(sc.Layout[0])),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the registered scenario with the given ID.
func Get(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	sc, ok := registered[id]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", id)
	}
	return sc, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}
