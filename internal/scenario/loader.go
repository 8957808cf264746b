package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader scans a directory for YAML map files.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every map file under the root. Files that
// fail to parse or validate are skipped. Results are sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Scenario, error) {
	var scenarios []Scenario

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		sc, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		scenarios = append(scenarios, sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ID < scenarios[j].ID
	})

	return scenarios, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	sc.FilePath = path
	return sc, nil
}

// LoadByID loads the map file with the given scenario ID.
func (l *Loader) LoadByID(id string) (Scenario, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return Scenario{}, err
	}
	for _, sc := range scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q not found under %s", id, l.Root)
}
