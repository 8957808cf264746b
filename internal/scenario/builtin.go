package scenario

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/meadow.yaml
var defaultMeadowYAML []byte

//go:embed defaults/clearing.yaml
var defaultClearingYAML []byte

// DefaultID is the scenario used when none is specified.
const DefaultID = "meadow"

func init() {
	for _, raw := range [][]byte{defaultMeadowYAML, defaultClearingYAML} {
		sc, err := Parse(raw)
		if err != nil {
			panic(fmt.Sprintf("scenario: bad built-in map: %v", err))
		}
		Register(sc)
	}
}
