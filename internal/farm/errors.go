package farm

import "errors"

// Every mutating operation on the model validates its preconditions and
// returns one of these sentinel errors on rejection. The model state is
// never changed by a rejected operation.
var (
	ErrOutOfBounds           = errors.New("farm: position out of bounds")
	ErrIneligibleTile        = errors.New("farm: tile not eligible")
	ErrInsufficientFunds     = errors.New("farm: insufficient funds")
	ErrInsufficientInventory = errors.New("farm: insufficient inventory")
	ErrUnknownItem           = errors.New("farm: unknown item")
	ErrOccupiedTile          = errors.New("farm: tile occupied")
	ErrNotMature             = errors.New("farm: plant not mature")
)
