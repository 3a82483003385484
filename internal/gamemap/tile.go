package gamemap

// Tile codes stored in the grid. The host reads them directly, so the values
// are part of the external contract.
const (
	Floor = 0
	Wall  = 1
)
