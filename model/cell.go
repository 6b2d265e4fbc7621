package model

// Cell is the state of a single grid position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

const (
	aliveTag = "Alive"
	deadTag  = "Dead"
)

// String returns the state tag of the cell
func (c Cell) String() string {
	if c == Alive {
		return aliveTag
	}
	return deadTag
}

// Coord addresses a cell by zero-based row and column
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}
