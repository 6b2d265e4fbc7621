// Package patterns provides well-known Game of Life seeds as coordinate lists
// that can be placed anywhere on a grid.
package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/model"
)

// ErrUnknownPattern is returned by Lookup for a name that is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of living cells anchored at (0, 0)
type Pattern struct {
	Name  string
	Cells []model.Coord
}

var (
	// Blinker is a period 2 oscillator, vertical phase
	Blinker = Pattern{Name: "blinker", Cells: []model.Coord{{0, 1}, {1, 1}, {2, 1}}}
	// Block is the 2x2 still life
	Block = Pattern{Name: "block", Cells: []model.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// Beehive is a six cell still life
	Beehive = Pattern{Name: "beehive", Cells: []model.Coord{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}}}
	// Toad is a period 2 oscillator
	Toad = Pattern{Name: "toad", Cells: []model.Coord{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}}
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{Name: "glider", Cells: []model.Coord{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
)

var registry = map[string]Pattern{
	Blinker.Name: Blinker,
	Block.Name:   Block,
	Beehive.Name: Beehive,
	Toad.Name:    Toad,
	Glider.Name:  Glider,
}

// Lookup returns the pattern registered under name
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return p, nil
}

// Names returns the registered pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the pattern's cells translated so its anchor sits at (row, col)
func (p Pattern) At(row, col int) []model.Coord {
	cells := make([]model.Coord, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = model.Coord{Row: c.Row + row, Col: c.Col + col}
	}
	return cells
}

// Extent returns the number of rows and columns the pattern spans
func (p Pattern) Extent() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return
}

// Placement anchors a named pattern on a grid
type Placement struct {
	Name string `json:"name" yaml:"name"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Compose collects the living cells of every placement. Cells that fall
// outside a grid are reported by model.NewSeededGrid, not here.
func Compose(placements []Placement) ([]model.Coord, error) {
	var living []model.Coord
	for _, pl := range placements {
		p, err := Lookup(pl.Name)
		if err != nil {
			return nil, errors.Wrap(err, "[Compose]")
		}
		living = append(living, p.At(pl.Row, pl.Col)...)
	}
	return living, nil
}

// DefaultPlacements scatters a few interesting patterns over a grid of the
// given size, skipping any that would not fit.
func DefaultPlacements(size int) []Placement {
	candidates := []Placement{
		{Name: Glider.Name, Row: 1, Col: 1},
		{Name: Blinker.Name, Row: size / 4, Col: size / 2},
		{Name: Toad.Name, Row: size / 2, Col: size / 4},
		{Name: Beehive.Name, Row: 3 * size / 4, Col: 3 * size / 4},
		{Name: Block.Name, Row: size - 3, Col: 1},
	}

	var placements []Placement
	for _, pl := range candidates {
		rows, cols := registry[pl.Name].Extent()
		if pl.Row >= 0 && pl.Col >= 0 && pl.Row+rows <= size && pl.Col+cols <= size {
			placements = append(placements, pl)
		}
	}
	return placements
}
