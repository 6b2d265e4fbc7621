package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Grid is a square, bounded board of cells. A Grid is never modified once it
// has been handed out by a constructor or by an advance; each generation is a
// new value.
type Grid struct {
	size  int
	cells [][]Cell
}

// newGrid allocates an all-dead grid with the specified size
func newGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

// NewSeededGrid creates a grid where exactly the listed cells are alive.
// A coordinate outside the grid rejects the whole construction.
func NewSeededGrid(size int, living []Coord) (*Grid, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewSeededGrid]")
	}
	for _, c := range living {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			return nil, errors.Wrapf(ErrInvalidCoordinate,
				"[NewSeededGrid] (%d, %d) outside %dx%d grid", c.Row, c.Col, size, size)
		}
	}

	g := newGrid(size)
	for _, c := range living {
		g.cells[c.Row][c.Col] = Alive
	}
	return g, nil
}

// NewRandomGrid creates a grid where every cell is an independent coin flip.
// A nil rng falls back to a time-seeded source.
func NewRandomGrid(size int, rng *rand.Rand) (*Grid, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid]")
	}
	rng = orTimeSeeded(rng)

	g := newGrid(size)
	for row := range size {
		for col := range size {
			g.cells[row][col] = Cell(rng.Intn(2) == 1)
		}
	}
	return g, nil
}

// NewDensityGrid fills the grid with living cells at the given probability
func NewDensityGrid(size int, density float64, rng *rand.Rand) (*Grid, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewDensityGrid]")
	}
	if density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidDensity, "[NewDensityGrid] %v not in [0, 1]", density)
	}
	rng = orTimeSeeded(rng)

	g := newGrid(size)
	for row := range size {
		for col := range size {
			g.cells[row][col] = Cell(rng.Float64() < density)
		}
	}
	return g, nil
}

func orTimeSeeded(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

// At returns the state of a cell. Positions outside the grid are dead.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Dead
	}
	return g.cells[row][col]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.At(row, col) == Alive
}

// Rows returns a copy of the cell states arranged in rows
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for i, row := range g.cells {
		rows[i] = append([]Cell(nil), row...)
	}
	return rows
}

// LivingCells returns the coordinates of every living cell in row-major order
func (g *Grid) LivingCells() []Coord {
	var living []Coord
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] == Alive {
				living = append(living, Coord{Row: row, Col: col})
			}
		}
	}
	return living
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] == Alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
