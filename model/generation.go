package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/conway/rules"
)

// neighborOffsets lists the eight (row, col) translations to a cell's neighbors,
// clockwise from north
var neighborOffsets = [8][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// AdvanceOptions selects how the next generation is computed
type AdvanceOptions struct {
	Parallel bool
	// Workers caps the number of row bands when Parallel is set; 0 means one per CPU
	Workers int
	Pool    *GridPool
}

// CountNeighbors counts the living neighbors of (row, col). Positions off the
// grid count as dead, so edge cells see at most 5 and corners at most 3.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		if g.At(row+off[0], col+off[1]) == Alive {
			count++
		}
	}
	return count
}

// nextState applies the Conway rules to a single cell of g
func (g *Grid) nextState(row, col int) Cell {
	return Cell(rules.ApplyConwayRules(g.CountNeighbors(row, col), bool(g.cells[row][col])))
}

// NextGeneration calculates the next generation into a freshly allocated grid.
// Every cell is evaluated against g, which is left untouched.
func (g *Grid) NextGeneration() *Grid {
	next := newGrid(g.size)
	for row := range g.size {
		for col := range g.size {
			next.cells[row][col] = g.nextState(row, col)
		}
	}
	return next
}

// NextGenerationParallel calculates the next generation using one goroutine per
// band of rows. Workers only read g and each writes its own rows of the result.
func (g *Grid) NextGenerationParallel(workers int, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.size)
	} else {
		next = newGrid(g.size)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.size + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := range g.size {
					next.cells[row][col] = g.nextState(row, col)
				}
			}
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	return next
}

// Advance calculates the next generation based on the given options
func (g *Grid) Advance(opts AdvanceOptions) *Grid {
	if opts.Parallel {
		return g.NextGenerationParallel(opts.Workers, opts.Pool)
	}
	if opts.Pool == nil {
		return g.NextGeneration()
	}

	next := opts.Pool.Get(g.size)
	for row := range g.size {
		for col := range g.size {
			next.cells[row][col] = g.nextState(row, col)
		}
	}
	return next
}
