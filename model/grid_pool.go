package model

import "sync"

// GridToPool returns a discarded generation to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the storage of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given size from the pool
func (p *GridPool) Get(size int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(size)
	return g
}

// Put returns a grid to the pool. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

// reset resizes g and marks every cell dead
func (g *Grid) reset(size int) {
	g.size = size

	// Resize cells if needed
	if len(g.cells) != size {
		g.cells = make([][]Cell, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]Cell, size)
		} else {
			clear(g.cells[i])
		}
	}
}
