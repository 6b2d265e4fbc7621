package model

import (
	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
)

const (
	noiseAlpha         = 2.0
	noiseBeta          = 2.0
	noiseOctaves int32 = 3

	// noiseScale is the number of cells spanned by one unit of noise space
	noiseScale = 8.0
)

// NewNoiseGrid seeds the grid from 2D Perlin noise: a cell is alive when the
// noise at its position exceeds threshold. The same seed always yields the
// same grid.
func NewNoiseGrid(size int, threshold float64, seed int64) (*Grid, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewNoiseGrid]")
	}
	if threshold < -1 || threshold > 1 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "[NewNoiseGrid] %v not in [-1, 1]", threshold)
	}

	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	g := newGrid(size)
	for row := range size {
		for col := range size {
			n := p.Noise2D(float64(col)/noiseScale, float64(row)/noiseScale)
			g.cells[row][col] = Cell(n > threshold)
		}
	}
	return g, nil
}
