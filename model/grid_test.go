package model

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededGrid(t *testing.T) {
	g, err := NewSeededGrid(4, []Coord{{0, 3}, {2, 1}, {2, 1}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 2, g.CountLivingCells())
	assert.Equal(t, []Coord{{0, 3}, {2, 1}}, g.LivingCells())
	assert.Equal(t, Alive, g.At(0, 3))
	assert.Equal(t, Dead, g.At(3, 0))
}

func TestNewSeededGrid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		living  []Coord
		wantErr error
	}{
		{"zero size", 0, nil, ErrInvalidSize},
		{"negative size", -3, nil, ErrInvalidSize},
		{"row past edge", 3, []Coord{{1, 1}, {3, 0}}, ErrInvalidCoordinate},
		{"negative col", 3, []Coord{{0, -1}}, ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewSeededGrid(tt.size, tt.living)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRandomGrid_SeedIsReproducible(t *testing.T) {
	a, err := NewRandomGrid(40, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	b, err := NewRandomGrid(40, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	c, err := NewRandomGrid(40, rand.New(rand.NewSource(12)))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewRandomGrid_CoinFlip(t *testing.T) {
	g, err := NewRandomGrid(100, rand.New(rand.NewSource(2024)))
	require.NoError(t, err)

	assert.InDelta(t, 5000, g.CountLivingCells(), 500)
}

func TestNewRandomGrid_InvalidSize(t *testing.T) {
	_, err := NewRandomGrid(0, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewDensityGrid(t *testing.T) {
	empty, err := NewDensityGrid(8, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.CountLivingCells())

	full, err := NewDensityGrid(8, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, full.CountLivingCells())

	_, err = NewDensityGrid(8, 1.5, nil)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}

func TestNewNoiseGrid(t *testing.T) {
	a, err := NewNoiseGrid(30, 0.1, 8)
	require.NoError(t, err)
	b, err := NewNoiseGrid(30, 0.1, 8)
	require.NoError(t, err)

	assert.Equal(t, 30, a.Size())
	assert.True(t, a.Equal(b))

	_, err = NewNoiseGrid(30, 2, 8)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
	_, err = NewNoiseGrid(-1, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRows_IsSnapshot(t *testing.T) {
	g := mustSeed(t, 2, Coord{0, 0})

	rows := g.Rows()
	rows[0][0] = Dead
	rows[1][1] = Alive

	assert.Equal(t, Alive, g.At(0, 0))
	assert.Equal(t, Dead, g.At(1, 1))
}

func TestAt_OutsideIsDead(t *testing.T) {
	full, err := NewDensityGrid(2, 1, nil)
	require.NoError(t, err)

	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		assert.Equal(t, Dead, full.At(c.Row, c.Col), "%v", c)
	}
}

func TestEqual(t *testing.T) {
	a := mustSeed(t, 3, Coord{1, 1})

	assert.True(t, a.Equal(mustSeed(t, 3, Coord{1, 1})))
	assert.False(t, a.Equal(mustSeed(t, 3, Coord{1, 2})))
	assert.False(t, a.Equal(mustSeed(t, 4, Coord{1, 1})))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	g := mustSeed(t, 2, Coord{0, 1})

	assert.Equal(t, "Dead Alive\nDead Dead", g.String())
	assert.Equal(t, "Alive", Alive.String())
	assert.Equal(t, "Dead", Dead.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}

	r.Display(mustSeed(t, 2, Coord{1, 0}))

	want := strings.Join([]string{gridPosEmpty + gridPosEmpty, gridPosBlock + gridPosEmpty, ""}, "\n")
	assert.Equal(t, want, buf.String())

	buf.Reset()
	r.Clear()
	assert.Equal(t, ansiClear, buf.String())
}
