// Package window draws a running game in a desktop window.
package window

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway/game"
	"github.com/sheikhrachel/conway/model"
)

const (
	title  = "Conway's Game of Life"
	margin = 10
)

var (
	background = color.RGBA{R: 26, G: 51, B: 77, A: 255}
	aliveColor = color.RGBA{R: 51, G: 153, B: 255, A: 255}
	deadColor  = color.RGBA{R: 77, G: 77, B: 77, A: 255}
)

// Window implements ebiten.Game around a game.Game
type Window struct {
	game       *game.Game
	pacer      *game.Pacer
	cellPixels int
}

// New wraps g for drawing with square cells of cellPixels
func New(g *game.Game, cellPixels int) *Window {
	return &Window{
		game:       g,
		pacer:      game.NewPacer(g),
		cellPixels: cellPixels,
	}
}

// Update advances the game once the tick delay has passed
func (w *Window) Update() error {
	if w.game.Done() {
		return ebiten.Termination
	}
	w.pacer.Tick(time.Now())
	return nil
}

// Draw fills one square per cell
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	grid := w.game.Grid()
	px := float32(w.cellPixels)
	for row := range grid.Size() {
		for col := range grid.Size() {
			x := float32(margin) + float32(col)*px
			y := float32(margin) + float32(row)*px
			vector.DrawFilledRect(screen, x, y, px, px, cellColor(grid.At(row, col)), false)
		}
	}
}

// Layout keeps a fixed logical screen sized to the grid
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := w.side()
	return side, side
}

func (w *Window) side() int {
	return w.game.Grid().Size()*w.cellPixels + 2*margin
}

func cellColor(c model.Cell) color.Color {
	if c == model.Alive {
		return aliveColor
	}
	return deadColor
}

// Run opens the window and blocks until it is closed or the game is done
func Run(g *game.Game, cellPixels int) error {
	w := New(g, cellPixels)

	ebiten.SetWindowSize(w.side(), w.side())
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(w); err != nil {
		return errors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}
