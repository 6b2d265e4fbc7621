package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and erases the screen
	ansiClear = "\033[H\033[2J"

	cellSeparator = " "
)

// String renders the grid as rows of state tags, one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.size {
			if col > 0 {
				sb.WriteString(cellSeparator)
			}
			sb.WriteString(g.cells[row][col].String())
		}
	}
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	var sb strings.Builder
	for row := range g.Size() {
		for col := range g.Size() {
			if g.IsAlive(row, col) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.Out, sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
