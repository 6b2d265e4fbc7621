// Package rules holds the neighbor rule evaluator for Conway's Game of Life.
package rules

// MaxNeighbors is the number of positions at unit Chebyshev distance from a cell
const MaxNeighbors = 8

// Survives reports whether a living cell with n living neighbors stays alive
func Survives(n int) bool {
	return n == 2 || n == 3
}

// Born reports whether a dead cell with n living neighbors comes to life
func Born(n int) bool {
	return n == 3
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 living neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}
