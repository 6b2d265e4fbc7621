// Package game holds the driving loop around the engine: it owns the current
// generation, replaces it once per tick and decides when to start over.
package game

import (
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/conway/model"
	"github.com/sheikhrachel/conway/patterns"
	"github.com/sheikhrachel/conway/utils"
)

// historySize is how many previous generations are compared for stagnation,
// enough to catch still lifes and period 2 and 3 oscillators
const historySize = 3

const (
	reasonExtinction = "extinction"
	reasonStagnation = "stagnation detected"
)

// Status describes the generation produced by the latest step
type Status struct {
	Generation int
	Living     int
	// Density is the percentage of living cells
	Density  float64
	Stagnant bool
	Extinct  bool
	// Restarted names the reason the grid was replaced by a fresh seed, if it was
	Restarted string
}

// Game owns the grid held between ticks
type Game struct {
	config utils.Config
	logger logrus.FieldLogger
	rng    *rand.Rand
	seed   int64

	grid  *model.Grid
	pool  *model.GridPool
	stats *utils.Stats

	generation     int
	lastRestartGen int
	stagnantCount  int
	history        []string
}

// New validates config and seeds the initial grid. A nil logger logs through
// the logrus standard logger.
func New(config utils.Config, logger logrus.FieldLogger) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		config: config,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		stats:  utils.NewStats(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}

	grid, err := g.seedGrid()
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	g.grid = grid

	g.logger.WithFields(logrus.Fields{
		"size":    config.Size,
		"seeding": config.Seeding,
		"seed":    seed,
		"living":  grid.CountLivingCells(),
	}).Info("game initialized")

	return g, nil
}

// seedGrid builds a fresh initial grid for the configured seeding mode
func (g *Game) seedGrid() (*model.Grid, error) {
	size := g.config.Size
	switch g.config.Seeding {
	case utils.SeedingDensity:
		return model.NewDensityGrid(size, g.config.Density, g.rng)
	case utils.SeedingNoise:
		return model.NewNoiseGrid(size, g.config.NoiseThreshold, g.rng.Int63())
	case utils.SeedingPatterns:
		placements := g.config.Patterns
		if len(placements) == 0 {
			placements = patterns.DefaultPlacements(size)
		}
		living, err := patterns.Compose(placements)
		if err != nil {
			return nil, err
		}
		return model.NewSeededGrid(size, living)
	default:
		return model.NewRandomGrid(size, g.rng)
	}
}

// Grid returns the current generation. It must be treated as read-only and
// is only valid until the next Step.
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Generation returns the number of steps taken since the game was created
func (g *Game) Generation() int {
	return g.generation
}

// Seed returns the seed driving the run
func (g *Game) Seed() int64 {
	return g.seed
}

// Stats returns the performance counters of the run
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Done reports whether the configured generation limit has been reached
func (g *Game) Done() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// Status reports on the current generation without advancing
func (g *Game) Status() Status {
	living := g.grid.CountLivingCells()
	return Status{
		Generation: g.generation,
		Living:     living,
		Density:    float64(living) / float64(g.grid.Size()*g.grid.Size()) * 100,
		Stagnant:   g.stagnantCount > 0,
		Extinct:    living == 0,
	}
}

// Step replaces the held grid with its next generation and restarts from a
// fresh seed on extinction or lasting stagnation when auto restart is on.
func (g *Game) Step() Status {
	start := time.Now()

	next := g.grid.Advance(model.AdvanceOptions{
		Parallel: g.config.Parallel,
		Workers:  g.config.Workers,
		Pool:     g.pool,
	})
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.generation++

	if g.recordHistory(next.Hash()) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status := g.Status()
	g.stats.Update(g.generation, status.Living, time.Since(start))

	if reason, restart := g.checkRestartConditions(status); restart && g.config.AutoRestart {
		g.restart(reason)
		status.Restarted = reason
	}
	return status
}

// recordHistory adds hash to the history and reports whether it matched one
// of the previous generations
func (g *Game) recordHistory(hash string) bool {
	stagnant := slices.Contains(g.history, hash)

	g.history = append(g.history, hash)
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
	return stagnant
}

// checkRestartConditions determines if the game should restart
func (g *Game) checkRestartConditions(status Status) (string, bool) {
	if status.Extinct {
		return reasonExtinction, true
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return reasonStagnation, true
	}
	return "", false
}

// restart replaces the grid with a freshly seeded one
func (g *Game) restart(reason string) {
	grid, err := g.seedGrid()
	if err != nil {
		// the seeding succeeded once with the same config
		g.logger.WithError(err).Error("failed to reseed grid, keeping current generation")
		return
	}

	g.logger.WithFields(logrus.Fields{
		"reason":      reason,
		"generation":  g.generation,
		"since_start": g.generation - g.lastRestartGen,
		"living":      grid.CountLivingCells(),
	}).Info("restarting")

	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.history = nil
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++
}
