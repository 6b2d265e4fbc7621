package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/conway/model"
)

// Renderer draws a generation, e.g. model.TerminalRenderer
type Renderer interface {
	Clear()
	Display(g *model.Grid)
}

// Run drives the game in the terminal: it renders the current generation and
// its status to out, waits the tick delay and advances, until ctx is done or
// the generation limit is reached.
func (g *Game) Run(ctx context.Context, r Renderer, out io.Writer) error {
	status := g.Status()
	for {
		r.Clear()
		g.displayStatus(out, status)
		r.Display(g.grid)

		if g.Done() {
			g.logger.WithField("generations", g.generation).Info("reached maximum generations limit")
			return nil
		}

		if ctx.Err() != nil {
			g.logShutdown()
			return nil
		}
		select {
		case <-ctx.Done():
			g.logShutdown()
			return nil
		case <-time.After(g.config.TickDelay):
		}

		status = g.Step()
	}
}

// displayStatus shows the current game status
func (g *Game) displayStatus(out io.Writer, status Status) {
	state := "Active"
	switch {
	case status.Extinct:
		state = "Extinct"
	case status.Stagnant:
		state = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if status.Restarted != "" {
		state = fmt.Sprintf("Restarted (%s)", status.Restarted)
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		status.Generation, status.Living, status.Density, state)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	// Show generations since last restart
	if g.generation > g.lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(out)
}

func (g *Game) logShutdown() {
	g.logger.WithFields(logrus.Fields{
		"generations":    g.generation,
		"runtime":        g.stats.Runtime().Round(100 * time.Millisecond).String(),
		"gen_per_sec":    fmt.Sprintf("%.1f", g.stats.GenerationsPerSecond),
		"avg_population": fmt.Sprintf("%.1f", g.stats.AveragePopulation),
		"restarts":       g.stats.Restarts,
	}).Info("shutting down gracefully")
}
