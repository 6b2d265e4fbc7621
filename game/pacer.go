package game

import "time"

// Pacer steps a game at most once per tick delay for frame driven loops that
// call it more often than the game should advance
type Pacer struct {
	game     *Game
	delay    time.Duration
	lastTick time.Time
}

// NewPacer returns a pacer whose first step is due immediately
func NewPacer(g *Game) *Pacer {
	return &Pacer{game: g, delay: g.config.TickDelay}
}

// Tick advances the game if the tick delay has elapsed since the last step
func (p *Pacer) Tick(now time.Time) (Status, bool) {
	if !p.lastTick.IsZero() && now.Sub(p.lastTick) < p.delay {
		return Status{}, false
	}
	p.lastTick = now
	return p.game.Step(), true
}
