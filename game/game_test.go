package game

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/conway/model"
	"github.com/sheikhrachel/conway/patterns"
	"github.com/sheikhrachel/conway/utils"
)

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Size = 12
	cfg.Seed = 42
	cfg.TickDelay = 0
	cfg.AutoRestart = false
	return cfg
}

func blockConfig() utils.Config {
	cfg := testConfig()
	cfg.Seeding = utils.SeedingPatterns
	cfg.Patterns = []patterns.Placement{{Name: "block", Row: 4, Col: 4}}
	return cfg
}

func TestNew_Seedings(t *testing.T) {
	for _, seeding := range []string{utils.SeedingRandom, utils.SeedingDensity, utils.SeedingNoise, utils.SeedingPatterns} {
		t.Run(seeding, func(t *testing.T) {
			cfg := testConfig()
			cfg.Seeding = seeding
			logger, _ := test.NewNullLogger()

			g, err := New(cfg, logger)
			require.NoError(t, err)
			assert.Equal(t, cfg.Size, g.Grid().Size())
			assert.Zero(t, g.Generation())
		})
	}
}

func TestNew_SameSeedSameGame(t *testing.T) {
	logger, _ := test.NewNullLogger()
	a, err := New(testConfig(), logger)
	require.NoError(t, err)
	b, err := New(testConfig(), logger)
	require.NoError(t, err)

	for range 5 {
		a.Step()
		b.Step()
	}
	assert.True(t, a.Grid().Equal(b.Grid()))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Size = 0

	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidConfig)
}

func TestNew_PatternOutsideGrid(t *testing.T) {
	cfg := blockConfig()
	cfg.Patterns = []patterns.Placement{{Name: "block", Row: 11, Col: 11}}
	logger, _ := test.NewNullLogger()

	_, err := New(cfg, logger)
	assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
}

func TestStep_AdvancesHeldGrid(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		cfg := testConfig()
		cfg.Parallel = parallel
		logger, _ := test.NewNullLogger()
		g, err := New(cfg, logger)
		require.NoError(t, err)

		want := g.Grid().NextGeneration()
		status := g.Step()

		assert.Equal(t, 1, status.Generation)
		assert.Equal(t, want.CountLivingCells(), status.Living)
		assert.True(t, want.Equal(g.Grid()))
		assert.Equal(t, 1, g.Stats().TotalGenerations)
	}
}

func TestStep_DetectsStagnation(t *testing.T) {
	logger, _ := test.NewNullLogger()
	g, err := New(blockConfig(), logger)
	require.NoError(t, err)

	assert.False(t, g.Step().Stagnant)
	assert.True(t, g.Step().Stagnant)
	assert.True(t, g.Step().Stagnant)
}

func TestStep_DetectsOscillation(t *testing.T) {
	cfg := blockConfig()
	cfg.Patterns = []patterns.Placement{{Name: "blinker", Row: 4, Col: 4}}
	logger, _ := test.NewNullLogger()
	g, err := New(cfg, logger)
	require.NoError(t, err)

	assert.False(t, g.Step().Stagnant)
	assert.False(t, g.Step().Stagnant)
	assert.True(t, g.Step().Stagnant)
}

func TestStep_RestartsOnStagnation(t *testing.T) {
	cfg := blockConfig()
	cfg.AutoRestart = true
	cfg.StagnationThreshold = 2
	logger, hook := test.NewNullLogger()
	g, err := New(cfg, logger)
	require.NoError(t, err)

	g.Step()
	assert.Empty(t, g.Step().Restarted)
	status := g.Step()

	assert.Equal(t, reasonStagnation, status.Restarted)
	assert.Equal(t, 1, g.Stats().Restarts)
	assert.Equal(t, "restarting", hook.LastEntry().Message)
	assert.Equal(t, reasonStagnation, hook.LastEntry().Data["reason"])
	assert.False(t, g.Step().Stagnant, "history is cleared on restart")
}

func TestStep_RestartsOnExtinction(t *testing.T) {
	cfg := testConfig()
	cfg.Seeding = utils.SeedingDensity
	cfg.Density = 0
	logger, _ := test.NewNullLogger()

	g, err := New(cfg, logger)
	require.NoError(t, err)
	status := g.Step()
	assert.True(t, status.Extinct)
	assert.Empty(t, status.Restarted)

	cfg.AutoRestart = true
	g, err = New(cfg, logger)
	require.NoError(t, err)
	status = g.Step()
	assert.True(t, status.Extinct)
	assert.Equal(t, reasonExtinction, status.Restarted)
}

type recordingRenderer struct {
	clears, displays int
	last             *model.Grid
}

func (r *recordingRenderer) Clear() { r.clears++ }

func (r *recordingRenderer) Display(g *model.Grid) {
	r.displays++
	r.last = g
}

func TestRun_StopsAtMaxGenerations(t *testing.T) {
	cfg := blockConfig()
	cfg.MaxGenerations = 3
	logger, hook := test.NewNullLogger()
	g, err := New(cfg, logger)
	require.NoError(t, err)

	var (
		r   recordingRenderer
		out bytes.Buffer
	)
	require.NoError(t, g.Run(context.Background(), &r, &out))

	assert.Equal(t, 3, g.Generation())
	assert.Equal(t, 4, r.displays)
	assert.Same(t, g.Grid(), r.last)
	assert.Contains(t, out.String(), "Gen: 3 | Living: 4")
	assert.Equal(t, "reached maximum generations limit", hook.LastEntry().Message)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := blockConfig()
	cfg.MaxGenerations = 0
	cfg.TickDelay = time.Hour
	logger, hook := test.NewNullLogger()
	g, err := New(cfg, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var r recordingRenderer
	require.NoError(t, g.Run(ctx, &r, &bytes.Buffer{}))
	assert.Zero(t, g.Generation())
	assert.Equal(t, "shutting down gracefully", hook.LastEntry().Message)
}
