package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/conway/utils"
)

// options holds the CLI flags shared by every subcommand
type options struct {
	configPath     string
	logLevel       string
	size           int
	seed           int64
	seeding        string
	density        float64
	noiseThreshold float64
	tickDelay      time.Duration
	maxGenerations int
	parallel       bool
	workers        int
	memoryPool     bool
	autoRestart    bool
	cellPixels     int
}

// NewRootCmd builds the CLI root command with its subcommands. The window
// subcommand is only registered when openWindow is not nil.
func NewRootCmd(openWindow WindowFunc) *cobra.Command {
	opts := &options{}
	defaults := utils.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "conway",
		Short:         "Conway's Game of Life on a bounded square grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")
	flags.StringVar(&opts.logLevel, "log", defaults.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	flags.IntVar(&opts.size, "size", defaults.Size, "Number of rows and columns of the grid")
	flags.Int64Var(&opts.seed, "seed", defaults.Seed, "Seed for every random choice; 0 picks one from the clock")
	flags.StringVar(&opts.seeding, "seeding", defaults.Seeding, "Initial grid: random, density, noise or patterns")
	flags.Float64Var(&opts.density, "density", defaults.Density, "Probability of a living cell for density seeding")
	flags.Float64Var(&opts.noiseThreshold, "noise-threshold", defaults.NoiseThreshold, "Noise level above which a cell is alive for noise seeding")
	flags.DurationVar(&opts.tickDelay, "tick", defaults.TickDelay, "Delay between generations")
	flags.IntVar(&opts.maxGenerations, "max-generations", defaults.MaxGenerations, "Stop after this many generations; 0 runs forever")
	flags.BoolVar(&opts.parallel, "parallel", defaults.Parallel, "Compute each generation with one goroutine per band of rows")
	flags.IntVar(&opts.workers, "workers", defaults.Workers, "Number of row bands for parallel generations; 0 uses one per CPU")
	flags.BoolVar(&opts.memoryPool, "pool", defaults.UseMemoryPool, "Recycle discarded generations")
	flags.BoolVar(&opts.autoRestart, "auto-restart", defaults.AutoRestart, "Reseed the grid on extinction or stagnation")
	flags.IntVar(&opts.cellPixels, "cell-pixels", defaults.CellPixels, "Side of a cell in the window, in pixels")

	rootCmd.AddCommand(newRunCmd(opts), newStepCmd(opts))
	if openWindow != nil {
		rootCmd.AddCommand(newWindowCmd(opts, openWindow))
	}
	return rootCmd
}

// Execute runs the CLI root command
func Execute(openWindow WindowFunc) {
	if err := NewRootCmd(openWindow).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, if any, and applies the flags the user
// set on top of it. It also configures the logrus level.
func resolveConfig(cmd *cobra.Command, opts *options) (utils.Config, error) {
	config := utils.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log") {
		config.LogLevel = opts.logLevel
	}
	if flags.Changed("size") {
		config.Size = opts.size
	}
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if flags.Changed("seeding") {
		config.Seeding = opts.seeding
	}
	if flags.Changed("density") {
		config.Density = opts.density
	}
	if flags.Changed("noise-threshold") {
		config.NoiseThreshold = opts.noiseThreshold
	}
	if flags.Changed("tick") {
		config.TickDelay = opts.tickDelay
	}
	if flags.Changed("max-generations") {
		config.MaxGenerations = opts.maxGenerations
	}
	if flags.Changed("parallel") {
		config.Parallel = opts.parallel
	}
	if flags.Changed("workers") {
		config.Workers = opts.workers
	}
	if flags.Changed("pool") {
		config.UseMemoryPool = opts.memoryPool
	}
	if flags.Changed("auto-restart") {
		config.AutoRestart = opts.autoRestart
	}
	if flags.Changed("cell-pixels") {
		config.CellPixels = opts.cellPixels
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return config, errors.Wrapf(err, "[resolveConfig] invalid log level: %s", config.LogLevel)
	}
	logrus.SetLevel(level)

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func describe(config utils.Config) string {
	return fmt.Sprintf("%dx%d %s grid", config.Size, config.Size, config.Seeding)
}
