package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/conway/game"
	"github.com/sheikhrachel/conway/model"
)

// WindowFunc opens a window drawing g with square cells of cellPixels and
// blocks until it is closed
type WindowFunc func(g *game.Game, cellPixels int) error

// newRunCmd plays the game in the terminal until interrupted
func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			g, err := game.New(config, logrus.StandardLogger())
			if err != nil {
				return err
			}
			logrus.Infof("Starting %s, press Ctrl+C to exit", describe(config))

			// Handle Ctrl+C gracefully
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return g.Run(ctx, model.NewTerminalRenderer(), os.Stdout)
		},
	}
}

// newWindowCmd plays the game in a desktop window
func newWindowCmd(opts *options, openWindow WindowFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run the simulation in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			g, err := game.New(config, logrus.StandardLogger())
			if err != nil {
				return err
			}
			logrus.Infof("Opening window for %s", describe(config))

			return openWindow(g, config.CellPixels)
		},
	}
}

// newStepCmd prints a fixed number of generations as text, for debugging
func newStepCmd(opts *options) *cobra.Command {
	var generations int

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "Print the first generations of the simulation as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			config.AutoRestart = false

			g, err := game.New(config, logrus.StandardLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generation 0\n%s\n", g.Grid())
			for range generations {
				status := g.Step()
				fmt.Fprintf(out, "\nGeneration %d (living %d)\n%s\n", status.Generation, status.Living, g.Grid())
			}
			return nil
		},
	}
	stepCmd.Flags().IntVar(&generations, "generations", 1, "Number of generations to print after the initial one")
	return stepCmd
}
