// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qft/internal/logger"
)

// app carries state shared by every subcommand.
type app struct {
	log zerolog.Logger
}

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can execute commands independently.
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	var (
		logLevel string
		pretty   bool
	)
	root := &cobra.Command{
		Use:   "qft",
		Short: "Quantum and discrete Fourier transform playground",
		Long: `qft builds quantum Fourier transform matrices, applies them to basis
states and prints the significant amplitudes. Companion commands run the
classical DFT, build a small knowledge graph, sample random graphs and
factor integers with a simplified Shor loop.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			if cmd.Flags().Changed("log-level") {
				cfg.Level = logLevel
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			a.log = logger.New(cfg, cmd.ErrOrStderr())
			a.log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("starting")
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable log output")

	root.AddCommand(
		a.newQFTCmd(),
		a.newDFTCmd(),
		a.newGraphCmd(),
		a.newRandomGraphCmd(),
		a.newFactorCmd(),
	)

	// Errors are logged once here; cobra's own printing is silenced.
	for _, sub := range root.Commands() {
		wrapRunE(a, sub)
	}

	return root
}

// wrapRunE logs the error returned by cmd before handing it back to cobra.
func wrapRunE(a *app, cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if err != nil {
			a.log.Error().Err(err).Str("command", c.Name()).Msg("command failed")
		}

		return err
	}
}
