// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qft/factor"
)

func (a *app) newFactorCmd() *cobra.Command {
	var (
		seed     int64
		attempts int
		spectral bool
	)
	cmd := &cobra.Command{
		Use:   "factor [n...]",
		Short: "Factor integers with a simplified Shor loop",
		Long: `Splits each n into two non-trivial factors. By default the order of the
random base is found classically; --spectral runs the simulated QFT order
finder instead (n ≤ 1024).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if attempts < 1 {
				return fmt.Errorf("--attempts must be at least 1, got %d", attempts)
			}
			opts := []factor.Option{factor.WithSeed(seed), factor.WithAttempts(attempts)}
			if spectral {
				opts = append(opts, factor.WithOrderFinder(factor.FindOrderSpectral))
			}

			w := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				p, q, err := factor.Factor(n, opts...)
				switch {
				case errors.Is(err, factor.ErrFactorNotFound):
					a.log.Warn().Uint64("n", n).Msg("no factor found")
					fmt.Fprintf(w, "Factoring %d failed.\n", n)
				case err != nil:
					return err
				default:
					fmt.Fprintf(w, "Factors of %d: %d and %d\n", n, p, q)
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", factor.DefaultSeed, "random seed for base selection")
	f.IntVar(&attempts, "attempts", factor.DefaultAttempts, "random bases to try per number")
	f.BoolVar(&spectral, "spectral", false, "use the QFT-based order finder")

	return cmd
}
