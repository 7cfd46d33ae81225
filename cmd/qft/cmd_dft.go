// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qft/transform"
)

func (a *app) newDFTCmd() *cobra.Command {
	var inverse, fast bool
	cmd := &cobra.Command{
		Use:   "dft [sample...]",
		Short: "Compute the classical DFT of the given samples",
		Long: `Computes X[k] = Σ x[t]·exp(−2πi·k·t/N) by direct summation. Samples are
real numbers or complex literals such as 1+2i.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseSamples(args)
			if err != nil {
				return err
			}

			var out transform.Vector
			switch {
			case fast && inverse:
				out, err = transform.FastTransform(input, transform.WithDirection(transform.Forward), transform.WithNormalization(transform.NormByN))
			case fast:
				out, err = transform.FastTransform(input, transform.WithDirection(transform.Inverse), transform.WithNormalization(transform.NormNone))
			case inverse:
				out, err = transform.IDFT(input)
			default:
				out, err = transform.DFT(input)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			name := "X"
			if inverse {
				name = "x"
			}
			for k, v := range out {
				fmt.Fprintf(w, "%s[%d] = %s\n", name, k, transform.FormatComplex(v))
			}
			a.log.Debug().Int("n", len(input)).Bool("inverse", inverse).Bool("fast", fast).Msg("dft computed")

			return nil
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "compute the inverse DFT (scaled by 1/N)")
	cmd.Flags().BoolVar(&fast, "fast", false, "use the FFT instead of the direct sum")

	return cmd
}

// parseSamples parses each argument as a complex number.
func parseSamples(args []string) (transform.Vector, error) {
	out := make(transform.Vector, len(args))
	for i, s := range args {
		v, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return nil, fmt.Errorf("sample %d (%q): %w", i, s, err)
		}
		out[i] = v
	}

	return out, nil
}
