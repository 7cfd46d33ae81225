// SPDX-License-Identifier: MIT

package transform

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qft/matrix"
)

// ApplyParallel computes the same product as Apply with output rows split
// across goroutines. Each row is the same sequential dot product Apply
// performs, so the results are identical, not merely close.
//
// Workers come from WithWorkers (GOMAXPROCS by default) and never exceed
// the row count. Cancellation is checked between rows; a cancelled ctx
// yields ctx.Err().
//
// Errors: as Apply, plus the context error.
func ApplyParallel(ctx context.Context, m matrix.Matrix, input Vector, opts ...Option) (Vector, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, transformErrorf(opApplyParallel, err)
	}
	n := m.Rows()
	if err := matrix.ValidateVecLen(input, m.Cols()); err != nil {
		return nil, transformErrorf(opApplyParallel, err)
	}
	o := gatherOptions(opts...)
	workers := o.workers
	if workers > n {
		workers = n
	}

	out := make(Vector, n)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			// Rows are striped: worker w owns rows w, w+workers, ...
			for row := start; row < n; row += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := matrix.MatVecRow(m, input, row)
				if err != nil {
					return err
				}
				out[row] = v
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, transformErrorf(opApplyParallel, err)
	}

	return out, nil
}
