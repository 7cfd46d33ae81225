// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_edges.go — uniform random edge sampling.
//
// Model:
//   - numEdges independent trials; each draws two node indices uniformly
//     from [0, numNodes) with replacement.
//   - A trial whose endpoints coincide is dropped; nothing is redrawn.
//   - Duplicates are kept, and (a,b) and (b,a) are distinct pairs.
//
// Determinism:
//   - For a fixed seed the draws happen in trial order (first endpoint, then
//     second), so the output is reproducible.

package builder

import "fmt"

const (
	methodRandomEdges   = "RandomEdges"
	minRandomEdgesNodes = 1
)

// Pair is a sampled directed edge between two node indices.
type Pair struct {
	From int
	To   int
}

func (p Pair) String() string { return fmt.Sprintf("%d -> %d", p.From, p.To) }

// RandomEdges samples up to numEdges pairs of distinct node indices in
// [0, numNodes).
//
// Errors:
//   - ErrTooFewVertices if numNodes < 1.
//   - ErrBadSize if numEdges < 0.
//   - ErrNeedRandSource if numEdges > 0 and no RNG is configured.
//
// Complexity: O(numEdges) time and space.
func RandomEdges(numNodes, numEdges int, opts ...BuilderOption) ([]Pair, error) {
	if numNodes < minRandomEdgesNodes {
		return nil, builderErrorf(methodRandomEdges, ErrTooFewVertices, "numNodes=%d < min=%d", numNodes, minRandomEdgesNodes)
	}
	if numEdges < 0 {
		return nil, builderErrorf(methodRandomEdges, ErrBadSize, "numEdges=%d", numEdges)
	}
	cfg := newBuilderConfig(opts...)
	if numEdges == 0 {
		return []Pair{}, nil
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomEdges, ErrNeedRandSource, "numEdges=%d", numEdges)
	}

	pairs := make([]Pair, 0, numEdges)
	var u, v int
	for i := 0; i < numEdges; i++ {
		u = cfg.rng.Intn(numNodes)
		v = cfg.rng.Intn(numNodes)
		if u != v {
			pairs = append(pairs, Pair{From: u, To: v})
		}
	}

	return pairs, nil
}
