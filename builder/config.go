// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (stochastic builders fail with ErrNeedRandSource)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by builders.
// It is passed by value.
type builderConfig struct {
	// Node ID strategy: index → ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order (last wins) on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
