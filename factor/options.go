// SPDX-License-Identifier: MIT

package factor

import "math/rand"

// OrderFinder returns the multiplicative order of a modulo n.
type OrderFinder func(a, n uint64) (uint64, error)

// Defaults.
const (
	// DefaultAttempts is the number of random bases Factor tries.
	DefaultAttempts = 100
	// DefaultSeed seeds the base selection when no RNG is configured.
	DefaultSeed int64 = 1
)

// Option configures Factor.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	attempts int
	finder   OrderFinder
}

// WithSeed selects bases from a source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand selects bases from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("factor: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithAttempts sets how many random bases are tried. Panics if k < 1.
func WithAttempts(k int) Option {
	if k < 1 {
		panic("factor: WithAttempts(k<1)")
	}

	return func(c *config) { c.attempts = k }
}

// WithOrderFinder replaces the classical order finder, e.g. with
// FindOrderSpectral. Panics on nil.
func WithOrderFinder(f OrderFinder) Option {
	if f == nil {
		panic("factor: WithOrderFinder(nil)")
	}

	return func(c *config) { c.finder = f }
}

func newConfig(opts ...Option) config {
	c := config{
		attempts: DefaultAttempts,
		finder:   FindOrder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}
