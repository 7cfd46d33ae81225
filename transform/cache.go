// SPDX-License-Identifier: MIT

package transform

import (
	"sync"

	"github.com/katalvlaran/qft/matrix"
)

// cacheKey identifies a built matrix.
type cacheKey struct {
	dim           int
	direction     Direction
	normalization Normalization
}

// Cache memoises matrices built by NewMatrix. It is safe for concurrent use.
// Cached matrices are never exposed: Matrix returns clones, and Apply/Transform
// only read them.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*matrix.Dense
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*matrix.Dense)}
}

// get returns the shared matrix for (dim, opts), building it on first use.
func (c *Cache) get(dim int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	key := cacheKey{dim: dim, direction: o.direction, normalization: o.normalization}

	c.mu.RLock()
	m, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	built, err := NewMatrix(dim, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have won the race; keep the first entry.
	if m, ok = c.entries[key]; ok {
		return m, nil
	}
	c.entries[key] = built

	return built, nil
}

// Matrix returns a private copy of the 2^nBits transform matrix.
// Errors: as Build.
func (c *Cache) Matrix(nBits int, opts ...Option) (*matrix.Dense, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opBuild, err)
	}
	m, err := c.get(dim, opts...)
	if err != nil {
		return nil, err
	}

	return m.Clone().(*matrix.Dense), nil
}

// Transform is the package-level Transform served from the cache.
func (c *Cache) Transform(nBits int, input Vector, opts ...Option) (Vector, error) {
	dim, err := Dimension(nBits)
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	if err = matrix.ValidateVecLen(input, dim); err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	m, err := c.get(dim, opts...)
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}

	return Apply(m, input)
}

// Len reports how many matrices are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset drops every cached matrix.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*matrix.Dense)
}
