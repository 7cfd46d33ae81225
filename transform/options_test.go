// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qft/transform"
)

func TestOptions_PanicOnUnknownValues(t *testing.T) {
	assert.Panics(t, func() { transform.WithDirection(transform.Direction(7)) })
	assert.Panics(t, func() { transform.WithNormalization(transform.Normalization(-1)) })
	assert.NotPanics(t, func() { transform.WithWorkers(-3) })
}

func TestDirection(t *testing.T) {
	assert.Equal(t, 1.0, transform.Forward.Sign())
	assert.Equal(t, -1.0, transform.Inverse.Sign())
	assert.Equal(t, transform.Inverse, transform.Forward.Reverse())
	assert.Equal(t, transform.Forward, transform.Inverse.Reverse())
	assert.Equal(t, "forward", transform.Forward.String())
	assert.Equal(t, "Direction(9)", transform.Direction(9).String())
	assert.Equal(t, "1/N", transform.NormByN.String())
}
