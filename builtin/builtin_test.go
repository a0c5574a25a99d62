package builtin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitex/builtin"
)

// TestConstants resolves \pi and \e and rejects unknown names.
func TestConstants(t *testing.T) {
	pi, ok := builtin.Constant(`\pi`)
	require.True(t, ok)
	assert.Equal(t, math.Pi, pi.Float())
	assert.True(t, pi.IsDimensionless())

	_, ok = builtin.Constant(`\tau`)
	assert.False(t, ok)
}

// TestArity distinguishes unary, binary and unknown keywords.
func TestArity(t *testing.T) {
	n, ok := builtin.Arity(`\sin`)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = builtin.Arity(`\max`)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = builtin.Arity(`\pi`)
	assert.False(t, ok, "constants have no arity")

	_, ok = builtin.Arity(`\nope`)
	assert.False(t, ok)
}

// TestKernels spot-checks a few registered functions.
func TestKernels(t *testing.T) {
	floor, ok := builtin.Unary(builtin.Floor)
	require.True(t, ok)
	assert.Equal(t, 2.0, floor(2.9))

	sqrt, ok := builtin.Unary(`\sqrt`)
	require.True(t, ok)
	assert.Equal(t, 3.0, sqrt(9))

	max, ok := builtin.Binary(`\max`)
	require.True(t, ok)
	assert.Equal(t, 4.0, max(2, 4))

	logb, ok := builtin.Binary(`\logb`)
	require.True(t, ok)
	assert.InDelta(t, 3.0, logb(2, 8), 1e-12)
}
