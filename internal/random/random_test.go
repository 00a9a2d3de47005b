package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameArray(t *testing.T) {
	a, err := New(99, DefaultMin, DefaultMax)
	require.NoError(t, err)
	b, err := New(99, DefaultMin, DefaultMax)
	require.NoError(t, err)

	assert.Equal(t, a.Array(1000), b.Array(1000))
}

func TestValuesStayInRange(t *testing.T) {
	g, err := New(3, -5, 5)
	require.NoError(t, err)

	lo, hi := g.Range()
	assert.Equal(t, int64(-5), lo)
	assert.Equal(t, int64(5), hi)

	seen := make(map[int64]bool)
	for _, v := range g.Array(10000) {
		require.GreaterOrEqual(t, v, int64(-5))
		require.LessOrEqual(t, v, int64(5))
		seen[v] = true
	}
	// both closed ends are reachable
	assert.True(t, seen[-5])
	assert.True(t, seen[5])
}

func TestSingleValueRange(t *testing.T) {
	g, err := New(1, 7, 7)
	require.NoError(t, err)
	for _, v := range g.Array(100) {
		assert.Equal(t, int64(7), v)
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	g, err := New(0, 0, 1)
	require.NoError(t, err)
	assert.NotZero(t, g.Seed())
}

func TestInvalidRange(t *testing.T) {
	_, err := New(1, 10, -10)
	assert.Error(t, err)
}
