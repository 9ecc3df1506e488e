package fold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapNonNegative(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0), Map(0, 8))
	require.Equal(uint32(2), Map(1, 8))
	require.Equal(uint32(20), Map(10, 8))
}

func TestMapNegative(t *testing.T) {
	require := require.New(t)

	// -1 represented in 8 bits is 0xFF.
	require.Equal(uint32(1), Map(0xFF, 8))
	// -2 in 8 bits is 0xFE.
	require.Equal(uint32(3), Map(0xFE, 8))
}

// TestMapBijection checks property 5: map_to_pos is a bijection on
// [0, 2^w).
func TestMapBijection(t *testing.T) {
	require := require.New(t)

	const w = 6
	n := uint32(1) << w

	seen := make(map[uint32]bool, n)
	for v := uint32(0); v < n; v++ {
		out := Map(v, w)
		require.Less(out, n, "mapped value must stay within [0, 2^w)")
		require.False(seen[out], "Map must be injective")
		seen[out] = true
	}
	require.Len(seen, int(n))
}

func TestMapMasksHighBits(t *testing.T) {
	require := require.New(t)

	require.Equal(Map(5, 8), Map(0xFFFFFF05, 8))
}
