package cfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxSpillHardware(t *testing.T) {
	require := require.New(t)

	// golomb_par=63, hardware-compatible (16-bit codewords).
	require.Equal(uint32(623), MaxSpill(63, MaxCwBitsHW))
}

func TestMaxSpillPowerOfTwo(t *testing.T) {
	require := require.New(t)

	// golomb_par=1 (log2m=0): Rice fast path, cutoff=2-1=1.
	got := MaxSpill(1, MaxCwBitsHW)
	require.Positive(got)
}

func TestMaxSpillGrowsWithCwBits(t *testing.T) {
	require := require.New(t)

	require.Greater(MaxSpill(4, MaxCwBitsSW), MaxSpill(4, MaxCwBitsHW))
}
