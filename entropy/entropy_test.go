package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestILog2(t *testing.T) {
	require := require.New(t)

	require.Equal(-1, ILog2(0))
	require.Equal(0, ILog2(1))
	require.Equal(1, ILog2(2))
	require.Equal(1, ILog2(3))
	require.Equal(2, ILog2(4))
	require.Equal(5, ILog2(63))
	require.Equal(6, ILog2(64))
	require.Equal(31, ILog2(1<<31))
}

func TestIsPowerOfTwo(t *testing.T) {
	require := require.New(t)

	require.False(IsPowerOfTwo(0))
	require.True(IsPowerOfTwo(1))
	require.True(IsPowerOfTwo(2))
	require.False(IsPowerOfTwo(3))
	require.True(IsPowerOfTwo(1 << 30))
}

func TestRiceBasic(t *testing.T) {
	require := require.New(t)

	// m=4 (log2m=2): value=9 -> q=2, r=1, rl=3, qc=3 -> cw=(3<<3)|1=25, len=5.
	cw, l := Rice(9, 2)
	require.Equal(uint32(25), cw)
	require.Equal(uint32(5), l)

	// value < m encodes with q=0: unary prefix is a single terminating 0.
	cw, l = Rice(1, 2)
	require.Equal(uint32(1), cw)
	require.Equal(uint32(3), l)
}

func TestRiceLog2MThirtyOne(t *testing.T) {
	require := require.New(t)

	// With log2m=31, m=1<<31; any value < m has q=0, exercising the
	// rl&0x1F modular shift without relying on a 32-bit shift amount.
	cw, l := Rice(5, 31)
	require.Equal(uint32(5), cw)
	require.Equal(uint32(32), l)
}

func TestGolombMatchesRiceForPowerOfTwo(t *testing.T) {
	require := require.New(t)

	for _, v := range []uint32{0, 1, 4, 9, 100} {
		rcw, rl := Rice(v, 3)
		gcw, gl := Golomb(v, 8, 3)
		require.Equal(rcw, gcw)
		require.Equal(rl, gl)
	}
}

func TestGolombCutoff(t *testing.T) {
	require := require.New(t)

	// m=5: log2m=ILog2(5)=2, cutoff = 2^3-5 = 3.
	cw, l := Golomb(2, 5, 2)
	require.Equal(uint32(2), cw)
	require.Equal(uint32(3), l)

	// value==cutoff enters group 0 overflow path (g=0).
	cw, l = Golomb(3, 5, 2)
	require.Equal(uint32(4), l)
	_ = cw
}
