package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeZeroDirectPath(t *testing.T) {
	require := require.New(t)

	setup := NewEncoderSetup(1, 4)
	buf := make([]uint32, 1)

	// mapped=0 < spill-1=3: direct path, codeword for mapped+1=1 under
	// Rice(log2m=0): q=1, qc=1, r=0 -> cw=0b10, length=2.
	off, err := EncodeZero(0, setup, 8, 0, buf, 32)
	require.NoError(err)
	require.Equal(2, off)
	require.Equal(uint32(0x80000000), buf[0])
}

func TestEncodeZeroEscapedPath(t *testing.T) {
	require := require.New(t)

	setup := NewEncoderSetup(1, 4)
	buf := make([]uint32, 1)

	// mapped=5 >= spill-1=3: escape path, codeword for 0 (1 bit, value 0)
	// then mapped+1=6 unencoded in maxBits=8 bits.
	off, err := EncodeZero(5, setup, 8, 0, buf, 32)
	require.NoError(err)
	require.Equal(9, off)
}

func TestEncodeMultiDirectPath(t *testing.T) {
	require := require.New(t)

	setup := NewEncoderSetup(1, 8)
	buf := make([]uint32, 1)

	off, err := EncodeMulti(3, setup, 8, 0, buf, 32)
	require.NoError(err)
	require.Positive(off)
}

func TestEncodeMultiEscapePath(t *testing.T) {
	require := require.New(t)

	setup := NewEncoderSetup(1, 4)
	buf := make([]uint32, 2)

	// mapped=10 >= spill=4: delta=6, k=(31-clz(6))>>1=(31-29)>>1=1,
	// unencodedLen=(k+1)*2=4.
	off, err := EncodeMulti(10, setup, 8, 0, buf, 64)
	require.NoError(err)
	require.Positive(off)
}

func TestEncodeMultiZeroDeltaHasZeroK(t *testing.T) {
	require := require.New(t)

	setup := NewEncoderSetup(1, 4)
	buf := make([]uint32, 1)

	// mapped==spill: delta=0, k=0 (no leading-zero count on zero), so the
	// escape is followed by a 2-bit unencoded zero field.
	off, err := EncodeMulti(4, setup, 8, 0, buf, 32)
	require.NoError(err)
	require.Positive(off)
}

func TestEncodeStuffWritesFixedWidth(t *testing.T) {
	require := require.New(t)

	buf := make([]uint32, 1)
	off, err := EncodeStuff(0xABCD, 16, 0, buf, 32)
	require.NoError(err)
	require.Equal(16, off)
	require.Equal(uint32(0xABCD0000), buf[0])
}

func TestEncodeStuffSmallBuffer(t *testing.T) {
	buf := make([]uint32, 1)
	_, err := EncodeStuff(1, 16, 24, buf, 32)
	require.Error(t, err)
}
