package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/sample"
)

func TestCompressRecordsImagetteRaw(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.Imagette, cfg.Raw, 0, 0)
	c.Input = [][]uint32{{23}, {42}}
	c.Samples = 2
	c.BufferLength = 2
	c.Output = make([]uint32, 1)

	bits, err := CompressRecords(c)
	require.NoError(err)
	require.Equal(32, bits)
	require.Equal(uint32(23), c.Output[0]>>16)
	require.Equal(uint32(42), c.Output[0]&0xFFFF)
}

func TestCompressRecordsWritesMultiEntryHeaderForNonImagette(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.Offset, cfg.Raw, 0, 0)
	c.Input = [][]uint32{{100, 5}}
	c.Samples = 1
	c.BufferLength = 3 // header (96 bits) + one 64-bit record needs >= 160 bits
	c.Output = make([]uint32, 5)
	c.MultiEntryHeader = make([]byte, sample.MultiEntryHeaderSize)
	for i := range c.MultiEntryHeader {
		c.MultiEntryHeader[i] = byte(i + 1)
	}

	bits, err := CompressRecords(c)
	require.NoError(err)
	require.Equal(sample.MultiEntryHeaderSize*8+64, bits)
	require.Equal(uint32(0x01020304), c.Output[0])
}

func TestCompressRecordsUnknownDataTypeIsNoOp(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.Unknown, cfg.Raw, 0, 0)
	c.Samples = 0

	bits, err := CompressRecords(c)
	require.NoError(err)
	require.Equal(0, bits)
}

func TestCompressRecordsPropagatesSmallBuffer(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.Imagette, cfg.Raw, 0, 0)
	c.Input = [][]uint32{{1}, {2}, {3}}
	c.Samples = 3
	c.BufferLength = 1
	c.Output = make([]uint32, 1)

	_, err := CompressRecords(c)
	require.Error(err)
}
