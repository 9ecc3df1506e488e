package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/sample"
)

func TestCreateImagetteSizesHeaderPlusBlock(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, GenericHeaderSize+ImagetteBlockSize+4)
	e, err := Create(buf, sample.Imagette, false, 4)
	require.NoError(err)
	require.Len(e.Bytes(), GenericHeaderSize+ImagetteBlockSize+4)
}

func TestCreateRejectsInvalidDataType(t *testing.T) {
	buf := make([]byte, 64)
	_, err := Create(buf, sample.DataType(999), false, 0)
	require.Error(t, err)
}

func TestCreateRejectsTooSmallBuffer(t *testing.T) {
	buf := make([]byte, 4)
	_, err := Create(buf, sample.Imagette, false, 100)
	require.Error(t, err)
}

// TestBuildAndReadHeaderRoundTrip checks property 6: a built entity's
// header, read back, reconstructs the same data type, mode, and per-field
// parameters that were used to build it.
func TestBuildAndReadHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.Imagette, cfg.ModelMulti, 11, 2)
	_ = cfg.Apply(c, cfg.WithImagette(63, 623))
	c.Samples = 4
	c.BufferLength = 4

	buf := make([]byte, GenericHeaderSize+ImagetteBlockSize+64)
	ts := Timestamp{Coarse: 100, Fine: 1}
	te := Timestamp{Coarse: 200, Fine: 2}

	e, err := Build(buf, 1, ts, te, 7, 1, c, 4*16)
	require.NoError(err)
	e.Seal()

	gotCfg, gotHeader, err := ReadHeader(e.Bytes())
	require.NoError(err)

	require.Equal(sample.Imagette, gotHeader.DataType)
	require.Equal(cfg.ModelMulti, gotHeader.CmpMode)
	require.Equal(uint16(7), gotHeader.ModelID)
	require.Equal(ts, gotHeader.StartTimestamp)
	require.Equal(te, gotHeader.EndTimestamp)

	require.Equal(4, gotCfg.Samples)
	require.Equal(uint32(63), gotCfg.Params[sample.KeyImagette].GolombPar)
	require.Equal(uint32(623), gotCfg.Params[sample.KeyImagette].Spill)
}

func TestBuildFluxCobRoundTrip(t *testing.T) {
	require := require.New(t)

	c := cfg.New(sample.SFx, cfg.DiffZero, 0, 0)
	params := [6]cfg.FieldParams{
		{GolombPar: 2, Spill: 10},
		{GolombPar: 3, Spill: 20},
		{GolombPar: 4, Spill: 30},
		{GolombPar: 5, Spill: 40},
		{GolombPar: 6, Spill: 50},
		{GolombPar: 7, Spill: 60},
	}
	_ = cfg.Apply(c, cfg.WithFxCob(params))
	c.Samples = 2
	c.BufferLength = 2
	c.MultiEntryHeader = make([]byte, sample.MultiEntryHeaderSize)

	buf := make([]byte, GenericHeaderSize+NonImagetteBlockSize+256)
	e, err := Build(buf, 1, Timestamp{}, Timestamp{}, 0, 0, c, 256)
	require.NoError(err)
	e.Seal()

	gotCfg, _, err := ReadHeader(e.Bytes())
	require.NoError(err)

	require.Equal(uint32(2), gotCfg.Params[sample.KeyExpFlags].GolombPar)
	require.Equal(uint32(10), gotCfg.Params[sample.KeyExpFlags].Spill)
	require.Equal(uint32(7), gotCfg.Params[sample.KeyVariance].GolombPar)
	require.Equal(uint32(60), gotCfg.Params[sample.KeyVariance].Spill)
}
