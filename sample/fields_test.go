package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordFieldsImagette(t *testing.T) {
	require := require.New(t)

	fields := RecordFields(Imagette)
	require.Len(fields, 1)
	require.Equal(uint(16), fields[0].Bits)
	require.Equal(KeyImagette, fields[0].Key)
}

func TestRecordFieldsUnknownIsNil(t *testing.T) {
	require.Nil(t, RecordFields(Unknown))
}

func TestSampleSizeMatchesFieldWidths(t *testing.T) {
	require := require.New(t)

	require.Equal(2, SampleSize(Imagette))        // 16 bits
	require.Equal(5, SampleSize(SFx))             // 8 + 32 bits
	require.Equal(25, SampleSize(SFxEfxNcobEcob)) // 8 + 32*6
	require.Equal(12, SampleSize(Background))     // 32*3
}

// TestFluxCobKeysMatchNonImagetteTupleCount checks that FluxCobKeys has
// exactly six entries, matching the CE non-imagette specific block's six
// (spill, cmp_par) tuples.
func TestFluxCobKeysMatchNonImagetteTupleCount(t *testing.T) {
	require.Len(t, FluxCobKeys, 6)
}

func TestAuxKeysCount(t *testing.T) {
	require.Len(t, AuxKeys, 3)
}
