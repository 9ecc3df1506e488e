package predict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, round := range []uint{0, 1, 2, 3} {
		for _, v := range []uint32{0, 1, 5, 4095} {
			r := Round(v, round)
			require.Equal(v>>round, r)
			require.Equal(r<<round, RoundInverse(r, round))
		}
	}
}

func TestRawIsIdentity(t *testing.T) {
	require := require.New(t)
	require.Equal(uint32(42), Raw(42))
}

func TestDiff(t *testing.T) {
	require := require.New(t)
	require.Equal(uint32(4), Diff(20, 16))
	// wraps on underflow; fold.Map recovers the signed magnitude.
	require.Equal(uint32(0xFFFFFFFF), Diff(0, 1))
}

func TestModel(t *testing.T) {
	require := require.New(t)
	require.Equal(uint32(3), Model(10, 7))
}

func TestUpdateModel(t *testing.T) {
	require := require.New(t)

	// weight 16 -> entirely the old model value.
	require.Equal(uint32(100), UpdateModel(100, 50, 16))
	// weight 0 -> entirely the new data value.
	require.Equal(uint32(50), UpdateModel(100, 50, 0))
	// weight 8 -> midpoint, truncating division.
	require.Equal(uint32(75), UpdateModel(100, 50, 8))
}

// TestUpdateModelAliasIdempotent checks property 7: computing the updated
// model sequence with an aliased (model == updatedModelOut) buffer matches
// the non-aliased sequence field-by-field.
func TestUpdateModelAliasIdempotent(t *testing.T) {
	require := require.New(t)

	data := []uint32{10, 20, 30, 5, 0, 1000}
	const weight = 11

	nonAliased := make([]uint32, len(data))
	model := uint32(8)
	for i, d := range data {
		nonAliased[i] = UpdateModel(model, d, weight)
		model = nonAliased[i]
	}

	aliased := make([]uint32, len(data))
	aliasedModel := uint32(8)
	for i, d := range data {
		updated := UpdateModel(aliasedModel, d, weight)
		aliasedModel = updated // in-place update: updatedModelOut aliases model
		aliased[i] = updated
	}

	require.Equal(nonAliased, aliased)
}

func TestUpdateModelOverflowsPastUint32Intermediate(t *testing.T) {
	require := require.New(t)

	// model and data both near uint32 max: model*weight can exceed 2^32
	// and must be carried in a 64-bit intermediate.
	const big = 0xFFFFFFF0
	got := UpdateModel(big, big, 16)
	require.Equal(uint32(big), got)
}
