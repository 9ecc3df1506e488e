package sample

// FieldKey identifies a parameter slot shared by one or more record
// fields. Several physically distinct fields (e.g. ncob_x and ncob_y, or
// every "variance" field across the L_FX family) share one FieldKey because
// they share one (golomb_par, spill) parameter pair and one CE specific-block
// slot: the non-imagette specific block has exactly six (spill, cmp_par)
// tuples, which is why the enumeration has exactly six flux/COB members.
// The three auxiliary slots reuse KeyVariance and add KeyMean and
// KeyPixelsError.
type FieldKey uint8

const (
	KeyExpFlags FieldKey = iota
	KeyFx
	KeyNcob
	KeyEfx
	KeyEcob
	KeyVariance

	KeyMean
	KeyPixelsError

	// KeyImagette is the single parameter slot for the plain imagette
	// payload; it is not one of the six non-imagette slots.
	KeyImagette
)

// FluxCobKeys lists the six FieldKeys that correspond, in order, to the
// six (spill, cmp_par) tuples of the CE non-imagette specific block.
var FluxCobKeys = [6]FieldKey{KeyExpFlags, KeyFx, KeyNcob, KeyEfx, KeyEcob, KeyVariance}

// AuxKeys lists the three FieldKeys the auxiliary aggregate types use; they
// occupy the first three of the six non-imagette specific-block slots.
var AuxKeys = [3]FieldKey{KeyMean, KeyVariance, KeyPixelsError}

// Field describes one field of a data type's per-record payload: its wire
// name, the parameter slot it draws its (golomb_par, spill) pair and
// max-used-bits entry from, and its width in bits.
type Field struct {
	Name string
	Key  FieldKey
	Bits uint
}

var imagetteFields = []Field{{Name: "pixel", Key: KeyImagette, Bits: 16}}

var fieldTables = map[DataType][]Field{
	Imagette:             imagetteFields,
	ImagetteAdaptive:     imagetteFields,
	SatImagette:          imagetteFields,
	SatImagetteAdaptive:  imagetteFields,
	FCamImagette:         imagetteFields,
	FCamImagetteAdaptive: imagetteFields,

	SFx: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
	},
	SFxEfx: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
	},
	SFxNcob: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
	},
	SFxEfxNcobEcob: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
		{Name: "ecob_x", Key: KeyEcob, Bits: 32},
		{Name: "ecob_y", Key: KeyEcob, Bits: 32},
	},

	LFx: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},
	LFxEfx: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},
	LFxNcob: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},
	LFxEfxNcobEcob: {
		{Name: "exp_flags", Key: KeyExpFlags, Bits: 8},
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
		{Name: "ecob_x", Key: KeyEcob, Bits: 32},
		{Name: "ecob_y", Key: KeyEcob, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},

	FFx: {
		{Name: "fx", Key: KeyFx, Bits: 32},
	},
	FFxEfx: {
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
	},
	FFxNcob: {
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
	},
	FFxEfxNcobEcob: {
		{Name: "fx", Key: KeyFx, Bits: 32},
		{Name: "ncob_x", Key: KeyNcob, Bits: 32},
		{Name: "ncob_y", Key: KeyNcob, Bits: 32},
		{Name: "efx", Key: KeyEfx, Bits: 32},
		{Name: "ecob_x", Key: KeyEcob, Bits: 32},
		{Name: "ecob_y", Key: KeyEcob, Bits: 32},
	},

	Offset: {
		{Name: "mean", Key: KeyMean, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},
	FCamOffset: {
		{Name: "mean", Key: KeyMean, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
	},
	Background: {
		{Name: "mean", Key: KeyMean, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
		{Name: "outlier_pixels", Key: KeyPixelsError, Bits: 32},
	},
	FCamBackground: {
		{Name: "mean", Key: KeyMean, Bits: 32},
		{Name: "variance", Key: KeyVariance, Bits: 32},
		{Name: "outlier_pixels", Key: KeyPixelsError, Bits: 32},
	},
	Smearing: {
		{Name: "mean", Key: KeyMean, Bits: 32},
		{Name: "variance_mean", Key: KeyVariance, Bits: 32},
		{Name: "outlier_pixels", Key: KeyPixelsError, Bits: 32},
	},
}

// RecordFields returns the ordered field layout for dt, or nil for Unknown
// and for values outside the enumeration.
func RecordFields(dt DataType) []Field {
	return fieldTables[dt]
}

// SampleSize returns the per-record payload size of dt in bytes.
func SampleSize(dt DataType) int {
	bits := uint(0)
	for _, f := range RecordFields(dt) {
		bits += f.Bits
	}

	return int(bits / 8)
}

// MultiEntryHeaderSize is the fixed size, in bytes, of the record-family
// header that precedes every non-imagette payload (copied verbatim into
// both the output and, in model mode, the updated-model buffer).
const MultiEntryHeaderSize = 12
