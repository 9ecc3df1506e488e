package cfg

import "github.com/plato-mission/cmplib/sample"

// FieldParams is a (golomb_par, spill) parameter pair for one field slot.
type FieldParams struct {
	GolombPar uint32
	Spill     uint32
}

// Config carries every parameter a single compression call needs: the
// sample type and mode, the buffers it reads from and writes to, and the
// per-field encoder parameters. A Config is constructed, validated,
// consumed by exactly one call to codec/driver compression, then
// discarded; it is not reused across calls.
type Config struct {
	DataType sample.DataType
	Mode     CmpMode

	// ModelValue is the model-update weighting numerator in [0, 16].
	ModelValue uint32
	// Round is the lossy-rounding right-shift amount in [0, 3].
	Round uint

	// Input holds one slice of field values per record, in the order
	// sample.RecordFields(DataType) describes. len(Input) == Samples.
	Input [][]uint32
	// Model holds the per-record, per-field model values read as the
	// Model-mode predictor. May be nil when Mode does not use a model.
	Model [][]uint32
	// UpdatedModelOut receives the post-compression updated model value
	// for every field of every record, when Mode uses a model. It MAY
	// alias Model for an in-place update.
	UpdatedModelOut [][]uint32

	// Output is the destination word array for the packed bitstream.
	Output []uint32
	// BufferLength is the capacity of Output in record-sized units (i.e.
	// capacity in bits is BufferLength * sample.SampleSize(DataType) * 8).
	BufferLength int

	// MultiEntryHeader is the fixed 12-byte record-family header that
	// precedes non-imagette payloads. Unused for imagette types.
	MultiEntryHeader []byte

	Samples int

	// Params holds the primary (golomb_par, spill) pair per field slot,
	// keyed by sample.FieldKey (sample.KeyImagette for imagette types).
	Params map[sample.FieldKey]FieldParams
	// AP1, AP2 are the imagette-adaptive alternative parameter pairs, used
	// only for caller-side size estimation; they do not drive the actual
	// bitstream.
	AP1, AP2 FieldParams

	MaxBits sample.MaxUsedBits

	ModelID      uint16
	ModelCounter uint8
}

// New constructs a Config for dataType/mode with the given model weight and
// rounding shift, and the version-1 MaxUsedBits table. Buffers and
// per-field parameters are supplied via With* options afterward.
func New(dataType sample.DataType, mode CmpMode, modelValue uint32, round uint) *Config {
	return &Config{
		DataType:   dataType,
		Mode:       mode,
		ModelValue: modelValue,
		Round:      round,
		Params:     make(map[sample.FieldKey]FieldParams),
		MaxBits:    sample.DefaultMaxUsedBits(),
	}
}

// FieldParamsFor returns the configured parameter pair for key, or the zero
// value if none was set.
func (c *Config) FieldParamsFor(key sample.FieldKey) FieldParams {
	return c.Params[key]
}
