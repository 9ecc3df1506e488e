package sample

import "github.com/plato-mission/cmplib/errs"

// MaxUsedBits is a versioned, field-indexed table of the maximum number of
// bits required to represent any valid value of a given field. It is
// consulted both to size zero-escape payloads and to reject an oversized
// input sample before that sample's bits are written (a hard input error,
// never a silent truncation).
//
// Config holds a MaxUsedBits by value and treats it as read-only for the
// duration of a compression call, mirroring the source's shared,
// never-mutated table pointer without introducing an ownership cycle.
type MaxUsedBits struct {
	version uint8
	bits    map[FieldKey]uint
}

// Version returns the table's identifying version, transcribed into the CE
// header's max_used_bits_version field.
func (t MaxUsedBits) Version() uint8 { return t.version }

// Bits returns the maximum bit width for key, or an error if the table has
// no entry for it.
func (t MaxUsedBits) Bits(key FieldKey) (uint, error) {
	b, ok := t.bits[key]
	if !ok {
		return 0, errs.ErrBadEntity
	}

	return b, nil
}

// DefaultMaxUsedBits is the version-1 table: imagette pixels are native
// u16, exp_flags is a native u8, and every other flux/COB/auxiliary field
// is a native u32.
func DefaultMaxUsedBits() MaxUsedBits {
	return MaxUsedBits{
		version: 1,
		bits: map[FieldKey]uint{
			KeyImagette:    16,
			KeyExpFlags:    8,
			KeyFx:          32,
			KeyNcob:        32,
			KeyEfx:         32,
			KeyEcob:        32,
			KeyVariance:    32,
			KeyMean:        32,
			KeyPixelsError: 32,
		},
	}
}
