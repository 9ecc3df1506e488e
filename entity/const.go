// Package entity implements the compression-entity (CE) container: a
// bit-exact, endian-stable header format prefixing every compressed
// payload, carrying every parameter an independent decoder needs.
package entity

// Wire sizes, in bytes, of the generic header and each specific block.
const (
	GenericHeaderSize = 32

	ImagetteBlockSize         = 3
	ImagetteAdaptiveBlockSize = 9
	NonImagetteBlockSize      = 24

	// NonImagetteTupleCount is the number of (spill, cmp_par) slots in the
	// non-imagette specific block.
	NonImagetteTupleCount = 6
	nonImagetteTupleSize  = NonImagetteBlockSize / NonImagetteTupleCount

	// rawFlagBit marks data_type_and_raw_flag bit 15.
	rawFlagBit = uint16(1) << 15
	typeIDMask = uint16(0x7FFF)

	maxU24 = 1<<24 - 1
)
