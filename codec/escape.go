package codec

import (
	"math/bits"

	"github.com/plato-mission/cmplib/bitstream"
)

// EncodeZero encodes mapped (an already-folded, non-negative residual)
// using the zero-escape mechanism: zero is reserved as an escape marker, so
// every in-range value is encoded as value+1; out-of-range values are
// signalled by the codeword for 0 followed by the (also +1) value written
// unencoded in maxBits bits.
func EncodeZero(mapped uint32, setup EncoderSetup, maxBits uint, bitOffset int, buf []uint32, capBits int) (int, error) {
	if setup.Spill > 0 && mapped < setup.Spill-1 {
		cw, l := setup.codeword(mapped + 1)
		return bitstream.PutBits(cw, uint(l), bitOffset, buf, capBits)
	}

	cw, l := setup.codeword(0)

	off, err := bitstream.PutBits(cw, uint(l), bitOffset, buf, capBits)
	if err != nil {
		return off, err
	}

	return bitstream.PutBits(mapped+1, maxBits, off, buf, capBits)
}

// EncodeMulti encodes mapped using the multi-escape mechanism: values below
// spill are coded directly; values at or above spill emit an escalating
// escape codeword (spill+k, where k grows with the magnitude of the
// overflow) followed by the overflow written unencoded in 2*(k+1) bits, two
// bits more for each escape level.
func EncodeMulti(mapped uint32, setup EncoderSetup, maxBits uint, bitOffset int, buf []uint32, capBits int) (int, error) {
	if mapped < setup.Spill {
		cw, l := setup.codeword(mapped)
		return bitstream.PutBits(cw, uint(l), bitOffset, buf, capBits)
	}

	delta := mapped - setup.Spill

	var k uint32
	if delta != 0 {
		k = uint32(31-bits.LeadingZeros32(delta)) >> 1
	}

	escapeSym := setup.Spill + k
	unencodedLen := (k + 1) * 2

	cw, l := setup.codeword(escapeSym)

	off, err := bitstream.PutBits(cw, uint(l), bitOffset, buf, capBits)
	if err != nil {
		return off, err
	}

	return bitstream.PutBits(delta, uint(unencodedLen), off, buf, capBits)
}

// EncodeStuff writes value as a fixed-width field of width bits with no
// entropy coding: the raw-within-compressed fallback.
func EncodeStuff(value uint32, width uint, bitOffset int, buf []uint32, capBits int) (int, error) {
	return bitstream.PutBits(value, width, bitOffset, buf, capBits)
}
