// Package bitstream implements big-endian, MSB-first bit packing into a
// fixed []uint32 word array at an arbitrary bit offset.
//
// Unlike an append-only bit buffer, PutBits addresses the destination by bit
// offset so callers can interleave writes produced by different encoders
// (entropy codewords, unencoded escape payloads, stuffed values) into one
// contiguous compressed stream without an intermediate buffer.
package bitstream

import "github.com/plato-mission/cmplib/errs"

const wordBits = 32

// PutBits writes the low n bits of value into buf, MSB-first, starting at
// bitOffset. It returns the bit offset immediately after the written field.
//
// buf may be nil to dry-run the call: PutBits still validates n and
// bitOffset and returns the resulting offset, but performs no write. This
// lets callers size a destination buffer before allocating it.
//
// capBits bounds how many bits buf may hold; PutBits returns
// errs.ErrSmallBuffer without writing anything if the field would cross that
// bound. bitOffset must be non-negative and n must not exceed 32.
func PutBits(value uint32, n uint, bitOffset int, buf []uint32, capBits int) (int, error) {
	if bitOffset < 0 {
		return bitOffset, errs.ErrBadEntity
	}
	if n == 0 {
		return bitOffset, nil
	}
	if n > wordBits {
		return bitOffset, errs.ErrBadEntity
	}

	end := bitOffset + int(n)
	if end > capBits {
		return bitOffset, errs.ErrSmallBuffer
	}

	if buf == nil {
		return end, nil
	}

	// mask off any bits of value above the n we're asked to write
	if n < wordBits {
		value &= (uint32(1) << n) - 1
	}

	wordIdx := bitOffset / wordBits
	bitInWord := uint(bitOffset % wordBits)
	remaining := wordBits - bitInWord

	if n <= remaining {
		// unsegmented: the field fits entirely within the current word
		shift := remaining - n
		mask := ((uint32(1) << n) - 1) << shift
		buf[wordIdx] = (buf[wordIdx] &^ mask) | ((value << shift) & mask)

		return end, nil
	}

	// segmented: the field straddles a word boundary
	upperBits := remaining
	lowerBits := n - remaining

	upperMask := (uint32(1) << upperBits) - 1
	buf[wordIdx] = (buf[wordIdx] &^ upperMask) | ((value >> lowerBits) & upperMask)

	lowerShift := wordBits - lowerBits
	lowerMask := ((uint32(1) << lowerBits) - 1) << lowerShift
	buf[wordIdx+1] = (buf[wordIdx+1] &^ lowerMask) | ((value << lowerShift) & lowerMask)

	return end, nil
}

// BitsToWords returns the number of uint32 words needed to hold n bits.
func BitsToWords(n int) int {
	return (n + wordBits - 1) / wordBits
}
