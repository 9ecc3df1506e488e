// Package cmplib implements the PLATO ICU software compressor: a
// streaming predictive + Golomb/Rice entropy encoder, and the
// compression-entity container format that prefixes every compressed
// stream.
//
// A typical caller builds a Config, validates and compresses it, then
// wraps the result in a compression entity:
//
//	c := NewImagetteConfig(sample.Imagette, cfg.ModelMulti, 11, 2, 63, cfg.MaxSpill(63, cfg.MaxCwBitsHW))
//	cfg.Apply(c, cfg.WithBuffers(input, model, updatedModel, output, len(input)))
//
//	bitLen, err := Compress(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ent, err := entity.Build(buf, 1, start, end, modelID, modelCounter, c, bitLen)
package cmplib

import (
	"github.com/plato-mission/cmplib/bitstream"
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/codec"
	"github.com/plato-mission/cmplib/endian"
	"github.com/plato-mission/cmplib/errs"
	"github.com/plato-mission/cmplib/sample"
)

// Compress runs one compression call to completion: validate, dispatch the
// generic per-type record loop (which also implements the Raw-mode
// verbatim fast path, since Raw's stuff-mode field encoding is exactly a
// big-endian copy), pad to a 32-bit boundary for non-raw modes, and return
// the resulting bit length.
//
// Validation runs before any bit is written, so on a validation error the
// output buffer is untouched. SmallBuffer and HighValue may leave the
// output partially written; callers must discard the buffer on any
// non-nil error.
func Compress(c *cfg.Config) (int, error) {
	if c.Mode == cfg.Raw && c.Samples > c.BufferLength {
		return 0, errs.ErrSmallBuffer
	}

	if err := c.Validate(); err != nil {
		return 0, err
	}

	if c.Samples == 0 {
		return 0, nil
	}

	if c.Mode == cfg.Raw {
		return codec.CompressRecords(c)
	}

	bits, err := codec.CompressRecords(c)
	if err != nil {
		return bits, err
	}

	padded := padTo32Bits(bits)
	capBits := c.BufferLength * sample.SampleSize(c.DataType) * 8

	if padded > capBits {
		return bits, errs.ErrSmallBuffer
	}

	if err := zeroFill(c.Output, bits, padded, capBits); err != nil {
		return bits, err
	}

	return padded, nil
}

// padTo32Bits rounds a bit length up to the next multiple of 32, via the
// byte-then-word rounding the source uses: ((bits+7)/8 + 3) & ~3 bytes.
func padTo32Bits(bits int) int {
	bytes := (bits + 7) / 8
	paddedBytes := (bytes + 3) &^ 3

	return paddedBytes * 8
}

// zeroFill writes zero bits from bitOffset `from` up to (excluding) `to`,
// the padding step's "clean" trailing bits.
func zeroFill(buf []uint32, from, to, capBits int) error {
	offset := from

	for offset < to {
		n := to - offset
		if n > 32 {
			n = 32
		}

		var err error

		offset, err = bitstream.PutBits(0, uint(n), offset, buf, capBits)
		if err != nil {
			return err
		}
	}

	return nil
}

// PayloadBytes serializes the first bitLen bits of words into a big-endian
// byte slice. Every on-wire write in this library goes through explicit
// byte-order operations (endian.EndianEngine) rather than memory-layout
// punning, so there is no separate little-endian-host byte-swap pass to
// perform here: writing big-endian unconditionally already produces the
// correct wire bytes on every host.
func PayloadBytes(words []uint32, bitLen int) []byte {
	n := bitstream.BitsToWords(bitLen)
	out := make([]byte, n*4)
	engine := endian.GetBigEndianEngine()

	for i := 0; i < n && i < len(words); i++ {
		engine.PutUint32(out[i*4:i*4+4], words[i])
	}

	return out
}
