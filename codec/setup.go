// Package codec implements encode_value (zero-escape, multi-escape, and
// stuff outlier handling) and the generic per-data-type record encoding
// loop that drives it.
//
// Rather than one hand-written compress routine per sample.DataType (the
// source's ~20 near-duplicate compress_* functions, one per data-type/mode
// combination), this package drives a single record loop from
// sample.RecordFields: a deliberate Go-idiomatic generalization recorded
// in DESIGN.md. The per-type field order and width are unchanged; only the
// mechanism that walks them is shared.
package codec

import "github.com/plato-mission/cmplib/entropy"

// EncoderSetup holds the resolved entropy-coding parameters for one field
// slot: which code generator applies, and the escape threshold.
type EncoderSetup struct {
	GolombPar uint32
	log2m     uint32
	isRice    bool
	Spill     uint32
}

// NewEncoderSetup resolves golombPar/spill into an EncoderSetup, selecting
// Rice whenever golombPar is a power of two and Golomb otherwise.
func NewEncoderSetup(golombPar, spill uint32) EncoderSetup {
	log2m := entropy.ILog2(golombPar)
	if log2m < 0 {
		log2m = 0
	}

	return EncoderSetup{
		GolombPar: golombPar,
		log2m:     uint32(log2m),
		isRice:    entropy.IsPowerOfTwo(golombPar),
		Spill:     spill,
	}
}

// codeword returns the entropy codeword and its bit length for value.
func (s EncoderSetup) codeword(value uint32) (uint32, uint32) {
	if s.isRice {
		return entropy.Rice(value, s.log2m)
	}

	return entropy.Golomb(value, s.GolombPar, s.log2m)
}
