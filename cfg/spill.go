package cfg

import "github.com/plato-mission/cmplib/entropy"

// MaxCwBitsHW and MaxCwBitsSW bound the longest codeword MaxSpill will
// admit: 16 bits for configurations that must stay replica-compatible with
// the hardware compressor, 32 bits for pure ICU software configurations.
const (
	MaxCwBitsHW = 16
	MaxCwBitsSW = 32
)

// MaxSpill returns the largest spill threshold that keeps every Golomb
// codeword for parameter golombPar within maxCwBits bits. golombPar must be
// >= 1.
func MaxSpill(golombPar uint32, maxCwBits uint32) uint32 {
	log2m := entropy.ILog2(golombPar)
	if log2m < 0 {
		return 0
	}

	l := uint32(log2m)
	cutoff := (uint32(2) << l) - golombPar
	maxNSymOffset := maxCwBits/2 - 1

	return (maxCwBits-1-l)*golombPar + cutoff - maxNSymOffset - 1
}
