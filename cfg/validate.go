package cfg

import "github.com/plato-mission/cmplib/errs"

// Validate runs the layered parameter checks §4.7 describes and returns a
// *errs.ConfigError carrying every failed rule's bit, or nil if c is valid.
// Validate runs before any output is written; on error the caller's output
// buffer is left untouched.
func (c *Config) Validate() error {
	var bits errs.Bits

	if !c.Mode.Valid() {
		bits |= errs.BitCmpMode
	}
	if c.ModelValue > 16 {
		bits |= errs.BitModelValue
	}
	if c.Round > 3 {
		bits |= errs.BitCmpMode
	}
	if c.Samples > 0 && c.Output == nil {
		bits |= errs.BitSmallBuffer
	}
	if c.Samples > 0 && c.BufferLength < c.Samples && c.Mode == Raw {
		bits |= errs.BitSmallBuffer
	}

	if !c.DataType.Valid() {
		bits |= errs.BitCmpPar
	} else if c.Mode != Raw {
		bits |= c.validateFieldParams()
	}

	if bits != 0 {
		return errs.NewConfigError(bits)
	}

	return nil
}

func (c *Config) validateFieldParams() errs.Bits {
	var bits errs.Bits

	switch {
	case c.DataType.IsAnyImagette():
		bits |= c.checkParam(c.Params[paramKeyImagette()], MaxCwBitsHW, 63, errs.BitCmpPar)
		if c.DataType.IsAdaptiveImagette() {
			bits |= c.checkParam(c.AP1, MaxCwBitsHW, 63, errs.BitAp1CmpPar)
			bits |= c.checkParam(c.AP2, MaxCwBitsHW, 63, errs.BitAp2CmpPar)
		}
	case c.DataType.IsFluxCob(), c.DataType.IsAux():
		// non-imagette golomb_par is transcribed into the CE header's
		// u8 cmp_par_used field; not bounded at 63 the way imagette's
		// hardware-replica configs are.
		for _, f := range recordFieldKeys(c.DataType) {
			bits |= c.checkParam(c.Params[f], MaxCwBitsSW, 255, errs.BitCmpPar)
		}
	}

	return bits
}

// checkParam validates one (golomb_par, spill) pair: golomb_par must be in
// [1, maxGolombPar], spill must be in [2, MaxSpill(golomb_par, maxCwBits)].
func (c *Config) checkParam(p FieldParams, maxCwBits, maxGolombPar uint32, bit errs.Bits) errs.Bits {
	if p.GolombPar < 1 || p.GolombPar > maxGolombPar {
		return bit
	}
	if p.Spill < 2 || p.Spill > MaxSpill(p.GolombPar, maxCwBits) {
		return bit
	}

	return 0
}
