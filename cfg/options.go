package cfg

import (
	"github.com/plato-mission/cmplib/internal/options"
	"github.com/plato-mission/cmplib/sample"
)

// Option configures a Config built by New.
type Option = options.Option[*Config]

// Apply applies opts to c in order, stopping at the first error.
func Apply(c *Config, opts ...Option) error {
	return options.Apply(c, opts...)
}

// WithImagette sets the primary (golomb_par, spill) pair for the imagette
// payload's single field.
func WithImagette(golombPar, spill uint32) Option {
	return options.NoError(func(c *Config) {
		c.Params[sample.KeyImagette] = FieldParams{GolombPar: golombPar, Spill: spill}
	})
}

// WithImagetteAdaptive sets the two alternative parameter pairs used for
// caller-side size estimation by imagette-adaptive types.
func WithImagetteAdaptive(ap1GolombPar, ap1Spill, ap2GolombPar, ap2Spill uint32) Option {
	return options.NoError(func(c *Config) {
		c.AP1 = FieldParams{GolombPar: ap1GolombPar, Spill: ap1Spill}
		c.AP2 = FieldParams{GolombPar: ap2GolombPar, Spill: ap2Spill}
	})
}

// WithFieldParams sets the (golomb_par, spill) pair for one flux/COB or
// auxiliary field slot.
func WithFieldParams(key sample.FieldKey, golombPar, spill uint32) Option {
	return options.NoError(func(c *Config) {
		c.Params[key] = FieldParams{GolombPar: golombPar, Spill: spill}
	})
}

// WithFxCob sets every flux/COB field slot at once, in FluxCobKeys order
// (exp_flags, fx, ncob, efx, ecob, variance).
func WithFxCob(params [6]FieldParams) Option {
	return options.NoError(func(c *Config) {
		for i, key := range sample.FluxCobKeys {
			c.Params[key] = params[i]
		}
	})
}

// WithAux sets every auxiliary field slot at once, in AuxKeys order
// (mean, variance, pixels_error).
func WithAux(params [3]FieldParams) Option {
	return options.NoError(func(c *Config) {
		for i, key := range sample.AuxKeys {
			c.Params[key] = params[i]
		}
	})
}

// WithBuffers wires the input/model/output buffers and capacity.
func WithBuffers(input, model, updatedModelOut [][]uint32, output []uint32, bufferLength int) Option {
	return options.NoError(func(c *Config) {
		c.Input = input
		c.Model = model
		c.UpdatedModelOut = updatedModelOut
		c.Output = output
		c.BufferLength = bufferLength
		c.Samples = len(input)
	})
}

// WithMultiEntryHeader sets the 12-byte record-family header copied
// verbatim ahead of non-imagette payloads.
func WithMultiEntryHeader(hdr []byte) Option {
	return options.NoError(func(c *Config) {
		c.MultiEntryHeader = hdr
	})
}

// WithModelID sets the caller-chosen model identifier transcribed into the
// CE header.
func WithModelID(id uint16) Option {
	return options.NoError(func(c *Config) { c.ModelID = id })
}

// WithModelCounter sets the caller-chosen model generation counter
// transcribed into the CE header.
func WithModelCounter(counter uint8) Option {
	return options.NoError(func(c *Config) { c.ModelCounter = counter })
}

// WithMaxUsedBits overrides the default version-1 max-used-bits table.
func WithMaxUsedBits(t sample.MaxUsedBits) Option {
	return options.NoError(func(c *Config) { c.MaxBits = t })
}
