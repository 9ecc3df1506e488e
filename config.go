package cmplib

import (
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/sample"
)

// NewImagetteConfig builds a Config for one of the imagette data types
// with its primary (golomb_par, spill) pair set. dt must be one of the
// plain imagette variants (sample.Imagette, sample.SatImagette,
// sample.FCamImagette).
func NewImagetteConfig(dt sample.DataType, mode cfg.CmpMode, modelValue uint32, round uint, golombPar, spill uint32) *cfg.Config {
	c := cfg.New(dt, mode, modelValue, round)
	_ = cfg.Apply(c, cfg.WithImagette(golombPar, spill))

	return c
}

// NewImagetteAdaptiveConfig builds a Config for one of the
// imagette-adaptive data types, with the primary pair plus the ap1/ap2
// alternative pairs used for caller-side size estimation.
func NewImagetteAdaptiveConfig(dt sample.DataType, mode cfg.CmpMode, modelValue uint32, round uint, golombPar, spill, ap1GolombPar, ap1Spill, ap2GolombPar, ap2Spill uint32) *cfg.Config {
	c := cfg.New(dt, mode, modelValue, round)
	_ = cfg.Apply(c,
		cfg.WithImagette(golombPar, spill),
		cfg.WithImagetteAdaptive(ap1GolombPar, ap1Spill, ap2GolombPar, ap2Spill),
	)

	return c
}

// NewFxCobConfig builds a Config for one of the flux/centre-of-brightness
// structured-record types, with its six field parameter slots set in
// sample.FluxCobKeys order.
func NewFxCobConfig(dt sample.DataType, mode cfg.CmpMode, modelValue uint32, round uint, params [6]cfg.FieldParams) *cfg.Config {
	c := cfg.New(dt, mode, modelValue, round)
	_ = cfg.Apply(c, cfg.WithFxCob(params))

	return c
}

// NewAuxConfig builds a Config for one of the auxiliary aggregate types
// (Offset/Background/Smearing), with its field parameter slots set in
// sample.AuxKeys order.
func NewAuxConfig(dt sample.DataType, mode cfg.CmpMode, modelValue uint32, round uint, params [3]cfg.FieldParams) *cfg.Config {
	c := cfg.New(dt, mode, modelValue, round)
	_ = cfg.Apply(c, cfg.WithAux(params))

	return c
}

// OutputByteBudget returns the byte capacity c.BufferLength describes for
// c.DataType, i.e. the largest output Compress may write into before
// returning errs.ErrSmallBuffer.
func OutputByteBudget(c *cfg.Config) int {
	return c.BufferLength * sample.SampleSize(c.DataType)
}
