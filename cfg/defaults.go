package cfg

import "github.com/plato-mission/cmplib/sample"

// DefaultModelConfig returns the imagette ModelMulti starting point the
// source ships as DEFAULT_CFG_MODEL: golomb_par=4, spill=48, model_value=8,
// round=0, with ap1/ap2 alternative pairs (3,35) and (5,60).
func DefaultModelConfig() *Config {
	c := New(sample.Imagette, ModelMulti, 8, 0)
	_ = Apply(c,
		WithImagette(4, 48),
		WithImagetteAdaptive(3, 35, 5, 60),
	)

	return c
}

// DefaultDiffConfig returns the imagette DiffZero starting point the source
// ships as DEFAULT_CFG_DIFF: golomb_par=7, spill=60, model_value=8, with
// ap1/ap2 alternative pairs (6,48) and (8,72).
func DefaultDiffConfig() *Config {
	c := New(sample.Imagette, DiffZero, 8, 0)
	_ = Apply(c,
		WithImagette(7, 60),
		WithImagetteAdaptive(6, 48, 8, 72),
	)

	return c
}
