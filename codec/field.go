package codec

import (
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/errs"
	"github.com/plato-mission/cmplib/fold"
	"github.com/plato-mission/cmplib/predict"
)

// FieldState carries the per-field encoding context across the records of
// one compression call: the resolved entropy setup, the field's width
// (both as a bitstream payload and as the max_used_bits bound), and the
// previous rounded sample value diff-mode predicts from.
type FieldState struct {
	Setup   EncoderSetup
	Bits    uint // on-wire width of the field itself (8, 16 or 32)
	MaxBits uint // max_used_bits bound for this field's parameter slot
	prev    uint32
}

// NewFieldState builds a FieldState for one field slot.
func NewFieldState(params cfg.FieldParams, bitsWidth, maxBits uint) FieldState {
	return FieldState{
		Setup:   NewEncoderSetup(params.GolombPar, params.Spill),
		Bits:    bitsWidth,
		MaxBits: maxBits,
	}
}

// Encode applies rounding, selects the predictor and outlier mechanism for
// mode, folds the residual to its unsigned representation, and writes the
// resulting codeword (or escape sequence) at bitOffset. It returns the new
// bit offset and, when mode uses a model, the updated model value for this
// field.
//
// value and model are the raw (unrounded) sample and model-buffer values;
// modelWeight is the model-update numerator in [0,16].
func (fs *FieldState) Encode(mode cfg.CmpMode, value, model uint32, modelWeight, round uint, bitOffset int, buf []uint32, capBits int) (int, uint32, error) {
	rv := value
	if mode != cfg.Raw {
		rv = predict.Round(value, round)
	}

	highMask := uint32(1)<<fs.MaxBits - 1
	if fs.MaxBits >= 32 {
		highMask = ^uint32(0)
	}
	if rv&^highMask != 0 {
		return bitOffset, 0, errs.ErrHighValue
	}

	var rm uint32
	if mode.UsesModel() {
		rm = predict.Round(model, round)
		if rm&^highMask != 0 {
			return bitOffset, 0, errs.ErrHighValue
		}
	}

	var residual uint32
	switch {
	case mode.UsesDiff():
		residual = predict.Diff(rv, fs.prev)
	case mode.UsesModel():
		residual = predict.Model(rv, rm)
	default:
		residual = rv
	}

	mapped := fold.Map(residual, fs.MaxBits)

	var (
		newOff int
		err    error
	)

	switch {
	case mode.EscapeZero():
		newOff, err = EncodeZero(mapped, fs.Setup, fs.MaxBits, bitOffset, buf, capBits)
	case mode.EscapeMulti():
		newOff, err = EncodeMulti(mapped, fs.Setup, fs.MaxBits, bitOffset, buf, capBits)
	default:
		newOff, err = EncodeStuff(rv, fs.Bits, bitOffset, buf, capBits)
	}

	if err != nil {
		return bitOffset, 0, err
	}

	fs.prev = rv

	var updated uint32
	if mode.UsesModel() {
		updated = predict.UpdateModel(rm, rv, uint32(modelWeight))
	}

	return newOff, updated, nil
}
