// Package predict implements the sample predictors (Raw, Diff, Model),
// the weighted model update, and the lossy rounding helpers shared by every
// prediction mode.
package predict

// MaxModelValue is the fixed denominator of the weighted model update. The
// original hardware/software source fixes this at 16 rather than exposing
// it as a configurable parameter.
const MaxModelValue = 16

// Round applies lossy rounding: a plain arithmetic right shift. round must
// be in [0,3].
func Round(sample uint32, round uint) uint32 {
	return sample >> round
}

// RoundInverse is the decode-side inverse of Round, exposed because the CE
// header must carry enough information for an independent decoder to
// reconstruct samples even though this library does not implement one.
func RoundInverse(value uint32, round uint) uint32 {
	return value << round
}

// Raw returns the rounded sample unchanged: no prediction is subtracted.
func Raw(roundedSample uint32) uint32 {
	return roundedSample
}

// Diff returns the residual between the current and previous rounded
// samples. Subtraction is performed in the unsigned domain and may wrap;
// fold.Map recovers the correct signed magnitude from the wrapped result.
func Diff(roundedSample, prevRoundedSample uint32) uint32 {
	return roundedSample - prevRoundedSample
}

// Model returns the residual between the current rounded sample and the
// supplied model value.
func Model(roundedSample, modelValue uint32) uint32 {
	return roundedSample - modelValue
}

// UpdateModel computes the new model value from the previous model value
// and the just-compressed (rounded) data value, weighted by modelWeight in
// [0, MaxModelValue]. The multiply-then-divide is carried out with a
// 64-bit intermediate so the product cannot overflow a 32-bit register
// before the truncating division, then narrowed back to uint32.
func UpdateModel(model, data, modelWeight uint32) uint32 {
	sum := uint64(model)*uint64(modelWeight) + uint64(data)*uint64(MaxModelValue-modelWeight)

	return uint32(sum / MaxModelValue)
}
