// Package sample defines the closed enumeration of compression data-product
// types, their per-record field layout, and the max-used-bits table the
// codec validates residuals against.
//
// Each DataType fixes a record layout (sample.RecordFields) and a CE header
// type id (sample.DataType itself, transcribed into the wire header's
// data_type_and_raw_flag field). The imagette family shares one payload
// shape and differs only in which MaxUsedBits table entry and CE id apply,
// matching the source's Normal/fast/F-CAM imagette variants.
package sample

// DataType identifies one compression data-product type. Values are stable
// wire identifiers: they are transcribed verbatim into the 15 low bits of
// the CE header's data_type_and_raw_flag field, so the enumeration order
// below must never change.
type DataType uint16

const (
	Unknown DataType = iota
	Imagette
	ImagetteAdaptive
	SatImagette
	SatImagetteAdaptive
	Offset
	Background
	Smearing
	SFx
	SFxEfx
	SFxNcob
	SFxEfxNcobEcob
	LFx
	LFxEfx
	LFxNcob
	LFxEfxNcobEcob
	FFx
	FFxEfx
	FFxNcob
	FFxEfxNcobEcob
	FCamImagette
	FCamImagetteAdaptive
	FCamOffset
	FCamBackground

	numDataTypes
)

var dataTypeNames = [numDataTypes]string{
	Unknown:              "Unknown",
	Imagette:             "Imagette",
	ImagetteAdaptive:     "ImagetteAdaptive",
	SatImagette:          "SatImagette",
	SatImagetteAdaptive:  "SatImagetteAdaptive",
	Offset:               "Offset",
	Background:           "Background",
	Smearing:             "Smearing",
	SFx:                  "SFx",
	SFxEfx:               "SFxEfx",
	SFxNcob:              "SFxNcob",
	SFxEfxNcobEcob:       "SFxEfxNcobEcob",
	LFx:                  "LFx",
	LFxEfx:               "LFxEfx",
	LFxNcob:              "LFxNcob",
	LFxEfxNcobEcob:       "LFxEfxNcobEcob",
	FFx:                  "FFx",
	FFxEfx:               "FFxEfx",
	FFxNcob:              "FFxNcob",
	FFxEfxNcobEcob:       "FFxEfxNcobEcob",
	FCamImagette:         "FCamImagette",
	FCamImagetteAdaptive: "FCamImagetteAdaptive",
	FCamOffset:           "FCamOffset",
	FCamBackground:       "FCamBackground",
}

func (d DataType) String() string {
	if d >= numDataTypes {
		return "Unknown"
	}

	return dataTypeNames[d]
}

// Valid reports whether d is a member of the enumeration.
func (d DataType) Valid() bool {
	return d < numDataTypes
}

// IsImagette reports whether d uses the single-field imagette payload
// shape (the plain, non-adaptive variants).
func (d DataType) IsImagette() bool {
	switch d {
	case Imagette, SatImagette, FCamImagette:
		return true
	default:
		return false
	}
}

// IsAdaptiveImagette reports whether d uses the imagette payload shape but
// additionally carries the ap1/ap2 alternative parameter pairs.
func (d DataType) IsAdaptiveImagette() bool {
	switch d {
	case ImagetteAdaptive, SatImagetteAdaptive, FCamImagetteAdaptive:
		return true
	default:
		return false
	}
}

// IsAnyImagette reports whether d uses the imagette payload shape, adaptive
// or not.
func (d DataType) IsAnyImagette() bool {
	return d.IsImagette() || d.IsAdaptiveImagette()
}

// IsAux reports whether d is one of the auxiliary aggregate types
// (Offset/Background/Smearing and their F-CAM variants).
func (d DataType) IsAux() bool {
	switch d {
	case Offset, Background, Smearing, FCamOffset, FCamBackground:
		return true
	default:
		return false
	}
}

// IsFluxCob reports whether d is one of the flux/centre-of-brightness
// structured-record families (S_FX/L_FX/F_FX and their variants).
func (d DataType) IsFluxCob() bool {
	return !d.IsAnyImagette() && !d.IsAux() && d != Unknown
}
