// Package cfg defines the compression Config, its functional-option
// constructors, and the layered validation that rejects invalid parameter
// combinations before any bit is encoded.
package cfg

// CmpMode selects the prediction and outlier-handling policy applied to
// every field of every record.
type CmpMode uint8

const (
	// Raw performs no prediction and no entropy coding: the payload is the
	// input verbatim, big-endian per sample.
	Raw CmpMode = iota
	// ModelZero predicts from the model buffer and escapes outliers using
	// the zero-escape mechanism.
	ModelZero
	// DiffZero predicts from the previous record and escapes outliers
	// using the zero-escape mechanism.
	DiffZero
	// ModelMulti predicts from the model buffer and escapes outliers using
	// the multi-escape mechanism.
	ModelMulti
	// DiffMulti predicts from the previous record and escapes outliers
	// using the multi-escape mechanism.
	DiffMulti

	numCmpModes
)

func (m CmpMode) String() string {
	switch m {
	case Raw:
		return "Raw"
	case ModelZero:
		return "ModelZero"
	case DiffZero:
		return "DiffZero"
	case ModelMulti:
		return "ModelMulti"
	case DiffMulti:
		return "DiffMulti"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a member of the enumeration.
func (m CmpMode) Valid() bool { return m < numCmpModes }

// UsesModel reports whether m predicts from the model buffer.
func (m CmpMode) UsesModel() bool { return m == ModelZero || m == ModelMulti }

// UsesDiff reports whether m predicts from the previous record.
func (m CmpMode) UsesDiff() bool { return m == DiffZero || m == DiffMulti }

// EscapeZero reports whether m uses the zero-escape outlier mechanism.
func (m CmpMode) EscapeZero() bool { return m == ModelZero || m == DiffZero }

// EscapeMulti reports whether m uses the multi-escape outlier mechanism.
func (m CmpMode) EscapeMulti() bool { return m == ModelMulti || m == DiffMulti }
