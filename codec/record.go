package codec

import (
	"github.com/plato-mission/cmplib/bitstream"
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/sample"
)

// CompressRecords runs the generic per-data-type record loop (§4.6): for
// every record, for every field in sample.RecordFields(c.DataType), it
// resolves the field's FieldState from c.Params and drives FieldState.Encode,
// propagating any error immediately. It replaces the source's one
// hand-written routine per data type with one loop parameterized by the
// field table, since every data type's record loop differs only in which
// fields exist and which parameter slot each draws from.
//
// For non-imagette types, the 12-byte multi-entry header is packed
// verbatim into c.Output ahead of the per-record loop, and its 96 bits
// count toward the returned bit length. The header is not written into
// c.UpdatedModelOut, which holds only the per-record field values.
func CompressRecords(c *cfg.Config) (int, error) {
	fields := sample.RecordFields(c.DataType)
	if fields == nil {
		return 0, nil
	}

	states := make([]FieldState, len(fields))
	for i, f := range fields {
		maxBits, err := c.MaxBits.Bits(f.Key)
		if err != nil {
			return 0, err
		}

		states[i] = NewFieldState(c.FieldParamsFor(f.Key), f.Bits, maxBits)
	}

	capBits := c.BufferLength * sample.SampleSize(c.DataType) * 8

	bitOffset := 0
	if !c.DataType.IsAnyImagette() && len(c.MultiEntryHeader) > 0 {
		var err error
		bitOffset, err = writeMultiEntryHeader(c.MultiEntryHeader, c.Output, capBits)
		if err != nil {
			return 0, err
		}
	}

	for i := 0; i < c.Samples; i++ {
		record := c.Input[i]

		var model []uint32
		if c.Mode.UsesModel() && c.Model != nil {
			model = c.Model[i]
		}

		for j := range fields {
			var modelVal uint32
			if model != nil {
				modelVal = model[j]
			}

			newOff, updated, err := states[j].Encode(c.Mode, record[j], modelVal, uint(c.ModelValue), c.Round, bitOffset, c.Output, capBits)
			if err != nil {
				return bitOffset, err
			}

			bitOffset = newOff

			if c.Mode.UsesModel() && c.UpdatedModelOut != nil {
				c.UpdatedModelOut[i][j] = updated
			}
		}
	}

	return bitOffset, nil
}

// writeMultiEntryHeader packs hdr (exactly sample.MultiEntryHeaderSize
// bytes) into buf as a sequence of big-endian bytes and returns the
// resulting bit offset.
func writeMultiEntryHeader(hdr []byte, buf []uint32, capBits int) (int, error) {
	offset := 0

	for _, b := range hdr {
		var err error

		offset, err = bitstream.PutBits(uint32(b), 8, offset, buf, capBits)
		if err != nil {
			return offset, err
		}
	}

	return offset, nil
}
