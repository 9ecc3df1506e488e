package entity

import (
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/endian"
	"github.com/plato-mission/cmplib/errs"
	"github.com/plato-mission/cmplib/sample"
)

// Timestamp is the CE header's coarse:fine on-wire time representation
// (u32 coarse seconds, u16 fine sub-second counter), packed as 6
// contiguous big-endian bytes.
type Timestamp struct {
	Coarse uint32
	Fine   uint16
}

// GenericHeader is the fixed 32-byte header prefixing every compression
// entity, present regardless of data type.
type GenericHeader struct {
	VersionID          uint32
	Size               uint32 // u24: total entity size in bytes
	OriginalSize       uint32 // u24: input byte count
	StartTimestamp     Timestamp
	EndTimestamp       Timestamp
	DataType           sample.DataType
	Raw                bool
	CmpMode            cfg.CmpMode
	ModelValue         uint8
	ModelID            uint16
	ModelCounter       uint8
	MaxUsedBitsVersion uint8
	LossyCmpParUsed    uint16
}

// Bytes renders h into a freshly allocated GenericHeaderSize-byte,
// big-endian buffer.
func (h *GenericHeader) Bytes() ([]byte, error) {
	if h.Size > maxU24 || h.OriginalSize > maxU24 {
		return nil, errs.ErrBadEntity
	}

	buf := make([]byte, GenericHeaderSize)
	engine := endian.GetBigEndianEngine()

	engine.PutUint32(buf[0:4], h.VersionID)
	putUint24(buf[4:7], h.Size)
	putUint24(buf[7:10], h.OriginalSize)
	putTimestamp(buf[10:16], h.StartTimestamp)
	putTimestamp(buf[16:22], h.EndTimestamp)

	typeAndRaw := uint16(h.DataType) & typeIDMask
	if h.Raw {
		typeAndRaw |= rawFlagBit
	}
	engine.PutUint16(buf[22:24], typeAndRaw)

	buf[24] = uint8(h.CmpMode)
	buf[25] = h.ModelValue
	engine.PutUint16(buf[26:28], h.ModelID)
	buf[28] = h.ModelCounter
	buf[29] = h.MaxUsedBitsVersion
	engine.PutUint16(buf[30:32], h.LossyCmpParUsed)

	return buf, nil
}

// ParseGenericHeader reconstructs a GenericHeader from exactly
// GenericHeaderSize bytes.
func ParseGenericHeader(buf []byte) (*GenericHeader, error) {
	if len(buf) != GenericHeaderSize {
		return nil, errs.ErrBadEntity
	}

	engine := endian.GetBigEndianEngine()
	typeAndRaw := engine.Uint16(buf[22:24])

	h := &GenericHeader{
		VersionID:          engine.Uint32(buf[0:4]),
		Size:               getUint24(buf[4:7]),
		OriginalSize:       getUint24(buf[7:10]),
		StartTimestamp:     getTimestamp(buf[10:16]),
		EndTimestamp:       getTimestamp(buf[16:22]),
		DataType:           sample.DataType(typeAndRaw & typeIDMask),
		Raw:                typeAndRaw&rawFlagBit != 0,
		CmpMode:            cfg.CmpMode(buf[24]),
		ModelValue:         buf[25],
		ModelID:            engine.Uint16(buf[26:28]),
		ModelCounter:       buf[28],
		MaxUsedBitsVersion: buf[29],
		LossyCmpParUsed:    engine.Uint16(buf[30:32]),
	}

	if !h.DataType.Valid() {
		return nil, errs.ErrBadEntity
	}

	return h, nil
}

func putUint24(dst []byte, v uint32) {
	dst[0] = byte(v >> 16)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v)
}

func getUint24(src []byte) uint32 {
	return uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
}

func putTimestamp(dst []byte, ts Timestamp) {
	engine := endian.GetBigEndianEngine()
	engine.PutUint32(dst[0:4], ts.Coarse)
	engine.PutUint16(dst[4:6], ts.Fine)
}

func getTimestamp(src []byte) Timestamp {
	engine := endian.GetBigEndianEngine()
	return Timestamp{Coarse: engine.Uint32(src[0:4]), Fine: engine.Uint16(src[4:6])}
}
