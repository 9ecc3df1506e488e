package entity

import (
	"github.com/plato-mission/cmplib/bitstream"
	"github.com/plato-mission/cmplib/cfg"
	"github.com/plato-mission/cmplib/errs"
	"github.com/plato-mission/cmplib/sample"
)

// state tracks where an Entity sits in its lifecycle: empty (just
// Create'd), complete (header and specific block written by Build or the
// individual setters), or sealed (payload written; only getters are a
// supported operation from here on).
type state uint8

const (
	stateEmpty state = iota
	stateComplete
	stateSealed
)

// Entity is a compression-entity buffer: a fixed-size generic header,
// followed by one data-type-specific parameter block, followed by the
// compressed payload. All structures are value-typed and stateless across
// calls; an Entity is allocated at a known size, written once, and read
// thereafter.
type Entity struct {
	buf   []byte
	state state
}

// specificBlockSize returns the size, in bytes, of dt's specific block.
func specificBlockSize(dt sample.DataType) (int, error) {
	switch {
	case dt.IsAdaptiveImagette():
		return ImagetteAdaptiveBlockSize, nil
	case dt.IsImagette():
		return ImagetteBlockSize, nil
	case dt.IsFluxCob(), dt.IsAux():
		return NonImagetteBlockSize, nil
	default:
		return 0, errs.ErrBadEntity
	}
}

// Create allocates the minimum-size entity in buf for dt/raw/payloadBytes:
// it zero-fills the header area, sets the size and data_type+raw fields,
// and returns the entity. It rejects payloads that would push the entity
// past the 24-bit size field's range.
func Create(buf []byte, dt sample.DataType, raw bool, payloadBytes int) (*Entity, error) {
	if !dt.Valid() {
		return nil, errs.ErrBadEntity
	}

	specSize, err := specificBlockSize(dt)
	if err != nil {
		return nil, err
	}

	headerSize := GenericHeaderSize + specSize
	if payloadBytes < 0 || headerSize+payloadBytes > maxU24 {
		return nil, errs.ErrBadEntity
	}

	total := headerSize + payloadBytes
	if len(buf) < total {
		return nil, errs.ErrSmallBuffer
	}

	for i := range buf[:headerSize] {
		buf[i] = 0
	}

	h := &GenericHeader{Size: uint32(total), DataType: dt, Raw: raw}

	hb, err := h.Bytes()
	if err != nil {
		return nil, err
	}

	copy(buf[0:GenericHeaderSize], hb)

	return &Entity{buf: buf[:total], state: stateEmpty}, nil
}

// Build is a one-shot constructor: Create plus a full transcription of cfg
// into the header and specific block. Parameter values are narrowed to
// their wire widths by conversion; only the 24-bit size fields are
// range-checked. cmpSizeBits is
// the bit length codec.CompressRecords (or the raw-mode fast path)
// returned; it is padded up to a whole 4-byte word for the payload size.
func Build(buf []byte, version uint32, startTS, endTS Timestamp, modelID uint16, modelCounter uint8, c *cfg.Config, cmpSizeBits int) (*Entity, error) {
	payloadBytes := bitstream.BitsToWords(cmpSizeBits) * 4

	e, err := Create(buf, c.DataType, c.Mode == cfg.Raw, payloadBytes)
	if err != nil {
		return nil, err
	}

	h := &GenericHeader{
		VersionID:          version,
		Size:                uint32(len(e.buf)),
		OriginalSize:        uint32(c.Samples * sample.SampleSize(c.DataType)),
		StartTimestamp:      startTS,
		EndTimestamp:        endTS,
		DataType:            c.DataType,
		Raw:                 c.Mode == cfg.Raw,
		CmpMode:             c.Mode,
		ModelValue:          uint8(c.ModelValue),
		ModelID:             modelID,
		ModelCounter:        modelCounter,
		MaxUsedBitsVersion:  c.MaxBits.Version(),
		LossyCmpParUsed:     uint16(c.Round),
	}

	hb, err := h.Bytes()
	if err != nil {
		return nil, err
	}

	copy(e.buf[0:GenericHeaderSize], hb)

	if err := e.writeSpecificBlock(c); err != nil {
		return nil, err
	}

	e.state = stateComplete

	return e, nil
}

func (e *Entity) writeSpecificBlock(c *cfg.Config) error {
	dt := c.DataType
	dst := e.buf[GenericHeaderSize:]

	switch {
	case dt.IsAdaptiveImagette():
		p := c.Params[sample.KeyImagette]
		block := ImagetteAdaptiveBlock{
			Primary:      ImagetteBlock{SpillUsed: uint16(p.Spill), GolombParUsed: uint8(p.GolombPar)},
			AP1Spill:     uint16(c.AP1.Spill),
			AP1GolombPar: uint8(c.AP1.GolombPar),
			AP2Spill:     uint16(c.AP2.Spill),
			AP2GolombPar: uint8(c.AP2.GolombPar),
		}
		copy(dst[:ImagetteAdaptiveBlockSize], block.Bytes())

	case dt.IsImagette():
		p := c.Params[sample.KeyImagette]
		block := ImagetteBlock{SpillUsed: uint16(p.Spill), GolombParUsed: uint8(p.GolombPar)}
		copy(dst[:ImagetteBlockSize], block.Bytes())

	case dt.IsFluxCob():
		var block NonImagetteBlock
		for i, key := range sample.FluxCobKeys {
			p := c.Params[key]
			block.Tuples[i] = NonImagetteTuple{SpillUsed: p.Spill, CmpParUsed: uint8(p.GolombPar)}
		}
		copy(dst[:NonImagetteBlockSize], block.Bytes())

	case dt.IsAux():
		var block NonImagetteBlock
		for i, key := range sample.AuxKeys {
			p := c.Params[key]
			block.Tuples[i] = NonImagetteTuple{SpillUsed: p.Spill, CmpParUsed: uint8(p.GolombPar)}
		}
		copy(dst[:NonImagetteBlockSize], block.Bytes())

	default:
		return errs.ErrBadEntity
	}

	return nil
}

// ReadHeader reconstructs a Config sufficient to decompress from buf,
// cross-checking the raw bit against cmp_mode, the original-size/sample-size
// divisibility invariant, and that the data type is a member of the
// enumeration.
func ReadHeader(buf []byte) (*cfg.Config, *GenericHeader, error) {
	if len(buf) < GenericHeaderSize {
		return nil, nil, errs.ErrBadEntity
	}

	h, err := ParseGenericHeader(buf[0:GenericHeaderSize])
	if err != nil {
		return nil, nil, err
	}

	if h.Raw != (h.CmpMode == cfg.Raw) {
		return nil, nil, errs.ErrBadEntity
	}

	sampleSize := sample.SampleSize(h.DataType)
	if sampleSize == 0 || int(h.OriginalSize)%sampleSize != 0 {
		return nil, nil, errs.ErrBadEntity
	}

	c := cfg.New(h.DataType, h.CmpMode, uint32(h.ModelValue), uint(h.LossyCmpParUsed))
	c.ModelID = h.ModelID
	c.ModelCounter = h.ModelCounter
	c.Samples = int(h.OriginalSize) / sampleSize

	specSize, err := specificBlockSize(h.DataType)
	if err != nil {
		return nil, nil, err
	}

	if len(buf) < GenericHeaderSize+specSize {
		return nil, nil, errs.ErrBadEntity
	}

	specBuf := buf[GenericHeaderSize : GenericHeaderSize+specSize]

	switch {
	case h.DataType.IsAdaptiveImagette():
		block, err := ParseImagetteAdaptiveBlock(specBuf)
		if err != nil {
			return nil, nil, err
		}

		c.Params[sample.KeyImagette] = cfg.FieldParams{GolombPar: uint32(block.Primary.GolombParUsed), Spill: uint32(block.Primary.SpillUsed)}
		c.AP1 = cfg.FieldParams{GolombPar: uint32(block.AP1GolombPar), Spill: uint32(block.AP1Spill)}
		c.AP2 = cfg.FieldParams{GolombPar: uint32(block.AP2GolombPar), Spill: uint32(block.AP2Spill)}

	case h.DataType.IsImagette():
		block, err := ParseImagetteBlock(specBuf)
		if err != nil {
			return nil, nil, err
		}

		c.Params[sample.KeyImagette] = cfg.FieldParams{GolombPar: uint32(block.GolombParUsed), Spill: uint32(block.SpillUsed)}

	case h.DataType.IsFluxCob():
		block, err := ParseNonImagetteBlock(specBuf)
		if err != nil {
			return nil, nil, err
		}

		for i, key := range sample.FluxCobKeys {
			c.Params[key] = cfg.FieldParams{GolombPar: uint32(block.Tuples[i].CmpParUsed), Spill: block.Tuples[i].SpillUsed}
		}

	case h.DataType.IsAux():
		block, err := ParseNonImagetteBlock(specBuf)
		if err != nil {
			return nil, nil, err
		}

		for i, key := range sample.AuxKeys {
			c.Params[key] = cfg.FieldParams{GolombPar: uint32(block.Tuples[i].CmpParUsed), Spill: block.Tuples[i].SpillUsed}
		}
	}

	return c, h, nil
}

// Bytes returns the entity's full on-wire byte slice.
func (e *Entity) Bytes() []byte { return e.buf }

// Seal marks the entity's payload as written; only getters are a supported
// operation on a sealed entity. Writing a setter on a sealed entity is
// undefined and not a supported operation.
func (e *Entity) Seal() { e.state = stateSealed }
