package entity

import (
	"github.com/plato-mission/cmplib/endian"
	"github.com/plato-mission/cmplib/errs"
)

// ImagetteBlock is the 3-byte specific block for plain imagette types.
type ImagetteBlock struct {
	SpillUsed     uint16
	GolombParUsed uint8
}

// Bytes renders b as ImagetteBlockSize big-endian bytes.
func (b ImagetteBlock) Bytes() []byte {
	buf := make([]byte, ImagetteBlockSize)
	endian.GetBigEndianEngine().PutUint16(buf[0:2], b.SpillUsed)
	buf[2] = b.GolombParUsed

	return buf
}

// ParseImagetteBlock reconstructs an ImagetteBlock from its wire bytes.
func ParseImagetteBlock(buf []byte) (ImagetteBlock, error) {
	if len(buf) != ImagetteBlockSize {
		return ImagetteBlock{}, errs.ErrBadEntity
	}

	return ImagetteBlock{
		SpillUsed:     endian.GetBigEndianEngine().Uint16(buf[0:2]),
		GolombParUsed: buf[2],
	}, nil
}

// ImagetteAdaptiveBlock is the 9-byte specific block for imagette-adaptive
// types: the primary pair plus the ap1/ap2 alternative pairs used only for
// caller-side size estimation.
type ImagetteAdaptiveBlock struct {
	Primary ImagetteBlock
	AP1Spill     uint16
	AP1GolombPar uint8
	AP2Spill     uint16
	AP2GolombPar uint8
}

// Bytes renders b as ImagetteAdaptiveBlockSize big-endian bytes.
func (b ImagetteAdaptiveBlock) Bytes() []byte {
	buf := make([]byte, ImagetteAdaptiveBlockSize)
	copy(buf[0:3], b.Primary.Bytes())

	engine := endian.GetBigEndianEngine()
	engine.PutUint16(buf[3:5], b.AP1Spill)
	buf[5] = b.AP1GolombPar
	engine.PutUint16(buf[6:8], b.AP2Spill)
	buf[8] = b.AP2GolombPar

	return buf
}

// ParseImagetteAdaptiveBlock reconstructs an ImagetteAdaptiveBlock from its
// wire bytes.
func ParseImagetteAdaptiveBlock(buf []byte) (ImagetteAdaptiveBlock, error) {
	if len(buf) != ImagetteAdaptiveBlockSize {
		return ImagetteAdaptiveBlock{}, errs.ErrBadEntity
	}

	primary, err := ParseImagetteBlock(buf[0:3])
	if err != nil {
		return ImagetteAdaptiveBlock{}, err
	}

	engine := endian.GetBigEndianEngine()

	return ImagetteAdaptiveBlock{
		Primary:      primary,
		AP1Spill:     engine.Uint16(buf[3:5]),
		AP1GolombPar: buf[5],
		AP2Spill:     engine.Uint16(buf[6:8]),
		AP2GolombPar: buf[8],
	}, nil
}

// NonImagetteTuple is one (spill_used, cmp_par_used) parameter slot of the
// non-imagette specific block. spill_used is a u24 and cmp_par_used is a
// u8; cfg.Validate bounds non-imagette golomb_par at 255, so a validated
// value fits.
type NonImagetteTuple struct {
	SpillUsed  uint32
	CmpParUsed uint8
}

// NonImagetteBlock is the 24-byte specific block for flux/COB and
// auxiliary types: six parameter slots in sample.FluxCobKeys order (the
// auxiliary types use the first three, in sample.AuxKeys order, leaving
// the rest zero).
type NonImagetteBlock struct {
	Tuples [NonImagetteTupleCount]NonImagetteTuple
}

// Bytes renders b as NonImagetteBlockSize big-endian bytes.
func (b NonImagetteBlock) Bytes() []byte {
	buf := make([]byte, NonImagetteBlockSize)

	for i, t := range b.Tuples {
		off := i * nonImagetteTupleSize
		putUint24(buf[off:off+3], t.SpillUsed)
		buf[off+3] = t.CmpParUsed
	}

	return buf
}

// ParseNonImagetteBlock reconstructs a NonImagetteBlock from its wire
// bytes.
func ParseNonImagetteBlock(buf []byte) (NonImagetteBlock, error) {
	if len(buf) != NonImagetteBlockSize {
		return NonImagetteBlock{}, errs.ErrBadEntity
	}

	var b NonImagetteBlock
	for i := range b.Tuples {
		off := i * nonImagetteTupleSize
		b.Tuples[i] = NonImagetteTuple{
			SpillUsed:  getUint24(buf[off : off+3]),
			CmpParUsed: buf[off+3],
		}
	}

	return b, nil
}
