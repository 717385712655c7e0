package pcf

import "fmt"

// Encoding is the header of the encodings table. Code points are split
// into two bytes; byte one selects a row, byte two a column within the
// row. Single-byte charsets keep MinByte1 = MaxByte1 = 0 so that the
// code point itself is the column.
type Encoding struct {
	MinByte2    int16
	MaxByte2    int16
	MinByte1    int16
	MaxByte1    int16
	DefaultChar int16
}

// EncodingTable maps code points to glyph indices.
type EncodingTable struct {
	tableBase
	Encoding
}

func newEncodingTable(rec TableRec, b binarySegm) *EncodingTable {
	t := &EncodingTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

// encIndicesAt is the offset of the glyph-index array within the
// encodings table: the format word plus five int16 header fields.
const encIndicesAt = 14

func (et *EncodingTable) decode(ec *errorCollector) error {
	format, err := et.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, et.rec.Type, "format", "table too short for format word", et.rec.Offset)
	}
	if formatClass(format) != formatDefault {
		return ec.fail(UnsupportedFormat, et.rec.Type, "format",
			fmt.Sprintf("encoding format class %#x not supported", formatClass(format)), et.rec.Offset)
	}
	seg, err := et.data.view(4, 10)
	if err != nil {
		return ec.fail(OutOfBounds, et.rec.Type, "header", "table too short for encoding header", et.rec.Offset)
	}
	et.MinByte2 = int16(u16(seg[0:]))
	et.MaxByte2 = int16(u16(seg[2:]))
	et.MinByte1 = int16(u16(seg[4:]))
	et.MaxByte1 = int16(u16(seg[6:]))
	et.DefaultChar = int16(u16(seg[8:]))
	tracer().Debugf("encodings: byte1 %d…%d, byte2 %d…%d, default char %d",
		et.MinByte1, et.MaxByte1, et.MinByte2, et.MaxByte2, et.DefaultChar)
	return nil
}

// GlyphIndexFor resolves a code point to a glyph index. The second
// return value is false when the code point lies outside the encoded
// range or its table entry is the no-glyph marker 0xFFFF. An error means
// the index array is shorter than its header promises.
func (et *EncodingTable) GlyphIndexFor(cp CodePoint) (GlyphIndex, bool, error) {
	enc1 := int(cp>>8) & 0xFF
	enc2 := int(cp) & 0xFF
	if enc1 < int(et.MinByte1) || enc1 > int(et.MaxByte1) {
		return 0, false, nil
	}
	if enc2 < int(et.MinByte2) || enc2 > int(et.MaxByte2) {
		return 0, false, nil
	}
	cols := int(et.MaxByte2) - int(et.MinByte2) + 1
	idx := (enc1-int(et.MinByte1))*cols + (enc2 - int(et.MinByte2))
	gid, err := et.data.u16(encIndicesAt + 2*idx)
	if err != nil {
		return 0, false, err
	}
	if gid == noGlyph {
		return 0, false, nil
	}
	return GlyphIndex(gid), true, nil
}

// noGlyph marks an encoded but unmapped code point in the index array.
const noGlyph = 0xFFFF
