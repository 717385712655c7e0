package pcf

import "fmt"

// BitmapTable holds the raster data of all glyphs: a per-glyph offset
// array followed by the four padding-class sizes and the bitmap bytes
// themselves.
type BitmapTable struct {
	tableBase
	GlyphCount int
	Sizes      [4]int32 // total bitmap bytes for row paddings of 1, 2, 4, 8
	DataSize   int32    // the size selected by the format's padding class

	offsetsAt int // start of the per-glyph offset array
	dataAt    int // start of the first bitmap
}

func newBitmapTable(rec TableRec, b binarySegm) *BitmapTable {
	t := &BitmapTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

// bitmapPad4 is the only supported padding class: glyph rows padded to
// 32-bit words. The sizes array indexes padding classes 1/2/4/8.
const bitmapPad4 = 2

func (bt *BitmapTable) decode(ec *errorCollector) error {
	format, err := bt.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, bt.rec.Type, "format", "table too short for format word", bt.rec.Offset)
	}
	if formatClass(format) != formatDefault {
		return ec.fail(UnsupportedFormat, bt.rec.Type, "format",
			fmt.Sprintf("bitmap format class %#x not supported", formatClass(format)), bt.rec.Offset)
	}
	pad := format & formatGlyphPadMask
	if pad != bitmapPad4 {
		return ec.fail(UnsupportedPadding, bt.rec.Type, "format",
			fmt.Sprintf("glyph padding class %d not supported, rows must pad to 32-bit words", pad),
			bt.rec.Offset)
	}
	n, err := bt.data.i32(4)
	if err != nil {
		return ec.fail(OutOfBounds, bt.rec.Type, "count", "table too short for glyph count", bt.rec.Offset)
	}
	if n < 0 || n > MaxGlyphCount {
		return ec.fail(OutOfBounds, bt.rec.Type, "count",
			fmt.Sprintf("unreasonable glyph count %d", n), bt.rec.Offset)
	}
	bt.GlyphCount = int(n)
	bt.offsetsAt = 8
	sizesAt := bt.offsetsAt + 4*bt.GlyphCount
	for i := range bt.Sizes {
		s, err := bt.data.i32(sizesAt + 4*i)
		if err != nil {
			return ec.fail(OutOfBounds, bt.rec.Type, "sizes", "table too short for bitmap sizes", bt.rec.Offset)
		}
		bt.Sizes[i] = s
	}
	bt.DataSize = bt.Sizes[pad]
	bt.dataAt = sizesAt + 16
	tracer().Debugf("bitmaps: %d glyphs, %d bitmap bytes", bt.GlyphCount, bt.DataSize)
	return nil
}

// offsetOf returns the bitmap offset of a glyph, relative to the first
// bitmap byte.
func (bt *BitmapTable) offsetOf(gid GlyphIndex) (uint32, error) {
	if int(gid) >= bt.GlyphCount {
		return 0, errBufferBounds
	}
	return bt.data.u32(bt.offsetsAt + 4*int(gid))
}

// bitmap unpacks the raster rows of one glyph into a byte-per-pixel
// buffer in row-major order. Rows are stored left-to-right with the
// leftmost pixel in the most significant bit; each row is padded to a
// 32-bit word.
func (bt *BitmapTable) bitmap(gid GlyphIndex, width, height int) ([]byte, error) {
	if width == 0 || height == 0 {
		return []byte{}, nil
	}
	off, err := bt.offsetOf(gid)
	if err != nil {
		return nil, err
	}
	stride := 4 * ((width + 31) / 32)
	rows, err := bt.data.view(bt.dataAt+int(off), stride*height)
	if err != nil {
		return nil, err
	}
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		row := rows[y*stride:]
		for x := 0; x < width; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				pixels[y*width+x] = 1
			}
		}
	}
	return pixels, nil
}
