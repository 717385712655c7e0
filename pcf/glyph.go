package pcf

import "fmt"

// CodePoint is a 16-bit character code as stored in the encodings table.
// For Unicode-encoded fonts it is the code point itself; legacy charsets
// (ISO 8859 and friends) use their own byte values.
type CodePoint uint16

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// BoundingBox is a pixel extent plus the offset of its lower-left corner
// relative to the rendering origin on the baseline. The Y axis grows
// upward, so a glyph reaching below the baseline has a negative Y.
type BoundingBox struct {
	Width  int
	Height int
	X      int
	Y      int
}

// IsEmpty reports whether this box has zero area.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.Width == 0 || bbox.Height == 0
}

func (bbox BoundingBox) String() string {
	return fmt.Sprintf("%d×%d%+d%+d", bbox.Width, bbox.Height, bbox.X, bbox.Y)
}

// Glyph is one decoded glyph: the unpacked bitmap plus placement
// metrics. Bitmap holds one byte per pixel (non-zero = inked) in
// row-major order, top row first, len = Box.Width * Box.Height.
type Glyph struct {
	CodePoint CodePoint    // the character code this glyph was reached by
	Index     GlyphIndex   // the glyph's index in the font's tables
	Encoding  Option[rune] // CodePoint as a rune, when it is a valid scalar value
	Bitmap    []byte
	Box       BoundingBox
	ShiftX    int // horizontal advance to the next rendering origin
	ShiftY    int // vertical advance; always 0 for horizontal PCF fonts
	TileIndex int // always 0; PCF glyphs are single-tile
}

// Width returns the pixel width of the glyph's bitmap.
func (g *Glyph) Width() int {
	return g.Box.Width
}

// Height returns the pixel height of the glyph's bitmap.
func (g *Glyph) Height() int {
	return g.Box.Height
}

// Pixel reports whether the bitmap pixel at (x, y) is inked, with (0, 0)
// the top-left corner of the bitmap.
func (g *Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= g.Box.Width || y < 0 || y >= g.Box.Height {
		return false
	}
	return g.Bitmap[y*g.Box.Width+x] != 0
}

// assembleGlyph decodes the glyph a code point maps to: metrics first,
// then the unpacked bitmap. Returns false if the code point is not
// mapped by the encodings table.
func assembleGlyph(enc *EncodingTable, mt *MetricsTable, bt *BitmapTable, cp CodePoint,
	ec *errorCollector) (*Glyph, bool, error) {
	//
	gid, ok, err := enc.GlyphIndexFor(cp)
	if err != nil {
		return nil, false, ec.fail(OutOfBounds, enc.rec.Type, fmt.Sprintf("code point %d", cp),
			"glyph index array shorter than encoding ranges", enc.rec.Offset)
	}
	if !ok {
		return nil, false, nil
	}
	m, err := mt.Metrics(gid)
	if err != nil {
		return nil, false, ec.fail(OutOfBounds, mt.rec.Type, fmt.Sprintf("glyph %d", gid),
			"metrics entry outside table", mt.rec.Offset)
	}
	width := int(m.RightSideBearing) - int(m.LeftSideBearing)
	height := int(m.Ascent) + int(m.Descent)
	if width < 0 || height < 0 {
		return nil, false, ec.fail(InvalidGeometry, mt.rec.Type, fmt.Sprintf("glyph %d", gid),
			fmt.Sprintf("metrics yield %d×%d bitmap", width, height), mt.rec.Offset)
	}
	pixels, err := bt.bitmap(gid, width, height)
	if err != nil {
		return nil, false, ec.fail(OutOfBounds, bt.rec.Type, fmt.Sprintf("glyph %d", gid),
			"bitmap rows outside table", bt.rec.Offset)
	}
	g := &Glyph{
		CodePoint: cp,
		Index:     gid,
		Encoding:  encodingOf(cp),
		Bitmap:    pixels,
		Box: BoundingBox{
			Width:  width,
			Height: height,
			X:      int(m.LeftSideBearing),
			Y:      -int(m.Descent),
		},
		ShiftX: int(m.CharacterWidth),
	}
	return g, true, nil
}

// encodingOf converts a code point to a rune, which fails for the
// surrogate range U+D800…U+DFFF.
func encodingOf(cp CodePoint) Option[rune] {
	if cp >= 0xD800 && cp <= 0xDFFF {
		return None[rune]()
	}
	return Some(rune(cp))
}
