package pcf

// Font represents the decoded structure of a PCF font: the table
// directory, the decoded tables, and one assembled glyph per encoded
// code point. A Font is immutable after Parse and safe for concurrent
// readers.
type Font struct {
	Header *FontHeader
	tables map[TableType]Table
	recs   []TableRec // directory order

	Accel      *AccelTable      // chosen accelerators (BDF flavour preferred)
	Enc        *EncodingTable   // code point to glyph index mapping
	Bitmaps    *BitmapTable     // raster data
	Metrics    *MetricsTable    // per-glyph logical metrics
	InkMetrics *MetricsTable    // per-glyph ink extents, optional
	Props      *PropertiesTable // BDF properties, optional
	SWidths    *SWidthsTable    // scalable widths, optional
	Names      *GlyphNamesTable // glyph names, optional

	BBox        BoundingBox // font bounding box, from the ink bounds
	LineHeight  int         // vertical distance between baselines
	Replacement CodePoint   // code point substituted for unmapped ones

	glyphs map[CodePoint]*Glyph
	codes  []CodePoint // sorted

	parseWarnings []FontWarning
}

// FontHeader is the fixed head of a PCF file: the magic bytes and the
// number of table records that follow.
type FontHeader struct {
	Magic      uint32
	TableCount uint32
}

// Table returns the font table for a given type. If the table is not
// present in the font, nil is returned.
//
// Tables the decoder interprets convert to their concrete flavour via
// Self(), e.g.
//
//	names := font.Table(pcf.TypeGlyphNames).Self().AsGlyphNames()
func (f *Font) Table(t TableType) Table {
	if tbl, ok := f.tables[t]; ok {
		return tbl
	}
	return nil
}

// TableTypes returns the types of all tables contained in the font, in
// table directory order.
func (f *Font) TableTypes() []TableType {
	types := make([]TableType, 0, len(f.recs))
	for _, rec := range f.recs {
		types = append(types, rec.Type)
	}
	return types
}

// NumGlyphs returns the number of decoded glyphs, i.e. the number of
// encoded code points.
func (f *Font) NumGlyphs() int {
	return len(f.codes)
}

// CodePoints returns all encoded code points in ascending order.
func (f *Font) CodePoints() []CodePoint {
	return f.codes
}

// GlyphAt returns the glyph a code point maps to, or nil.
func (f *Font) GlyphAt(cp CodePoint) *Glyph {
	return f.glyphs[cp]
}

// Glyph returns the glyph for a rune and true, or nil and false if the
// rune is not encoded by this font.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	if r < 0 || r > 0xFFFF {
		return nil, false
	}
	g, ok := f.glyphs[CodePoint(r)]
	return g, ok
}

// GlyphOrReplacement returns the glyph for a rune, substituting the
// font's replacement glyph for runes the font does not encode. It never
// returns nil for a font with at least one glyph.
func (f *Font) GlyphOrReplacement(r rune) *Glyph {
	if g, ok := f.Glyph(r); ok {
		return g
	}
	return f.glyphs[f.Replacement]
}

// ReplacementGlyph returns the glyph unmapped runes fall back to:
// U+FFFD if the font encodes it, else the space glyph, else the glyph of
// the lowest encoded code point.
func (f *Font) ReplacementGlyph() *Glyph {
	return f.glyphs[f.Replacement]
}

// Warnings returns all warnings encountered during font decoding.
// Warnings indicate potential issues that are generally safe to ignore.
func (f *Font) Warnings() []FontWarning {
	if f.parseWarnings == nil {
		return []FontWarning{}
	}
	return f.parseWarnings
}

// aggregate computes the font-wide values after all glyphs are
// assembled: bounding box and line height from the ink bounds, and the
// replacement code point.
func (f *Font) aggregate() {
	ink := f.Accel
	f.BBox = BoundingBox{
		Width:  int(ink.InkMaxBounds.RightSideBearing) - int(ink.InkMinBounds.LeftSideBearing),
		Height: int(ink.InkMaxBounds.Ascent) + int(ink.InkMaxBounds.Descent),
		X:      int(ink.InkMinBounds.LeftSideBearing),
		Y:      -int(ink.InkMaxBounds.Descent),
	}
	f.LineHeight = f.BBox.Height

	const replacementChar = 0xFFFD
	if _, ok := f.glyphs[replacementChar]; ok {
		f.Replacement = replacementChar
	} else if _, ok := f.glyphs[CodePoint(' ')]; ok {
		f.Replacement = CodePoint(' ')
	} else if len(f.codes) > 0 {
		f.Replacement = f.codes[0]
	}
}
