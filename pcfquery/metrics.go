package pcfquery

import "github.com/npillmayer/pcfont/pcf"

// --- Font Information -------------------------------------------------

// FontMetrics retrieves the font-wide metrics: global extents from the
// accelerators table plus the aggregated bounding box.
func FontMetrics(f *pcf.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if f == nil || f.Accel == nil {
		return metrics
	}
	metrics.Ascent = f.Accel.FontAscent
	metrics.Descent = f.Accel.FontDescent
	metrics.MaxOverlap = f.Accel.MaxOverlap
	metrics.MaxAdvance = f.Accel.MaxBounds.CharacterWidth
	metrics.LineHeight = f.LineHeight
	metrics.BBox = f.BBox
	return metrics
}

// --- Glyph Routines ----------------------------------------------------

// GlyphIndex returns the glyph index for a given rune. The rune is first
// translated to the font's character code, honoring the charset
// properties.
func GlyphIndex(f *pcf.Font, codepoint rune) (pcf.GlyphIndex, bool) {
	if f == nil {
		return 0, false
	}
	cp, ok := CodePointForRune(f, codepoint)
	if !ok {
		return 0, false
	}
	g := f.GlyphAt(cp)
	if g == nil {
		return 0, false
	}
	return g.Index, true
}

// CodePointForGlyph returns the character code for a given glyph index.
//
// This is an inefficient operation: all code points encoded by the font
// are checked sequentially if they map to the given glyph.
func CodePointForGlyph(f *pcf.Font, gid pcf.GlyphIndex) (pcf.CodePoint, bool) {
	if f == nil {
		return 0, false
	}
	for _, cp := range f.CodePoints() {
		if g := f.GlyphAt(cp); g != nil && g.Index == gid {
			return cp, true
		}
	}
	return 0, false
}

// GlyphMetrics retrieves metrics for a given glyph.
func GlyphMetrics(f *pcf.Font, gid pcf.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if f == nil || f.Metrics == nil {
		return metrics
	}
	m, err := f.Metrics.Metrics(gid)
	if err != nil {
		tracer().Debugf("no metrics for glyph %d", gid)
		return metrics
	}
	metrics.Advance = m.CharacterWidth
	metrics.LSB = m.LeftSideBearing
	metrics.RSB = m.RightSideBearing
	metrics.Ascent = m.Ascent
	metrics.Descent = m.Descent
	metrics.BBox = pcf.BoundingBox{
		Width:  int(m.RightSideBearing) - int(m.LeftSideBearing),
		Height: int(m.Ascent) + int(m.Descent),
		X:      int(m.LeftSideBearing),
		Y:      -int(m.Descent),
	}
	if w, ok := f.SWidths.SWidth(gid); ok {
		metrics.SWidth = w
	}
	return metrics
}

// GlyphName returns the PostScript-style name of a glyph, or "" if the
// font carries no glyph names table.
func GlyphName(f *pcf.Font, gid pcf.GlyphIndex) string {
	if f == nil {
		return ""
	}
	name, ok := f.Names.Name(gid)
	if !ok {
		return ""
	}
	return name
}
