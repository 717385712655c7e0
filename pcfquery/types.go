package pcfquery

import "github.com/npillmayer/pcfont/pcf"

// FontMetricsInfo contains selected metric information for a font.
// All values are pixels.
type FontMetricsInfo struct {
	Ascent, Descent int32 // pixels reserved above and below the baseline
	LineHeight      int   // baseline to baseline distance
	MaxAdvance      int16 // widest advance among all glyphs
	MaxOverlap      int32 // how far glyphs may paint beyond their advance
	BBox            pcf.BoundingBox
}

// GlyphMetricsInfo contains all metric information for a glyph.
// Values are pixels, except for SWidth.
type GlyphMetricsInfo struct {
	Advance  int16 // horizontal advance to the next rendering origin
	LSB, RSB int16 // side bearings
	Ascent   int16 // pixels above the baseline
	Descent  int16 // pixels below the baseline
	SWidth   int32 // scalable width in millipoints, 0 if the font carries none
	BBox     pcf.BoundingBox
}
