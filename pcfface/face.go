/*
Package pcfface adapts decoded PCF fonts to the standard image pipeline.

Face implements golang.org/x/image/font.Face on top of a decoded font,
so PCF glyphs can be drawn with font.Drawer and measured with the
font package's helpers. Glyph masks are prepared once per font and
shared; a Face is safe for concurrent use.

PCF fonts name a default character to stand in for characters they do
not encode. A Face honors that: lookups for unmapped runes report the
replacement glyph and succeed, rather than leaving substitution to the
caller.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfface

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}

// Face lets a decoded PCF font act as a font.Face. Create one with New.
type Face struct {
	font  *pcf.Font
	masks map[pcf.CodePoint]*image.Alpha
}

var _ font.Face = (*Face)(nil)

// New prepares a Face for a decoded font. All glyph masks are built
// up front, one alpha image per encoded code point.
func New(f *pcf.Font) *Face {
	face := &Face{
		font:  f,
		masks: make(map[pcf.CodePoint]*image.Alpha, f.NumGlyphs()),
	}
	for _, cp := range f.CodePoints() {
		face.masks[cp] = glyphMask(f.GlyphAt(cp))
	}
	tracer().Debugf("prepared %d glyph masks", len(face.masks))
	return face
}

// glyphMask unpacks a glyph bitmap into an alpha image with the
// glyph's top-left pixel at (0, 0). Inked pixels are fully opaque.
func glyphMask(g *pcf.Glyph) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, g.Box.Width, g.Box.Height))
	for y := 0; y < g.Box.Height; y++ {
		for x := 0; x < g.Box.Width; x++ {
			if g.Pixel(x, y) {
				mask.Pix[y*mask.Stride+x] = 0xff
			}
		}
	}
	return mask
}

// Close is a no-op; a Face holds no external resources.
func (face *Face) Close() error {
	return nil
}

// Metrics returns the font-wide metrics. Height and ascent/descent
// come from the font's accelerator values; x-height and cap height are
// measured on the 'x' and 'X' glyphs when the font encodes them.
func (face *Face) Metrics() font.Metrics {
	ascent := int(face.font.Accel.FontAscent)
	metrics := font.Metrics{
		Height:     fixed.I(face.font.LineHeight),
		Ascent:     fixed.I(ascent),
		Descent:    fixed.I(int(face.font.Accel.FontDescent)),
		XHeight:    fixed.I(topAboveBaseline(face.font, 'x', ascent)),
		CapHeight:  fixed.I(topAboveBaseline(face.font, 'X', ascent)),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
	return metrics
}

func topAboveBaseline(f *pcf.Font, r rune, fallback int) int {
	if g, ok := f.Glyph(r); ok && !g.Box.IsEmpty() {
		return g.Box.Y + g.Box.Height
	}
	return fallback
}

// Glyph returns the draw rectangle and mask for a rune at the given
// dot. Runes the font does not encode draw the replacement glyph; ok
// is false only for fonts without any glyphs.
func (face *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle,
	mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	g := face.font.GlyphOrReplacement(r)
	if g == nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round() + g.Box.X
	y := dot.Y.Round() - g.Box.Y - g.Box.Height
	dr = image.Rect(x, y, x+g.Box.Width, y+g.Box.Height)
	return dr, face.masks[g.CodePoint], image.Point{}, fixed.I(g.ShiftX), true
}

// GlyphBounds returns the glyph box relative to the dot, Y growing
// downward, and the advance. Unmapped runes report the replacement
// glyph.
func (face *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6,
	advance fixed.Int26_6, ok bool) {
	//
	g := face.font.GlyphOrReplacement(r)
	if g == nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(g.Box.X, -g.Box.Y-g.Box.Height, g.Box.X+g.Box.Width, -g.Box.Y)
	return bounds, fixed.I(g.ShiftX), true
}

// GlyphAdvance returns the advance for a rune. Unmapped runes report
// the replacement glyph.
func (face *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g := face.font.GlyphOrReplacement(r)
	if g == nil {
		return 0, false
	}
	return fixed.I(g.ShiftX), true
}

// Kern returns 0; bitmap fonts carry no kerning information.
func (face *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}
