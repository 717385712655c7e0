/*
Package pcfembed converts decoded PCF fonts into static program data.

Embedded and retro-style applications often compile their fonts into
the binary rather than parsing font files at runtime. This package
reduces a decoded font to the minimum such a renderer needs: one
record per glyph plus a single bit-packed stream of all glyph rows,
and it can write the result as a compilable Go source file.

Coordinates in a Store are flipped for raster consumers: the Y axis
grows downward and the baseline sits below rows at negative offsets,
so a record's bounds can be used directly with the image package.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfembed

import (
	"image"
	"sort"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}

// Glyph is one embeddable glyph record. Bounds is relative to the
// rendering origin with Y growing downward; a glyph sitting entirely
// above the baseline has a negative Min.Y and Max.Y.
type Glyph struct {
	Character   rune
	Bounds      image.Rectangle
	DeviceWidth int // horizontal advance to the next origin
	StartIndex  int // first bit of this glyph's rows in the store's stream
}

// Store is a font reduced to static data: glyph records, sorted by
// character, plus one packed bitstream holding all glyph bitmaps
// row-major, one bit per pixel, most significant bit first.
type Store struct {
	Name        string
	Glyphs      []Glyph
	Bits        []byte
	Replacement int // index into Glyphs substituted for absent characters
	LineHeight  int
}

// Build reduces a decoded font to a Store. The include predicate
// selects the characters to keep; a nil predicate keeps all of them.
// Code points that are no valid Unicode scalar values (the surrogate
// range) cannot be keyed by rune and are dropped.
func Build(f *pcf.Font, include func(rune) bool) *Store {
	if f == nil {
		return nil
	}
	s := &Store{
		Name:       storeName(f),
		LineHeight: f.LineHeight,
	}
	w := bitWriter{}
	for _, cp := range f.CodePoints() {
		g := f.GlyphAt(cp)
		r, ok := g.Encoding.Unwrap()
		if !ok {
			continue
		}
		if include != nil && !include(r) {
			continue
		}
		s.Glyphs = append(s.Glyphs, Glyph{
			Character:   r,
			Bounds:      flipRect(g.Box),
			DeviceWidth: g.ShiftX,
			StartIndex:  w.n,
		})
		for y := 0; y < g.Box.Height; y++ {
			for x := 0; x < g.Box.Width; x++ {
				w.writeBit(g.Pixel(x, y))
			}
		}
	}
	s.Bits = w.bytes
	s.Replacement = replacementIndex(s.Glyphs)
	tracer().Debugf("packed %d glyphs into %d bytes of bitmap data",
		len(s.Glyphs), len(s.Bits))
	return s
}

// Lookup returns the record for a character. Absent characters report
// the store's replacement record and false.
func (s *Store) Lookup(r rune) (Glyph, bool) {
	i := sort.Search(len(s.Glyphs), func(i int) bool {
		return s.Glyphs[i].Character >= r
	})
	if i < len(s.Glyphs) && s.Glyphs[i].Character == r {
		return s.Glyphs[i], true
	}
	if len(s.Glyphs) == 0 {
		return Glyph{}, false
	}
	return s.Glyphs[s.Replacement], false
}

// Pixel reports whether pixel (x, y) of a glyph is inked, with (0, 0)
// the top-left pixel of the glyph's bitmap.
func (s *Store) Pixel(g Glyph, x, y int) bool {
	if x < 0 || x >= g.Bounds.Dx() || y < 0 || y >= g.Bounds.Dy() {
		return false
	}
	i := g.StartIndex + y*g.Bounds.Dx() + x
	return s.Bits[i/8]&(0x80>>(i%8)) != 0
}

// flipRect converts a baseline-relative box with Y growing upward into
// an image rectangle with Y growing downward. The top row of a glyph
// reaching ascent a above the baseline lands at y = -a - 1, keeping
// y = -1 the row directly above the baseline.
func flipRect(box pcf.BoundingBox) image.Rectangle {
	y := -box.Y - box.Height - 1
	return image.Rect(box.X, y, box.X+box.Width, y+box.Height)
}

// replacementIndex picks the record substituted for absent characters:
// U+FFFD if kept, else the space record, else the first record.
func replacementIndex(glyphs []Glyph) int {
	space := -1
	for i, g := range glyphs {
		if g.Character == '�' {
			return i
		}
		if g.Character == ' ' {
			space = i
		}
	}
	if space >= 0 {
		return space
	}
	return 0
}

// bitWriter packs single bits into bytes, most significant bit first.
type bitWriter struct {
	bytes []byte
	n     int
}

func (w *bitWriter) writeBit(on bool) {
	if w.n%8 == 0 {
		w.bytes = append(w.bytes, 0)
	}
	if on {
		w.bytes[w.n/8] |= 0x80 >> (w.n % 8)
	}
	w.n++
}

func storeName(f *pcf.Font) string {
	if f.Props == nil {
		return ""
	}
	if p, ok := f.Props.Lookup("FAMILY_NAME"); ok && p.IsString {
		return p.StrValue
	}
	return ""
}
