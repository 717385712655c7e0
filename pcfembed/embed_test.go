package pcfembed

import (
	"bytes"
	"go/parser"
	"go/token"
	"image"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/pcfont/internal/testfont"
	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBitWriter(t *testing.T) {
	cases := []struct {
		bits   string
		expect []byte
	}{
		{"00000000", []byte{0x00}},
		{"10000000", []byte{0x80}},
		{"1", []byte{0x80}},
		{"101010101", []byte{0xaa, 0x80}},
		{"0111110001011110", []byte{0x7c, 0x5e}},
	}
	for _, c := range cases {
		w := bitWriter{}
		for _, bit := range c.bits {
			w.writeBit(bit == '1')
		}
		if !bytes.Equal(w.bytes, c.expect) {
			t.Errorf("bits %q packed to % x, expected % x", c.bits, w.bytes, c.expect)
		}
	}
}

func TestBuildReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	s := buildReference(t)
	if s.Name != "Testface" {
		t.Errorf("expected store name Testface, is %q", s.Name)
	}
	if len(s.Glyphs) != 97 {
		t.Fatalf("expected 97 glyph records, got %d", len(s.Glyphs))
	}
	if s.LineHeight != 12 {
		t.Errorf("expected line height 12, is %d", s.LineHeight)
	}
	if s.Replacement != 2 { // the space record
		t.Errorf("expected replacement record 2, is %d", s.Replacement)
	}
	for i := 1; i < len(s.Glyphs); i++ {
		if s.Glyphs[i-1].Character >= s.Glyphs[i].Character {
			t.Fatalf("records not sorted at %d: %q then %q", i,
				s.Glyphs[i-1].Character, s.Glyphs[i].Character)
		}
	}
	a := s.Glyphs[35]
	if a.Character != 'A' {
		t.Fatalf("expected record 35 to be 'A', is %q", a.Character)
	}
	if a.Bounds != image.Rect(0, -10, 7, -1) {
		t.Errorf("unexpected bounds for 'A': %v", a.Bounds)
	}
	if a.DeviceWidth != 8 {
		t.Errorf("expected device width 8 for 'A', is %d", a.DeviceWidth)
	}
	if a.StartIndex != 1449 {
		t.Errorf("expected bit offset 1449 for 'A', is %d", a.StartIndex)
	}
	if len(s.Bits) != 510 { // 4074 bits
		t.Errorf("expected a 510 byte stream, got %d", len(s.Bits))
	}
}

func TestPixelPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	s := buildReference(t)
	a, ok := s.Lookup('A')
	if !ok {
		t.Fatal("store should contain 'A'")
	}
	for y, row := range testfont.ReferenceAPattern() {
		for x, bit := range row {
			if s.Pixel(a, x, y) != (bit == '1') {
				t.Errorf("pixel (%d, %d) of 'A' should be %q", x, y, bit)
			}
		}
	}
	if s.Pixel(a, -1, 0) || s.Pixel(a, 7, 0) || s.Pixel(a, 0, 9) {
		t.Error("pixels outside the glyph box should be blank")
	}
}

func TestLookupFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	s := buildReference(t)
	if g, ok := s.Lookup('Ω'); ok || g.Character != ' ' {
		t.Errorf("expected fallback to the space record, got %q (ok = %v)", g.Character, ok)
	}
	letters := Build(parseReference(t), unicode.IsLetter)
	if len(letters.Glyphs) != 52 {
		t.Fatalf("expected 52 letter records, got %d", len(letters.Glyphs))
	}
	if letters.Replacement != 0 {
		t.Errorf("a store without U+FFFD and space falls back to record 0, is %d",
			letters.Replacement)
	}
	if g, ok := letters.Lookup('9'); ok || g.Character != 'A' {
		t.Errorf("expected fallback to 'A', got %q (ok = %v)", g.Character, ok)
	}
}

// TestFlippedBounds builds a font with a single descender glyph and
// checks the raster coordinates: 5×6 pixels, 2 below the baseline,
// give a rectangle from (-1, -5) to (4, 1).
func TestFlippedBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	s := buildDescender(t)
	g, ok := s.Lookup('g')
	if !ok {
		t.Fatal("store should contain 'g'")
	}
	if g.Bounds != image.Rect(-1, -5, 4, 1) {
		t.Errorf("unexpected raster bounds %v", g.Bounds)
	}
	if g.Bounds.Max.Y != 1 { // one descender row crosses the baseline row
		t.Errorf("descender should reach below the baseline, bounds %v", g.Bounds)
	}
	expect := []byte{0x7c, 0x5e, 0x10, 0xb8}
	if !bytes.Equal(s.Bits, expect) {
		t.Errorf("stream is % x, expected % x", s.Bits, expect)
	}
}

func TestWriteGo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	s := buildDescender(t)
	buf := &bytes.Buffer{}
	if err := s.WriteGo(buf, "glyphdata", "Mini"); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	for _, want := range []string{
		"// Code generated by pcfembed. DO NOT EDIT.",
		"package glyphdata",
		"var Mini = &pcfembed.Store{",
		"{Character: 'g', Bounds: image.Rect(-1, -5, 4, 1), DeviceWidth: 5, StartIndex: 0},",
		"0x7c, 0x5e, 0x10, 0xb8,",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source misses %q", want)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "mini.go", src, 0); err != nil {
		t.Errorf("generated source does not parse: %v", err)
	}
}

func TestWriteGoDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	buf := &bytes.Buffer{}
	if err := buildReference(t).WriteGo(buf, "", ""); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	if !strings.Contains(src, "package main") || !strings.Contains(src, "var Font =") {
		t.Error("expected package main and ident Font as defaults")
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "font.go", src, 0); err != nil {
		t.Errorf("generated source does not parse: %v", err)
	}
}

func parseReference(t *testing.T) *pcf.Font {
	t.Helper()
	f, err := pcf.Parse(testfont.Reference())
	if err != nil {
		t.Fatalf("cannot parse reference font: %v", err)
	}
	return f
}

func buildReference(t *testing.T) *Store {
	t.Helper()
	return Build(parseReference(t), nil)
}

// buildDescender creates a single-glyph font: a 5×6 'g' with one side
// bearing left of the origin and two rows below the baseline.
func buildDescender(t *testing.T) *Store {
	t.Helper()
	m := testfont.MetricsSpec{LSB: -1, RSB: 4, Width: 5, Ascent: 4, Descent: 2}
	bin := testfont.Build([]testfont.GlyphSpec{
		{
			Code:    'g',
			Metrics: m,
			Rows: []string{
				"01111",
				"10001",
				"01111",
				"00001",
				"00001",
				"01110",
			},
		},
	}, testfont.Options{
		Accel: testfont.AccelSpec{FontAscent: 5, FontDescent: 2, Min: m, Max: m},
	})
	f, err := pcf.Parse(bin)
	if err != nil {
		t.Fatalf("cannot parse descender font: %v", err)
	}
	return Build(f, nil)
}
