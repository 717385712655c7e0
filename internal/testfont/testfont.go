// Package testfont assembles synthetic PCF binaries for tests.
//
// The builder writes the common on-disk encoding: a little-endian table
// directory, big-endian table bodies, bitmap rows padded to 32-bit words
// with the leftmost pixel in the most significant bit. Options corrupt
// selected aspects so decoder error paths can be exercised.
//
// The package deliberately does not import the decoder; it spells out
// the format constants itself, so that white-box decoder tests can use
// it without an import cycle.
package testfont

import (
	"fmt"
	"sort"
)

// PCF table types, in directory order.
const (
	typeProperties      = 1 << 0
	typeAccelerators    = 1 << 1
	typeMetrics         = 1 << 2
	typeBitmaps         = 1 << 3
	typeInkMetrics      = 1 << 4
	typeBDFEncodings    = 1 << 5
	typeSWidths         = 1 << 6
	typeGlyphNames      = 1 << 7
	typeBDFAccelerators = 1 << 8
)

// Format word bits.
const (
	fmtByteOrder  = 1 << 2
	fmtBitOrder   = 1 << 3
	fmtCompressed = 0x100
	fmtPad4       = 2 // padding class for 32-bit word rows
)

// MetricsSpec is one set of glyph metrics.
type MetricsSpec struct {
	LSB, RSB, Width, Ascent, Descent int16
}

// GlyphSpec describes one glyph of the synthetic font. Rows holds the
// pixel rows top-down as strings of '1' and '0'; it may be nil for
// glyphs without inked pixels. Name and SWidth default to values derived
// from Code when left zero.
type GlyphSpec struct {
	Code    uint16
	Metrics MetricsSpec
	Rows    []string
	Name    string
	SWidth  int32
}

// EncodingSpec overrides the encoding header the builder would compute
// from the glyph codes.
type EncodingSpec struct {
	MinByte2, MaxByte2, MinByte1, MaxByte1 int16
	DefaultChar                            int16
}

// PropSpec is one BDF property.
type PropSpec struct {
	Name     string
	Str      string
	Int      int32
	IsString bool
}

// Options corrupt or vary aspects of the built font. The zero value
// builds a well-formed font.
type Options struct {
	BadMagic            bool          // corrupt the magic bytes
	Omit                uint32        // bitmask of table types to leave out
	TruncateAt          int           // cut the final buffer after n bytes (0 = no cut)
	LittleEndianAccel   bool          // clear the byte-order bit on accelerator tables
	PadClass            *uint32       // bitmap padding class; nil = 32-bit words
	BitmapClass         uint32        // bitmap format class; 0 = default
	EncodingClass       uint32        // encoding format class; 0 = default
	MetricsClass        *uint32       // metrics format class; nil = compressed
	UncompressedMetrics bool          // write the 12-byte metrics form
	InkMetrics          bool          // add an ink-metrics table (same values as metrics)
	InkBoundsAccel      bool          // write the accelerator ink-bounds variant
	PlainAccelAscent    int32         // if non-zero, only the plain accelerators table gets this ascent
	ShortIndexArray     bool          // drop the last entry of the glyph index array
	Accel               AccelSpec     // font-wide values
	Encoding            *EncodingSpec // override the computed encoding header
	Properties          []PropSpec
}

// AccelSpec holds the font-wide accelerator values.
type AccelSpec struct {
	FontAscent  int32
	FontDescent int32
	MaxOverlap  int32
	Min, Max    MetricsSpec
	InkMin      MetricsSpec // used with Options.InkBoundsAccel
	InkMax      MetricsSpec
}

// ReferenceAccel returns the accelerator values of the reference
// fixture.
func ReferenceAccel() AccelSpec {
	return AccelSpec{
		FontAscent:  10,
		FontDescent: 2,
		MaxOverlap:  1,
		Min:         MetricsSpec{LSB: -1, RSB: 1, Width: 0, Ascent: -1, Descent: -7},
		Max:         MetricsSpec{LSB: 3, RSB: 11, Width: 11, Ascent: 9, Descent: 3},
	}
}

// ReferenceGlyphs returns the glyph set of the reference fixture: 97
// glyphs for the codes 30…126, laid out so that the glyph of 'A' has
// index 35 and bitmap offset 960.
func ReferenceGlyphs() []GlyphSpec {
	glyphs := make([]GlyphSpec, 0, 97)
	box := []string{ // the default glyph, an inked frame
		"1111111",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1000001",
		"1111111",
	}
	filler := []string{
		"111111",
		"111111",
		"111111",
		"111111",
		"111111",
		"111111",
		"111111",
	}
	for code := uint16(30); code <= 126; code++ {
		switch code {
		case 30:
			glyphs = append(glyphs, GlyphSpec{
				Code:    code,
				Metrics: MetricsSpec{LSB: 0, RSB: 7, Width: 8, Ascent: 9, Descent: 0},
				Rows:    box,
			})
		case ' ':
			glyphs = append(glyphs, GlyphSpec{
				Code:    code,
				Metrics: MetricsSpec{LSB: 0, RSB: 0, Width: 4, Ascent: 0, Descent: 0},
			})
		case 'A':
			glyphs = append(glyphs, GlyphSpec{
				Code:    code,
				Metrics: MetricsSpec{LSB: 0, RSB: 7, Width: 8, Ascent: 9, Descent: 0},
				Rows:    ReferenceAPattern(),
			})
		default:
			glyphs = append(glyphs, GlyphSpec{
				Code:    code,
				Metrics: MetricsSpec{LSB: 0, RSB: 6, Width: 7, Ascent: 7, Descent: 0},
				Rows:    filler,
			})
		}
	}
	return glyphs
}

// ReferenceAPattern returns the 7×9 pixel rows of the reference glyph
// for 'A'.
func ReferenceAPattern() []string {
	return []string{
		"0001000",
		"0001100",
		"0010100",
		"0010010",
		"0010010",
		"0111110",
		"0100001",
		"0100001",
		"1000001",
	}
}

// ReferenceProperties returns the property set of the reference fixture.
func ReferenceProperties() []PropSpec {
	return []PropSpec{
		{Name: "COPYRIGHT", Str: "Assembled for decoder tests", IsString: true},
		{Name: "FAMILY_NAME", Str: "Testface", IsString: true},
		{Name: "WEIGHT_NAME", Str: "Medium", IsString: true},
		{Name: "PIXEL_SIZE", Int: 12},
		{Name: "POINT_SIZE", Int: 120},
		{Name: "RESOLUTION_X", Int: 75},
		{Name: "RESOLUTION_Y", Int: 75},
		{Name: "FONT_ASCENT", Int: 10},
		{Name: "FONT_DESCENT", Int: 2},
		{Name: "CHARSET_REGISTRY", Str: "ISO8859", IsString: true},
		{Name: "CHARSET_ENCODING", Str: "1", IsString: true},
		{Name: "DEFAULT_CHAR", Int: 1},
	}
}

// Reference assembles the canonical test fixture: 8 tables, 97 glyphs,
// single-byte encoding 0…126 with default char 1, compressed metrics.
func Reference() []byte {
	return Build(ReferenceGlyphs(), Options{
		Accel:      ReferenceAccel(),
		Encoding:   &EncodingSpec{MinByte2: 0, MaxByte2: 126, MinByte1: 0, MaxByte1: 0, DefaultChar: 1},
		Properties: ReferenceProperties(),
	})
}

// --- Append helpers ------------------------------------------------------

func be16(b []byte, v int16) []byte {
	return append(b, byte(uint16(v)>>8), byte(uint16(v)))
}

func be32(b []byte, v int32) []byte {
	u := uint32(v)
	return append(b, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}

func le32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

func (m MetricsSpec) appendUncompressed(b []byte) []byte {
	b = be16(b, m.LSB)
	b = be16(b, m.RSB)
	b = be16(b, m.Width)
	b = be16(b, m.Ascent)
	b = be16(b, m.Descent)
	b = be16(b, 0) // attributes
	return b
}

func (m MetricsSpec) appendCompressed(b []byte) []byte {
	bias := func(v int16) byte { return byte(v + 0x80) }
	return append(b, bias(m.LSB), bias(m.RSB), bias(m.Width), bias(m.Ascent), bias(m.Descent))
}

// --- Builder --------------------------------------------------------------

// Build assembles a PCF binary from the given glyphs, sorted by code.
// Glyph indices are positions in the sorted order.
func Build(glyphs []GlyphSpec, o Options) []byte {
	glyphs = append([]GlyphSpec(nil), glyphs...)
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i].Code < glyphs[j].Code })

	fmtDefault := uint32(fmtPad4 | fmtByteOrder | fmtBitOrder)

	type table struct {
		typ    uint32
		format uint32
		body   []byte
		noPad  bool
	}
	var tables []table
	add := func(typ, format uint32, body []byte, noPad bool) {
		if o.Omit&typ != 0 {
			return
		}
		tables = append(tables, table{typ: typ, format: format, body: body, noPad: noPad})
	}

	// properties
	if len(o.Properties) > 0 {
		add(typeProperties, fmtDefault, buildProperties(o.Properties, fmtDefault), false)
	}

	// accelerators, plain and BDF flavour
	accelFormat := fmtDefault
	if o.LittleEndianAccel {
		accelFormat &^= fmtByteOrder
	}
	if o.InkBoundsAccel {
		accelFormat |= 0x100
	}
	plain := o.Accel
	if o.PlainAccelAscent != 0 {
		plain.FontAscent = o.PlainAccelAscent
	}
	add(typeAccelerators, accelFormat, buildAccel(plain, accelFormat, o.InkBoundsAccel), false)

	// metrics
	metricsFormat := uint32(fmtCompressed) | fmtDefault
	if o.UncompressedMetrics {
		metricsFormat = fmtDefault
	}
	if o.MetricsClass != nil {
		metricsFormat = *o.MetricsClass | fmtDefault
	}
	metricsBody := buildMetrics(glyphs, metricsFormat)
	add(typeMetrics, metricsFormat, metricsBody, false)

	// bitmaps
	bitmapFormat := o.BitmapClass | fmtByteOrder | fmtBitOrder
	if o.PadClass != nil {
		bitmapFormat |= *o.PadClass
	} else {
		bitmapFormat |= fmtPad4
	}
	add(typeBitmaps, bitmapFormat, buildBitmaps(glyphs, bitmapFormat), false)

	// ink metrics, same values as the logical ones
	if o.InkMetrics {
		add(typeInkMetrics, metricsFormat, metricsBody, false)
	}

	// encodings
	encFormat := o.EncodingClass | fmtDefault
	add(typeBDFEncodings, encFormat, buildEncodings(glyphs, o.Encoding, encFormat, o.ShortIndexArray),
		o.ShortIndexArray)

	// scalable widths
	add(typeSWidths, fmtDefault, buildSWidths(glyphs, fmtDefault), false)

	// glyph names
	add(typeGlyphNames, fmtDefault, buildGlyphNames(glyphs, fmtDefault), false)

	// BDF accelerators
	add(typeBDFAccelerators, accelFormat, buildAccel(o.Accel, accelFormat, o.InkBoundsAccel), false)

	// assemble: header, directory, padded table bodies
	var out []byte
	if o.BadMagic {
		out = le32(out, 0xDEADBEEF)
	} else {
		out = le32(out, 0x70636601) // "\x01fcp"
	}
	out = le32(out, uint32(len(tables)))
	offset := uint32(8 + 16*len(tables))
	for _, t := range tables {
		size := uint32(len(t.body))
		if !t.noPad {
			size = uint32(len(pad4(t.body)))
		}
		out = le32(out, t.typ)
		out = le32(out, t.format)
		out = le32(out, size)
		out = le32(out, offset)
		offset += uint32(len(pad4(t.body)))
	}
	for _, t := range tables {
		out = append(out, pad4(t.body)...)
	}
	if o.TruncateAt > 0 && o.TruncateAt < len(out) {
		out = out[:o.TruncateAt]
	}
	return out
}

func buildAccel(a AccelSpec, format uint32, inkBounds bool) []byte {
	var b []byte
	b = le32(b, format)
	b = append(b, 0, 0, 0, 0, 0, 0, 0, 0) // flag bytes incl. padding
	b = be32(b, a.FontAscent)
	b = be32(b, a.FontDescent)
	b = be32(b, a.MaxOverlap)
	b = a.Min.appendUncompressed(b)
	b = a.Max.appendUncompressed(b)
	if inkBounds {
		b = a.InkMin.appendUncompressed(b)
		b = a.InkMax.appendUncompressed(b)
	}
	return b
}

func buildMetrics(glyphs []GlyphSpec, format uint32) []byte {
	var b []byte
	b = le32(b, format)
	if format&0x100 != 0 {
		b = be16(b, int16(len(glyphs)))
		for _, g := range glyphs {
			b = g.Metrics.appendCompressed(b)
		}
		return b
	}
	b = be32(b, int32(len(glyphs)))
	for _, g := range glyphs {
		b = g.Metrics.appendUncompressed(b)
	}
	return b
}

// strides returns the bytes per bitmap row of a glyph for the four
// padding classes 1, 2, 4, 8.
func strides(width int) [4]int {
	if width <= 0 {
		return [4]int{}
	}
	rowBytes := (width + 7) / 8
	var s [4]int
	for i, pad := range []int{1, 2, 4, 8} {
		s[i] = (rowBytes + pad - 1) / pad * pad
	}
	return s
}

func buildBitmaps(glyphs []GlyphSpec, format uint32) []byte {
	var data []byte
	offsets := make([]int32, len(glyphs))
	var sizes [4]int32
	for i, g := range glyphs {
		offsets[i] = sizes[2] // offsets refer to the 32-bit padded layout
		width := int(g.Metrics.RSB) - int(g.Metrics.LSB)
		height := int(g.Metrics.Ascent) + int(g.Metrics.Descent)
		if width <= 0 || height <= 0 {
			continue
		}
		st := strides(width)
		for c := range sizes {
			sizes[c] += int32(st[c] * height)
		}
		if len(g.Rows) != height {
			panic(fmt.Sprintf("glyph %d: %d rows for height %d", g.Code, len(g.Rows), height))
		}
		for _, row := range g.Rows {
			if len(row) != width {
				panic(fmt.Sprintf("glyph %d: row %q does not span width %d", g.Code, row, width))
			}
			rowBytes := make([]byte, st[2])
			for x, px := range row {
				if px == '1' {
					rowBytes[x/8] |= 0x80 >> (x % 8)
				}
			}
			data = append(data, rowBytes...)
		}
	}
	var b []byte
	b = le32(b, format)
	b = be32(b, int32(len(glyphs)))
	for _, off := range offsets {
		b = be32(b, off)
	}
	for _, s := range sizes {
		b = be32(b, s)
	}
	return append(b, data...)
}

func buildEncodings(glyphs []GlyphSpec, spec *EncodingSpec, format uint32, short bool) []byte {
	var e EncodingSpec
	if spec != nil {
		e = *spec
	} else {
		e = computedEncoding(glyphs)
	}
	cols := int(e.MaxByte2) - int(e.MinByte2) + 1
	rows := int(e.MaxByte1) - int(e.MinByte1) + 1
	indices := make([]uint16, cols*rows)
	for i := range indices {
		indices[i] = 0xFFFF
	}
	for gid, g := range glyphs {
		b1 := int(g.Code>>8) & 0xFF
		b2 := int(g.Code) & 0xFF
		if b1 < int(e.MinByte1) || b1 > int(e.MaxByte1) || b2 < int(e.MinByte2) || b2 > int(e.MaxByte2) {
			continue
		}
		indices[(b1-int(e.MinByte1))*cols+(b2-int(e.MinByte2))] = uint16(gid)
	}
	if short && len(indices) > 0 {
		indices = indices[:len(indices)-1]
	}
	var b []byte
	b = le32(b, format)
	b = be16(b, e.MinByte2)
	b = be16(b, e.MaxByte2)
	b = be16(b, e.MinByte1)
	b = be16(b, e.MaxByte1)
	b = be16(b, e.DefaultChar)
	for _, gid := range indices {
		b = be16(b, int16(gid))
	}
	return b
}

func computedEncoding(glyphs []GlyphSpec) EncodingSpec {
	e := EncodingSpec{MinByte2: 255, MinByte1: 255}
	for _, g := range glyphs {
		b1 := int16(g.Code>>8) & 0xFF
		b2 := int16(g.Code) & 0xFF
		if b1 < e.MinByte1 {
			e.MinByte1 = b1
		}
		if b1 > e.MaxByte1 {
			e.MaxByte1 = b1
		}
		if b2 < e.MinByte2 {
			e.MinByte2 = b2
		}
		if b2 > e.MaxByte2 {
			e.MaxByte2 = b2
		}
	}
	if len(glyphs) == 0 {
		return EncodingSpec{}
	}
	return e
}

func buildSWidths(glyphs []GlyphSpec, format uint32) []byte {
	var b []byte
	b = le32(b, format)
	b = be32(b, int32(len(glyphs)))
	for gid, g := range glyphs {
		w := g.SWidth
		if w == 0 {
			w = 480 + int32(gid)
		}
		b = be32(b, w)
	}
	return b
}

func buildGlyphNames(glyphs []GlyphSpec, format uint32) []byte {
	var pool []byte
	offsets := make([]int32, len(glyphs))
	for gid, g := range glyphs {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("uni%04X", g.Code)
		}
		offsets[gid] = int32(len(pool))
		pool = append(pool, name...)
		pool = append(pool, 0)
	}
	var b []byte
	b = le32(b, format)
	b = be32(b, int32(len(glyphs)))
	for _, off := range offsets {
		b = be32(b, off)
	}
	b = be32(b, int32(len(pool)))
	return append(b, pool...)
}

func buildProperties(props []PropSpec, format uint32) []byte {
	var pool []byte
	intern := func(s string) int32 {
		off := int32(len(pool))
		pool = append(pool, s...)
		pool = append(pool, 0)
		return off
	}
	type rec struct {
		nameOff  int32
		isString byte
		value    int32
	}
	recs := make([]rec, len(props))
	for i, p := range props {
		recs[i].nameOff = intern(p.Name)
		if p.IsString {
			recs[i].isString = 1
			recs[i].value = intern(p.Str)
		} else {
			recs[i].value = p.Int
		}
	}
	var b []byte
	b = le32(b, format)
	b = be32(b, int32(len(props)))
	for _, r := range recs {
		b = be32(b, r.nameOff)
		b = append(b, r.isString)
		b = be32(b, r.value)
	}
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	b = be32(b, int32(len(pool)))
	return append(b, pool...)
}
