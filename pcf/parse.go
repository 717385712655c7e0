package pcf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Code comments occasionally cite the PCF format description as
// published with the X11 sources and mirrored at
// https://fontforge.org/docs/techref/pcf-format.html.

// ---------------------------------------------------------------------------

// pcfMagic spells "\x01fcp" when read as a little-endian 32-bit word at
// the start of the file.
const pcfMagic uint32 = 0x70636601

// Maximum reasonable counts for PCF table structures. These limits
// prevent malicious fonts from claiming unreasonably large counts that
// could lead to excessive memory allocation or out-of-bounds reads.
const (
	MaxTableCount    = 32    // 9 table types exist; real fonts carry 8 or 9 records
	MaxGlyphCount    = 65536 // glyph indices are uint16
	MaxPropertyCount = 1024  // properties: typically < 30
)

// codePointLimit bounds the code point walk: PCF encodes at most
// two-byte character codes.
const codePointLimit = 0x10000

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers.
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a < 0 || b < 0 || a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values.
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Parse decodes a PCF font from a byte slice, assembling a glyph for
// every code point the font encodes. A pcf.Font needs ongoing access to
// the font's byte-data after the Parse function returns. Its elements
// are assumed immutable while the pcf.Font remains in use.
//
// Parse either returns a fully decoded font or an error (a FontError
// carrying one of the ErrorKind values); it never returns a partially
// decoded one. Parsing the same bytes twice yields equal fonts.
func Parse(font []byte) (*Font, error) {
	return parse(font, nil)
}

// ParseSubset decodes a PCF font like Parse, but assembles glyphs only
// for code points whose rune value passes the include predicate. Font
// tables and font-wide values are decoded unconditionally, so metrics
// queries remain exact; only the glyph map is restricted.
func ParseSubset(font []byte, include func(rune) bool) (*Font, error) {
	return parse(font, include)
}

func parse(font []byte, include func(rune) bool) (*Font, error) {
	ec := &errorCollector{}
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, ec.fail(OutOfBounds, 0, "header", "file too short for PCF header", 0)
	}
	tracer().Debugf("header = %v", h)
	if h.Magic != pcfMagic {
		return nil, ec.fail(InvalidHeader, 0, "header",
			fmt.Sprintf("magic %#x is not a PCF file", h.Magic), 0)
	}
	if h.TableCount > MaxTableCount {
		return nil, ec.fail(InvalidHeader, 0, "header",
			fmt.Sprintf("unreasonable table count %d", h.TableCount), 4)
	}
	f := &Font{Header: &h, tables: make(map[TableType]Table, h.TableCount)}
	src := binarySegm(font)

	// The header is followed immediately by the table records, 16 bytes
	// each, all values little-endian.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, ec.fail(InvalidHeader, 0, "table records",
			fmt.Sprintf("table count too large: %v", err), 8)
	}
	buf, err := src.view(8, tableRecordsSize)
	if err != nil && h.TableCount > 0 {
		return nil, ec.fail(OutOfBounds, 0, "table records", "file too short for table records", 8)
	}
	for i := 0; i < int(h.TableCount); i++ {
		b := buf[16*i:]
		rec := TableRec{
			Type:   TableType(u32le(b)),
			Format: u32le(b[4:]),
			Size:   u32le(b[8:]),
			Offset: u32le(b[12:]),
		}
		tableEnd, err := checkedAddUint32(rec.Offset, rec.Size)
		if err != nil {
			return nil, ec.fail(OutOfBounds, rec.Type, "directory",
				fmt.Sprintf("size calculation overflow: %v", err), rec.Offset)
		}
		if tableEnd > uint32(len(src)) {
			return nil, ec.fail(OutOfBounds, rec.Type, "directory",
				fmt.Sprintf("bounds [%d:%d] exceed font size %d", rec.Offset, tableEnd, len(src)),
				rec.Offset)
		}
		if _, dup := f.tables[rec.Type]; dup {
			ec.addWarning(rec.Type, "duplicate table record, keeping the later one", rec.Offset)
		}
		f.tables[rec.Type] = newTable(rec, src[rec.Offset:tableEnd])
		f.recs = append(f.recs, rec)
		tracer().Debugf("table %s: format %#x, %d bytes at %d", rec.Type, rec.Format, rec.Size, rec.Offset)
	}

	if err := decodeTables(f, ec); err != nil {
		return nil, err
	}
	if err := assembleGlyphs(f, include, ec); err != nil {
		return nil, err
	}
	f.aggregate()
	f.parseWarnings = ec.warnings
	return f, nil
}

// decodeTables interprets the table bodies glyph assembly relies on, and
// the optional descriptive tables when present. A font may carry both
// accelerator flavours; only the preferred one is decoded, so a corrupt
// body in the unused twin does not fail the font.
func decodeTables(f *Font, ec *errorCollector) error {
	if t := f.Table(TypeBDFAccelerators); t != nil {
		f.Accel = t.Self().AsAccelerators()
	} else if t := f.Table(TypeAccelerators); t != nil {
		f.Accel = t.Self().AsAccelerators()
	}
	if f.Accel == nil {
		return ec.fail(MissingTable, TypeAccelerators, "directory",
			"font carries neither accelerators nor BDF accelerators", 0)
	}
	if err := f.Accel.decode(ec); err != nil {
		return err
	}
	if t := f.Table(TypeBDFEncodings); t != nil {
		f.Enc = t.Self().AsEncodings()
	}
	if f.Enc == nil {
		return ec.fail(MissingTable, TypeBDFEncodings, "directory", "font carries no encodings table", 0)
	}
	if err := f.Enc.decode(ec); err != nil {
		return err
	}
	if t := f.Table(TypeBitmaps); t != nil {
		f.Bitmaps = t.Self().AsBitmaps()
	}
	if f.Bitmaps == nil {
		return ec.fail(MissingTable, TypeBitmaps, "directory", "font carries no bitmap table", 0)
	}
	if err := f.Bitmaps.decode(ec); err != nil {
		return err
	}
	if t := f.Table(TypeMetrics); t != nil {
		f.Metrics = t.Self().AsMetrics()
	}
	if f.Metrics == nil {
		return ec.fail(MissingTable, TypeMetrics, "directory", "font carries no metrics table", 0)
	}
	if err := f.Metrics.decode(ec); err != nil {
		return err
	}
	if f.Bitmaps.GlyphCount != f.Metrics.Count {
		ec.addWarning(TypeBitmaps,
			fmt.Sprintf("bitmap table holds %d glyphs, metrics table %d",
				f.Bitmaps.GlyphCount, f.Metrics.Count), 0)
	}

	// Optional tables: absence is fine, a broken body is not.
	if t := f.Table(TypeInkMetrics); t != nil {
		f.InkMetrics = t.Self().AsMetrics()
		if err := f.InkMetrics.decode(ec); err != nil {
			return err
		}
	}
	if t := f.Table(TypeProperties); t != nil {
		f.Props = t.Self().AsProperties()
		if err := f.Props.decode(ec); err != nil {
			return err
		}
	}
	if t := f.Table(TypeSWidths); t != nil {
		f.SWidths = t.Self().AsSWidths()
		if err := f.SWidths.decode(ec); err != nil {
			return err
		}
	}
	if t := f.Table(TypeGlyphNames); t != nil {
		f.Names = t.Self().AsGlyphNames()
		if err := f.Names.decode(ec); err != nil {
			return err
		}
	}
	return nil
}

// assembleGlyphs walks the complete code point range and decodes a glyph
// for every mapped code point, honoring the include predicate if one is
// given.
func assembleGlyphs(f *Font, include func(rune) bool, ec *errorCollector) error {
	f.glyphs = make(map[CodePoint]*Glyph)
	for c := 0; c < codePointLimit; c++ {
		cp := CodePoint(c)
		if include != nil && !include(rune(cp)) {
			continue
		}
		g, ok, err := assembleGlyph(f.Enc, f.Metrics, f.Bitmaps, cp, ec)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		f.glyphs[cp] = g
		f.codes = append(f.codes, cp)
	}
	tracer().Infof("decoded %d glyphs", len(f.codes))
	return nil
}
