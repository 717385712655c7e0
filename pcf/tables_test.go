package pcf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatClass(t *testing.T) {
	// The class is the format word with the modifier byte masked off.
	cases := []struct {
		format uint32
		class  uint32
	}{
		{0x00E, formatDefault},
		{0x10E, formatCompressedMetrics},
		{0x20E, formatInkBounds},
		{0x000, formatDefault},
		{0x0FF, formatDefault},
	}
	for _, c := range cases {
		if got := formatClass(c.format); got != c.class {
			t.Errorf("expected format %#x to have class %#x, got %#x", c.format, c.class, got)
		}
	}
}

func TestTableTypeString(t *testing.T) {
	cases := map[TableType]string{
		TypeProperties:      "properties",
		TypeAccelerators:    "accelerators",
		TypeMetrics:         "metrics",
		TypeBitmaps:         "bitmaps",
		TypeInkMetrics:      "ink-metrics",
		TypeBDFEncodings:    "encodings",
		TypeSWidths:         "swidths",
		TypeGlyphNames:      "glyph-names",
		TypeBDFAccelerators: "bdf-accelerators",
	}
	for typ, want := range cases {
		if typ.String() != want {
			t.Errorf("expected table type %d to print as %q, got %q", typ, want, typ.String())
		}
	}
	if TableType(1<<12).String() != "unknown" {
		t.Error("unknown table types should print as such")
	}
}

// Table records dispatch to typed tables; conversion to the wrong
// flavour answers nil.
func TestTableDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	f := parseReference(t)
	if f.Table(TypeMetrics).Self().AsMetrics() == nil {
		t.Error("the metrics record should convert to a metrics table")
	}
	if f.Table(TypeMetrics).Self().AsBitmaps() != nil {
		t.Error("the metrics record should not convert to a bitmap table")
	}
	if f.Table(TypeBitmaps).Self().AsBitmaps() == nil {
		t.Error("the bitmap record should convert to a bitmap table")
	}
	if f.Table(TypeProperties).Self().AsProperties() == nil {
		t.Error("the properties record should convert to a properties table")
	}
	if f.Table(TypeBDFEncodings).Self().AsEncodings() == nil {
		t.Error("the encodings record should convert to an encodings table")
	}
	if f.Table(TypeSWidths).Self().AsSWidths() == nil {
		t.Error("the swidths record should convert to a swidths table")
	}
	if f.Table(TypeGlyphNames).Self().AsGlyphNames() == nil {
		t.Error("the names record should convert to a names table")
	}
	if f.Table(TypeBDFAccelerators).Self().AsAccelerators() == nil {
		t.Error("the accelerator record should convert to an accelerator table")
	}
	if f.Table(TypeMetrics).Self().Type() != TypeMetrics {
		t.Error("a table should know its own type")
	}
}

func TestTableBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	f := parseReference(t)
	tbl := f.Table(TypeMetrics)
	_, size := tbl.Extent()
	if len(tbl.Binary()) != int(size) {
		t.Errorf("table binary length %d disagrees with extent %d", len(tbl.Binary()), size)
	}
	if tbl.Format()&0x100 == 0 {
		t.Error("the metrics format word should carry the compressed class bit")
	}
}

func TestUnknownTableRecord(t *testing.T) {
	rec := TableRec{Type: TableType(1 << 12), Format: 0xE, Size: 4}
	tbl := newTable(rec, binarySegm{0xE, 0, 0, 0})
	if tbl == nil {
		t.Fatal("unknown table types should still be wrapped")
	}
	if tbl.Self().AsMetrics() != nil {
		t.Error("a generic table should not convert to a metrics table")
	}
	if tbl.Self().Type() != rec.Type {
		t.Error("a generic table should keep its record type")
	}
}
