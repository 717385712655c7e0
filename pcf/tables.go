package pcf

// TableType identifies one of the PCF table kinds. Types are single-bit
// values; the table directory may list each at most once in practice,
// though the format does not enforce it.
type TableType uint32

// The table types defined by the PCF format.
const (
	TypeProperties      TableType = 1 << 0
	TypeAccelerators    TableType = 1 << 1
	TypeMetrics         TableType = 1 << 2
	TypeBitmaps         TableType = 1 << 3
	TypeInkMetrics      TableType = 1 << 4
	TypeBDFEncodings    TableType = 1 << 5
	TypeSWidths         TableType = 1 << 6
	TypeGlyphNames      TableType = 1 << 7
	TypeBDFAccelerators TableType = 1 << 8
)

func (t TableType) String() string {
	switch t {
	case TypeProperties:
		return "properties"
	case TypeAccelerators:
		return "accelerators"
	case TypeMetrics:
		return "metrics"
	case TypeBitmaps:
		return "bitmaps"
	case TypeInkMetrics:
		return "ink-metrics"
	case TypeBDFEncodings:
		return "encodings"
	case TypeSWidths:
		return "swidths"
	case TypeGlyphNames:
		return "glyph-names"
	case TypeBDFAccelerators:
		return "bdf-accelerators"
	}
	return "unknown"
}

// Format words: the low byte carries modifier bits, the rest selects the
// format class. Table bodies re-state their format word (little-endian)
// as their first four bytes.
const (
	formatDefault           uint32 = 0x00000000
	formatInkBounds         uint32 = 0x00000200
	formatAccelWithInkBnds  uint32 = 0x00000100
	formatCompressedMetrics uint32 = 0x00000100

	formatGlyphPadMask uint32 = 3      // log2 of the row padding in bytes
	formatByteOrder    uint32 = 1 << 2 // set: table body is big-endian
	formatBitOrder     uint32 = 1 << 3 // set: leftmost pixel in the MSBit
	formatScanUnitMask uint32 = 3 << 4

	formatModifierMask uint32 = 0xFF
)

// formatClass strips the modifier bits off a format word.
func formatClass(format uint32) uint32 {
	return format &^ formatModifierMask
}

// TableRec is one entry of the table directory at the head of a PCF
// file: four little-endian 32-bit words.
type TableRec struct {
	Type   TableType
	Format uint32
	Size   uint32
	Offset uint32
}

// --- Table -------------------------------------------------------------

// Table represents one of the PCF font tables.
//
// Decoding interprets the tables needed for glyph assembly (accelerators,
// metrics, bitmaps, encodings) plus the optional descriptive ones
// (properties, scalable widths, glyph names, ink metrics). Table types
// outside that set are preserved as generic tables, i.e. no table
// information is dropped.
type Table interface {
	Extent() (uint32, uint32) // offset and byte size within the font's binary data
	Format() uint32           // the format word from the table directory
	Binary() []byte           // the bytes of this table; should be treated as read-only by clients
	Self() TableSelf          // reference to itself
}

// tableBase is a common parent for all kinds of PCF tables.
type tableBase struct {
	data binarySegm // a table is a slice of font data
	rec  TableRec   // the directory record pointing at this table
	self any
}

// Extent returns offset and byte size of this table within the PCF font.
func (tb *tableBase) Extent() (uint32, uint32) {
	return tb.rec.Offset, tb.rec.Size
}

// Format returns the format word recorded in the table directory.
func (tb *tableBase) Format() uint32 {
	return tb.rec.Format
}

// Binary returns the bytes of this table. Should be treated as read-only
// by clients, as it is a view into the original data.
func (tb *tableBase) Binary() []byte {
	return tb.data
}

func (tb *tableBase) Self() TableSelf {
	return TableSelf{tableBase: tb}
}

// TableSelf is a reference to a table. Its primary use is for converting
// a generic table to a concrete table flavour, and for reproducing the
// type of a table.
type TableSelf struct {
	tableBase *tableBase
}

// Type returns the PCF table type of a table.
func (tself TableSelf) Type() TableType {
	return tself.tableBase.rec.Type
}

func safeSelf(tself TableSelf) any {
	if tself.tableBase == nil || tself.tableBase.self == nil {
		return TableSelf{}
	}
	return tself.tableBase.self
}

// AsProperties returns this table as a properties table, or nil.
func (tself TableSelf) AsProperties() *PropertiesTable {
	if p, ok := safeSelf(tself).(*PropertiesTable); ok {
		return p
	}
	return nil
}

// AsAccelerators returns this table as an accelerators table, or nil.
// Both the plain and the BDF flavour convert.
func (tself TableSelf) AsAccelerators() *AccelTable {
	if a, ok := safeSelf(tself).(*AccelTable); ok {
		return a
	}
	return nil
}

// AsMetrics returns this table as a metrics table, or nil.
// Both the logical-metrics and the ink-metrics flavour convert.
func (tself TableSelf) AsMetrics() *MetricsTable {
	if m, ok := safeSelf(tself).(*MetricsTable); ok {
		return m
	}
	return nil
}

// AsBitmaps returns this table as a bitmap table, or nil.
func (tself TableSelf) AsBitmaps() *BitmapTable {
	if bt, ok := safeSelf(tself).(*BitmapTable); ok {
		return bt
	}
	return nil
}

// AsEncodings returns this table as an encodings table, or nil.
func (tself TableSelf) AsEncodings() *EncodingTable {
	if e, ok := safeSelf(tself).(*EncodingTable); ok {
		return e
	}
	return nil
}

// AsSWidths returns this table as a scalable-widths table, or nil.
func (tself TableSelf) AsSWidths() *SWidthsTable {
	if s, ok := safeSelf(tself).(*SWidthsTable); ok {
		return s
	}
	return nil
}

// AsGlyphNames returns this table as a glyph-names table, or nil.
func (tself TableSelf) AsGlyphNames() *GlyphNamesTable {
	if g, ok := safeSelf(tself).(*GlyphNamesTable); ok {
		return g
	}
	return nil
}

type genericTable struct {
	tableBase
}

func newGenericTable(rec TableRec, b binarySegm) *genericTable {
	t := &genericTable{tableBase{
		data: b,
		rec:  rec,
	}}
	t.self = t
	return t
}

// newTable wraps one directory record in its typed table. Table bodies
// are decoded later, and only for the tables glyph assembly selects, so
// a font carrying a corrupt table it never uses still decodes.
func newTable(rec TableRec, b binarySegm) Table {
	switch rec.Type {
	case TypeProperties:
		return newPropertiesTable(rec, b)
	case TypeAccelerators, TypeBDFAccelerators:
		return newAccelTable(rec, b)
	case TypeMetrics, TypeInkMetrics:
		return newMetricsTable(rec, b)
	case TypeBitmaps:
		return newBitmapTable(rec, b)
	case TypeBDFEncodings:
		return newEncodingTable(rec, b)
	case TypeSWidths:
		return newSWidthsTable(rec, b)
	case TypeGlyphNames:
		return newGlyphNamesTable(rec, b)
	}
	return newGenericTable(rec, b)
}
