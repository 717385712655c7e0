package pcf

// Accelerators are font-wide values precomputed by the font compiler:
// global ascent/descent, the maximum horizontal overlap, and field-wise
// minima/maxima over all glyph metrics. The ink variants bound the
// actually inked pixels; fonts without the ink-bounds format class store
// only the logical bounds, which then serve as ink bounds too.
type Accelerators struct {
	NoOverlap       bool  // no glyph paints outside its character cell
	ConstantMetrics bool  // all glyphs share one set of metrics
	TerminalFont    bool  // constant metrics and cell-sized bitmaps
	ConstantWidth   bool  // all character widths are equal
	InkInside       bool  // all ink is inside the character cell
	InkMetrics      bool  // ink metrics differ from logical metrics
	DrawDirection   uint8 // 0 left-to-right, 1 right-to-left

	FontAscent  int32
	FontDescent int32
	MaxOverlap  int32

	MinBounds    Metrics
	MaxBounds    Metrics
	InkMinBounds Metrics
	InkMaxBounds Metrics
}

// AccelTable is the accelerators table (plain or BDF flavour). PCF fonts
// often carry both; decoding prefers the BDF one, which carries values
// computed over the glyphs the BDF source actually contained.
type AccelTable struct {
	tableBase
	Accelerators
	HasInkBounds bool // true if the file stored separate ink bounds
}

func newAccelTable(rec TableRec, b binarySegm) *AccelTable {
	t := &AccelTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

// Accelerator table layout, after the little-endian format word:
// 8 flag bytes, three big-endian int32, then two (or four) uncompressed
// metrics blocks.
const (
	accelFlagsAt     = 4
	accelAscentAt    = 12
	accelDescentAt   = 16
	accelOverlapAt   = 20
	accelMinBoundsAt = 24
	accelMaxBoundsAt = 36
	accelInkMinAt    = 48
	accelInkMaxAt    = 60
)

func (at *AccelTable) decode(ec *errorCollector) error {
	format, err := at.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "format", "table too short for format word", at.rec.Offset)
	}
	if format&formatByteOrder == 0 {
		return ec.fail(UnsupportedEndianness, at.rec.Type, "format",
			"little-endian accelerator values not supported", at.rec.Offset)
	}
	at.HasInkBounds = formatClass(format)&formatAccelWithInkBnds != 0

	flags, err := at.data.view(accelFlagsAt, 8)
	if err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "flags", "table too short for flag bytes", at.rec.Offset)
	}
	at.NoOverlap = flags[0] != 0
	at.ConstantMetrics = flags[1] != 0
	at.TerminalFont = flags[2] != 0
	at.ConstantWidth = flags[3] != 0
	at.InkInside = flags[4] != 0
	at.InkMetrics = flags[5] != 0
	at.DrawDirection = flags[6]
	// flags[7] is a padding byte

	if at.FontAscent, err = at.data.i32(accelAscentAt); err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "font ascent", "table too short", at.rec.Offset)
	}
	if at.FontDescent, err = at.data.i32(accelDescentAt); err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "font descent", "table too short", at.rec.Offset)
	}
	if at.MaxOverlap, err = at.data.i32(accelOverlapAt); err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "max overlap", "table too short", at.rec.Offset)
	}
	if at.MinBounds, err = readUncompressedMetrics(at.data, accelMinBoundsAt); err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "min bounds", "table too short", at.rec.Offset)
	}
	if at.MaxBounds, err = readUncompressedMetrics(at.data, accelMaxBoundsAt); err != nil {
		return ec.fail(OutOfBounds, at.rec.Type, "max bounds", "table too short", at.rec.Offset)
	}
	if at.HasInkBounds {
		if at.InkMinBounds, err = readUncompressedMetrics(at.data, accelInkMinAt); err != nil {
			return ec.fail(OutOfBounds, at.rec.Type, "ink min bounds", "table too short", at.rec.Offset)
		}
		if at.InkMaxBounds, err = readUncompressedMetrics(at.data, accelInkMaxAt); err != nil {
			return ec.fail(OutOfBounds, at.rec.Type, "ink max bounds", "table too short", at.rec.Offset)
		}
	} else {
		at.InkMinBounds = at.MinBounds
		at.InkMaxBounds = at.MaxBounds
	}
	tracer().Debugf("accelerators: ascent %d, descent %d, overlap %d",
		at.FontAscent, at.FontDescent, at.MaxOverlap)
	return nil
}
