package pcf

import "fmt"

// Metrics describe one glyph: horizontal bearings and character width in
// pixels, ascent and descent relative to the baseline. The bitmap width
// is RightSideBearing − LeftSideBearing, its height Ascent + Descent.
type Metrics struct {
	LeftSideBearing  int16
	RightSideBearing int16
	CharacterWidth   int16
	Ascent           int16
	Descent          int16
	Attributes       uint16 // only present in the uncompressed form
}

const (
	uncompressedMetricsSize = 12 // 5 × int16 + uint16 attributes
	compressedMetricsSize   = 5  // 5 biased bytes, no attributes

	uncompressedHeaderSize = 8 // format word + int32 count
	compressedHeaderSize   = 6 // format word + int16 count
)

// readUncompressedMetrics reads the 12-byte big-endian metrics form at
// the given offset.
func readUncompressedMetrics(b binarySegm, at int) (Metrics, error) {
	seg, err := b.view(at, uncompressedMetricsSize)
	if err != nil {
		return Metrics{}, err
	}
	var m Metrics
	m.LeftSideBearing = int16(u16(seg[0:]))
	m.RightSideBearing = int16(u16(seg[2:]))
	m.CharacterWidth = int16(u16(seg[4:]))
	m.Ascent = int16(u16(seg[6:]))
	m.Descent = int16(u16(seg[8:]))
	m.Attributes = u16(seg[10:])
	return m, nil
}

// readCompressedMetrics reads the 5-byte metrics form at the given
// offset. Each byte carries a value biased by 0x80.
func readCompressedMetrics(b binarySegm, at int) (Metrics, error) {
	seg, err := b.view(at, compressedMetricsSize)
	if err != nil {
		return Metrics{}, err
	}
	unbias := func(c byte) int16 { return int16(c) - 0x80 }
	return Metrics{
		LeftSideBearing:  unbias(seg[0]),
		RightSideBearing: unbias(seg[1]),
		CharacterWidth:   unbias(seg[2]),
		Ascent:           unbias(seg[3]),
		Descent:          unbias(seg[4]),
	}, nil
}

// MetricsTable holds per-glyph metrics, in either the compressed or the
// uncompressed on-disk form. The ink-metrics table shares the layout.
type MetricsTable struct {
	tableBase
	Compressed bool
	Count      int
}

func newMetricsTable(rec TableRec, b binarySegm) *MetricsTable {
	t := &MetricsTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

// decode validates the format word and reads the glyph count. Individual
// metrics entries are read on demand by Metrics.
func (mt *MetricsTable) decode(ec *errorCollector) error {
	format, err := mt.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, mt.rec.Type, "format", "table too short for format word", mt.rec.Offset)
	}
	switch formatClass(format) {
	case formatCompressedMetrics:
		mt.Compressed = true
		n, err := mt.data.i16(4)
		if err != nil {
			return ec.fail(OutOfBounds, mt.rec.Type, "count", "table too short for metrics count", mt.rec.Offset)
		}
		mt.Count = int(n)
	case formatDefault:
		mt.Compressed = false
		n, err := mt.data.i32(4)
		if err != nil {
			return ec.fail(OutOfBounds, mt.rec.Type, "count", "table too short for metrics count", mt.rec.Offset)
		}
		mt.Count = int(n)
	default:
		return ec.fail(UnsupportedMetricsForm, mt.rec.Type, "format",
			fmt.Sprintf("metrics format class %#x not supported", formatClass(format)), mt.rec.Offset)
	}
	if mt.Count < 0 || mt.Count > MaxGlyphCount {
		return ec.fail(OutOfBounds, mt.rec.Type, "count",
			fmt.Sprintf("unreasonable metrics count %d", mt.Count), mt.rec.Offset)
	}
	tracer().Debugf("metrics table holds %d entries, compressed = %v", mt.Count, mt.Compressed)
	return nil
}

// Metrics returns the metrics of the glyph with the given index.
func (mt *MetricsTable) Metrics(gid GlyphIndex) (Metrics, error) {
	if int(gid) >= mt.Count {
		return Metrics{}, errBufferBounds
	}
	if mt.Compressed {
		return readCompressedMetrics(mt.data, compressedHeaderSize+int(gid)*compressedMetricsSize)
	}
	return readUncompressedMetrics(mt.data, uncompressedHeaderSize+int(gid)*uncompressedMetricsSize)
}
