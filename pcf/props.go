package pcf

import "fmt"

// Property is one entry of the properties table: the compiled form of a
// BDF property. A property value is either a string or an int32.
type Property struct {
	Name     string
	StrValue string
	IntValue int32
	IsString bool
}

func (p Property) String() string {
	if p.IsString {
		return fmt.Sprintf("%s: %q", p.Name, p.StrValue)
	}
	return fmt.Sprintf("%s: %d", p.Name, p.IntValue)
}

// PropertiesTable carries the font's BDF properties: family and weight
// names, charset registry, design sizes and the like.
type PropertiesTable struct {
	tableBase
	Props []Property

	byName map[string]int
}

func newPropertiesTable(rec TableRec, b binarySegm) *PropertiesTable {
	t := &PropertiesTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

func (pt *PropertiesTable) decode(ec *errorCollector) error {
	format, err := pt.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, pt.rec.Type, "format", "table too short for format word", pt.rec.Offset)
	}
	if formatClass(format) != formatDefault {
		return ec.fail(UnsupportedFormat, pt.rec.Type, "format",
			fmt.Sprintf("properties format class %#x not supported", formatClass(format)), pt.rec.Offset)
	}
	n, err := pt.data.i32(4)
	if err != nil {
		return ec.fail(OutOfBounds, pt.rec.Type, "count", "table too short for property count", pt.rec.Offset)
	}
	if n < 0 || n > MaxPropertyCount {
		return ec.fail(OutOfBounds, pt.rec.Type, "count",
			fmt.Sprintf("unreasonable property count %d", n), pt.rec.Offset)
	}
	// Property records are 9 bytes each; the record block is padded so
	// that the string pool size starts 32-bit aligned.
	const recSize = 9
	recsAt := 8
	pad := 0
	if r := (recsAt + recSize*int(n)) % 4; r != 0 {
		pad = 4 - r
	}
	poolSizeAt := recsAt + recSize*int(n) + pad
	poolSize, err := pt.data.i32(poolSizeAt)
	if err != nil || poolSize < 0 {
		return ec.fail(OutOfBounds, pt.rec.Type, "string pool", "table too short for string pool size", pt.rec.Offset)
	}
	pool, err := pt.data.view(poolSizeAt+4, int(poolSize))
	if err != nil && poolSize > 0 {
		return ec.fail(OutOfBounds, pt.rec.Type, "string pool", "table too short for string pool", pt.rec.Offset)
	}
	pt.Props = make([]Property, 0, n)
	pt.byName = make(map[string]int, n)
	for i := 0; i < int(n); i++ {
		at := recsAt + recSize*i
		nameOff, err := pt.data.i32(at)
		if err != nil {
			return ec.fail(OutOfBounds, pt.rec.Type, "property record", "table too short for property record", pt.rec.Offset)
		}
		isString, _ := pt.data.u8(at + 4)
		value, err := pt.data.i32(at + 5)
		if err != nil {
			return ec.fail(OutOfBounds, pt.rec.Type, "property record", "table too short for property record", pt.rec.Offset)
		}
		var p Property
		if p.Name, err = pool.cstring(int(nameOff)); err != nil {
			return ec.fail(OutOfBounds, pt.rec.Type, "property name",
				fmt.Sprintf("name offset %d outside string pool", nameOff), pt.rec.Offset)
		}
		if isString != 0 {
			p.IsString = true
			if p.StrValue, err = pool.cstring(int(value)); err != nil {
				return ec.fail(OutOfBounds, pt.rec.Type, "property value",
					fmt.Sprintf("value offset %d outside string pool", value), pt.rec.Offset)
			}
		} else {
			p.IntValue = value
		}
		pt.byName[p.Name] = len(pt.Props)
		pt.Props = append(pt.Props, p)
	}
	tracer().Debugf("properties: %d entries", len(pt.Props))
	return nil
}

// Lookup returns the property with the given name, if present.
func (pt *PropertiesTable) Lookup(name string) (Property, bool) {
	if pt == nil {
		return Property{}, false
	}
	if i, ok := pt.byName[name]; ok {
		return pt.Props[i], true
	}
	return Property{}, false
}

// --- Scalable widths ---------------------------------------------------

// SWidthsTable stores per-glyph scalable widths in millipoints, relating
// the bitmap font back to the outline design it was generated from.
type SWidthsTable struct {
	tableBase
	Widths []int32
}

func newSWidthsTable(rec TableRec, b binarySegm) *SWidthsTable {
	t := &SWidthsTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

func (st *SWidthsTable) decode(ec *errorCollector) error {
	format, err := st.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, st.rec.Type, "format", "table too short for format word", st.rec.Offset)
	}
	if formatClass(format) != formatDefault {
		return ec.fail(UnsupportedFormat, st.rec.Type, "format",
			fmt.Sprintf("swidths format class %#x not supported", formatClass(format)), st.rec.Offset)
	}
	n, err := st.data.i32(4)
	if err != nil {
		return ec.fail(OutOfBounds, st.rec.Type, "count", "table too short for swidth count", st.rec.Offset)
	}
	if n < 0 || n > MaxGlyphCount {
		return ec.fail(OutOfBounds, st.rec.Type, "count",
			fmt.Sprintf("unreasonable swidth count %d", n), st.rec.Offset)
	}
	st.Widths = make([]int32, n)
	for i := range st.Widths {
		if st.Widths[i], err = st.data.i32(8 + 4*i); err != nil {
			return ec.fail(OutOfBounds, st.rec.Type, "swidths", "table too short for swidth array", st.rec.Offset)
		}
	}
	return nil
}

// SWidth returns the scalable width of the glyph with the given index.
func (st *SWidthsTable) SWidth(gid GlyphIndex) (int32, bool) {
	if st == nil || int(gid) >= len(st.Widths) {
		return 0, false
	}
	return st.Widths[gid], true
}

// --- Glyph names -------------------------------------------------------

// GlyphNamesTable stores the PostScript-style name of every glyph.
type GlyphNamesTable struct {
	tableBase
	Names []string
}

func newGlyphNamesTable(rec TableRec, b binarySegm) *GlyphNamesTable {
	t := &GlyphNamesTable{}
	t.tableBase = tableBase{data: b, rec: rec}
	t.self = t
	return t
}

func (gt *GlyphNamesTable) decode(ec *errorCollector) error {
	format, err := gt.data.u32LE(0)
	if err != nil {
		return ec.fail(OutOfBounds, gt.rec.Type, "format", "table too short for format word", gt.rec.Offset)
	}
	if formatClass(format) != formatDefault {
		return ec.fail(UnsupportedFormat, gt.rec.Type, "format",
			fmt.Sprintf("glyph names format class %#x not supported", formatClass(format)), gt.rec.Offset)
	}
	n, err := gt.data.i32(4)
	if err != nil {
		return ec.fail(OutOfBounds, gt.rec.Type, "count", "table too short for name count", gt.rec.Offset)
	}
	if n < 0 || n > MaxGlyphCount {
		return ec.fail(OutOfBounds, gt.rec.Type, "count",
			fmt.Sprintf("unreasonable name count %d", n), gt.rec.Offset)
	}
	poolSizeAt := 8 + 4*int(n)
	poolSize, err := gt.data.i32(poolSizeAt)
	if err != nil || poolSize < 0 {
		return ec.fail(OutOfBounds, gt.rec.Type, "string pool", "table too short for string pool size", gt.rec.Offset)
	}
	pool, err := gt.data.view(poolSizeAt+4, int(poolSize))
	if err != nil && poolSize > 0 {
		return ec.fail(OutOfBounds, gt.rec.Type, "string pool", "table too short for string pool", gt.rec.Offset)
	}
	gt.Names = make([]string, n)
	for i := range gt.Names {
		off, err := gt.data.i32(8 + 4*i)
		if err != nil {
			return ec.fail(OutOfBounds, gt.rec.Type, "name offsets", "table too short for name offsets", gt.rec.Offset)
		}
		if gt.Names[i], err = pool.cstring(int(off)); err != nil {
			return ec.fail(OutOfBounds, gt.rec.Type, "name",
				fmt.Sprintf("name offset %d outside string pool", off), gt.rec.Offset)
		}
	}
	return nil
}

// Name returns the name of the glyph with the given index.
func (gt *GlyphNamesTable) Name(gid GlyphIndex) (string, bool) {
	if gt == nil || int(gid) >= len(gt.Names) {
		return "", false
	}
	return gt.Names[gid], true
}
