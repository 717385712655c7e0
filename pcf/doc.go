/*
Package pcf decodes X11 PCF (Portable Compiled Font) files.
Intended audience for this package are:

▪︎ embedded and retro-style UIs that blit 1-bit glyph bitmaps directly

▪︎ tools that embed bitmap fonts into applications as static data

▪︎ any application needing the internal structure of a PCF font file
available, and possibly extending the methods of package `pcf` by
handling additional font tables

A PCF file is a little-endian table directory followed by a handful of
big-endian tables: accelerators, metrics, bitmaps, encodings, and a few
optional ones (properties, scalable widths, glyph names, ink metrics).
Package `pcf` decodes the directory and the tables it knows about, then
assembles one glyph per encoded code point: a byte-per-pixel bitmap plus
metrics. The resulting Font is immutable and safe for concurrent readers.

Package `pcf` does not rasterize, scale, or shape. Consumers that need
to draw decoded glyphs through the standard image pipeline may use the
sister package `pcfface`; consumers that want glyphs as static program
data may use `pcfembed`.

# Status

Only the common on-disk encoding is interpreted: big-endian table
bodies with rows padded to 32-bit words and most-significant bit first.
Fonts written with exotic format modifiers are rejected with a typed
error rather than decoded wrongly.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcf

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}
