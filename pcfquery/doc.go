/*
Package pcfquery provides query functions on PCF fonts.

The functions in this package answer questions of clients which want to
stay agnostic about the binary structure of PCF tables: font-wide and
per-glyph metrics, BDF property lookup, and the mapping between runes
and the font's character codes. Fonts compiled from legacy charsets
(ISO 8859 and friends) do not encode Unicode code points; the charset
routines translate using the font's CHARSET_REGISTRY and
CHARSET_ENCODING properties.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}
