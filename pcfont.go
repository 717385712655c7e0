/*
Package pcfont handles X11 bitmap fonts in the PCF format.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfont

import (
	"github.com/npillmayer/pcfont/pcf"
)

// FromBinary decodes raw PCF bytes and returns a decoded font.
//
// The input is expected to contain a complete PCF stream, not wrapped in
// gzip (".pcf.gz" files need to be inflated by the caller first). It
// must not change after decoding for the font to be usable.
func FromBinary(data []byte) (*pcf.Font, error) {
	return pcf.Parse(data)
}

// FamilyName extracts family and weight names from a font's properties
// table.
//
// Returned values are empty if the font carries no properties table or
// no matching properties.
func FamilyName(f *pcf.Font) (family, weight string) {
	if f == nil || f.Props == nil {
		return
	}
	if p, ok := f.Props.Lookup("FAMILY_NAME"); ok && p.IsString {
		family = p.StrValue
	}
	if p, ok := f.Props.Lookup("WEIGHT_NAME"); ok && p.IsString {
		weight = p.StrValue
	}
	return
}
