/*
Package pcfont is for bitmap typeface and font handling.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Terminus".

▪︎ A "bitmap font" is a variant of a typeface with a certain weight and
slant, pre-rendered at one fixed pixel size. An example is
"Terminus medium 12px". PCF files store exactly one such font.

▪︎ A "glyph" is the bitmap image a font carries for a character code,
together with the metrics needed to place it on a baseline.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

# Status

Does not yet inflate gzip'd font files (*.pcf.gz), as commonly shipped
by X11 distributions; clients have to decompress those themselves.

# Links

The PCF format described:
https://fontforge.org/docs/techref/pcf-format.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pcfont

import (
	"os"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}

// BitmapFont is an internal representation of a fixed-size pixel font of
// type PCF.
type BitmapFont struct {
	Fontname string
	Filepath string    // file path
	Binary   []byte    // raw data
	PCF      *pcf.Font // the decoded font structure
}

// LoadPCFFont loads a PCF font from a file.
func LoadPCFFont(fontfile string) (*BitmapFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParsePCFFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParsePCFFont decodes a PCF font from memory.
func ParsePCFFont(fbytes []byte) (f *BitmapFont, err error) {
	f = &BitmapFont{Binary: fbytes}
	f.PCF, err = pcf.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if family, weight := FamilyName(f.PCF); family != "" {
		f.Fontname = family
		if weight != "" {
			f.Fontname = family + " " + weight
		}
		tracer().Debugf("loaded and decoded PCF font %s", f.Fontname)
	}
	return
}
