package pcfembed

import (
	"bufio"
	"fmt"
	"io"
)

// bytesPerLine for the emitted bitmap stream literal.
const bytesPerLine = 12

// WriteGo writes the store as a compilable Go source file declaring a
// single package-level variable. pkg defaults to "main" and ident to
// "Font" when empty. The emitted file imports this package for the
// Store and Glyph types, so renderers link against the accessors
// rather than re-implementing the bit layout.
func (s *Store) WriteGo(w io.Writer, pkg, ident string) error {
	if pkg == "" {
		pkg = "main"
	}
	if ident == "" {
		ident = "Font"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by pcfembed. DO NOT EDIT.\n")
	if s.Name != "" {
		fmt.Fprintf(bw, "//\n// Font %q, %d glyphs.\n", s.Name, len(s.Glyphs))
	}
	fmt.Fprintf(bw, "\npackage %s\n\n", pkg)
	fmt.Fprintf(bw, "import (\n\t\"image\"\n\n\t\"github.com/npillmayer/pcfont/pcfembed\"\n)\n\n")
	fmt.Fprintf(bw, "var %s = &pcfembed.Store{\n", ident)
	fmt.Fprintf(bw, "\tName:        %q,\n", s.Name)
	fmt.Fprintf(bw, "\tReplacement: %d,\n", s.Replacement)
	fmt.Fprintf(bw, "\tLineHeight:  %d,\n", s.LineHeight)
	fmt.Fprintf(bw, "\tGlyphs: []pcfembed.Glyph{\n")
	for _, g := range s.Glyphs {
		fmt.Fprintf(bw, "\t\t{Character: %q, Bounds: image.Rect(%d, %d, %d, %d), DeviceWidth: %d, StartIndex: %d},\n",
			g.Character, g.Bounds.Min.X, g.Bounds.Min.Y, g.Bounds.Max.X, g.Bounds.Max.Y,
			g.DeviceWidth, g.StartIndex)
	}
	fmt.Fprintf(bw, "\t},\n")
	fmt.Fprintf(bw, "\tBits: []byte{\n")
	for i, b := range s.Bits {
		if i%bytesPerLine == 0 {
			fmt.Fprintf(bw, "\t\t")
		}
		fmt.Fprintf(bw, "0x%02x,", b)
		if i%bytesPerLine == bytesPerLine-1 || i == len(s.Bits)-1 {
			fmt.Fprintf(bw, "\n")
		} else {
			fmt.Fprintf(bw, " ")
		}
	}
	fmt.Fprintf(bw, "\t},\n")
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}
