package pcfquery

import (
	"strings"

	"github.com/npillmayer/pcfont/pcf"
	"golang.org/x/text/encoding/charmap"
)

// iso8859 maps CHARSET_ENCODING values of the ISO 8859 registry to
// character maps. Parts 11 and 12 were never completed.
var iso8859 = map[string]*charmap.Charmap{
	"1":  charmap.ISO8859_1,
	"2":  charmap.ISO8859_2,
	"3":  charmap.ISO8859_3,
	"4":  charmap.ISO8859_4,
	"5":  charmap.ISO8859_5,
	"6":  charmap.ISO8859_6,
	"7":  charmap.ISO8859_7,
	"8":  charmap.ISO8859_8,
	"9":  charmap.ISO8859_9,
	"10": charmap.ISO8859_10,
	"13": charmap.ISO8859_13,
	"14": charmap.ISO8859_14,
	"15": charmap.ISO8859_15,
	"16": charmap.ISO8859_16,
}

// Charmap resolves the font's CHARSET_REGISTRY and CHARSET_ENCODING
// properties to a character map. The boolean is false for fonts without
// charset properties, for the ISO 10646 (Unicode) registry, and for
// registries this package does not know; character codes of such fonts
// are used as code points directly.
func Charmap(f *pcf.Font) (*charmap.Charmap, bool) {
	if f == nil || f.Props == nil {
		return nil, false
	}
	registry, ok := f.Props.Lookup("CHARSET_REGISTRY")
	if !ok || !registry.IsString {
		return nil, false
	}
	encoding, ok := f.Props.Lookup("CHARSET_ENCODING")
	if !ok || !encoding.IsString {
		return nil, false
	}
	switch {
	case strings.EqualFold(registry.StrValue, "ISO8859"):
		if cm, ok := iso8859[encoding.StrValue]; ok {
			return cm, true
		}
	case strings.EqualFold(registry.StrValue, "KOI8"):
		switch strings.ToUpper(encoding.StrValue) {
		case "R":
			return charmap.KOI8R, true
		case "U":
			return charmap.KOI8U, true
		}
	}
	tracer().Debugf("no character map for charset %s-%s", registry.StrValue, encoding.StrValue)
	return nil, false
}

// CodePointForRune translates a rune to the character code the font
// encodes it under. Without a known character map the rune value itself
// is the character code.
func CodePointForRune(f *pcf.Font, r rune) (pcf.CodePoint, bool) {
	if cm, ok := Charmap(f); ok {
		b, ok := cm.EncodeRune(r)
		if !ok {
			return 0, false
		}
		return pcf.CodePoint(b), true
	}
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	return pcf.CodePoint(r), true
}

// RuneForCodePoint translates a character code of the font to a rune.
// Single-byte charsets answer false for codes above 255.
func RuneForCodePoint(f *pcf.Font, cp pcf.CodePoint) (rune, bool) {
	if cm, ok := Charmap(f); ok {
		if cp > 0xFF {
			return 0, false
		}
		return cm.DecodeByte(byte(cp)), true
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return 0, false
	}
	return rune(cp), true
}
