package pcfquery

import (
	"strconv"

	"github.com/npillmayer/pcfont/pcf"
)

// FontType returns the container format of a font. PCF is the only
// format this package handles, so the answer is "PCF" for every decoded
// font.
func FontType(f *pcf.Font) string {
	if f == nil {
		return ""
	}
	return "PCF"
}

// NameInfo collects identifying information of a font from its BDF
// properties. Keys are "family", "subfamily", "fullname", "foundry",
// "copyright", "registry", "encoding", "pixelsize" and "pointsize";
// absent properties leave their key out. The point size property counts
// in tenths of a point, following BDF.
func NameInfo(f *pcf.Font) map[string]string {
	info := make(map[string]string)
	if f == nil || f.Props == nil {
		return info
	}
	strProps := map[string]string{
		"FAMILY_NAME":      "family",
		"WEIGHT_NAME":      "subfamily",
		"FOUNDRY":          "foundry",
		"COPYRIGHT":        "copyright",
		"CHARSET_REGISTRY": "registry",
		"CHARSET_ENCODING": "encoding",
	}
	for prop, key := range strProps {
		if p, ok := f.Props.Lookup(prop); ok && p.IsString {
			info[key] = p.StrValue
		}
	}
	intProps := map[string]string{
		"PIXEL_SIZE": "pixelsize",
		"POINT_SIZE": "pointsize",
	}
	for prop, key := range intProps {
		if p, ok := f.Props.Lookup(prop); ok && !p.IsString {
			info[key] = strconv.Itoa(int(p.IntValue))
		}
	}
	if family, ok := info["family"]; ok {
		info["fullname"] = family
		if sub, ok := info["subfamily"]; ok {
			info["fullname"] = family + " " + sub
		}
	}
	tracer().Debugf("name info with %d entries", len(info))
	return info
}
