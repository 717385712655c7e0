package pcfquery

import (
	"testing"

	"github.com/npillmayer/pcfont/internal/testfont"
	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	font *pcf.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.pcf").SetTraceLevel(tracing.LevelError)
	f, err := pcf.Parse(testfont.Reference())
	env.Require().NoError(err, "cannot decode the reference font")
	env.font = f
	tracing.Select("font.pcf").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestFontTypeInfo() {
	env.Equal("PCF", FontType(env.font), "expected font type of test font to be PCF")
	env.Equal("", FontType(nil), "expected no font type for a nil font")
}

func (env *QueryTestEnviron) TestNameInfo() {
	info := NameInfo(env.font)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font family identifier not found in font info")
	env.Equal("Testface", fam, "expected font family name 'Testface'")
	env.Equal("Testface Medium", info["fullname"], "expected full name to combine family and weight")
	env.Equal("ISO8859", info["registry"], "expected charset registry ISO8859")
	env.Equal("12", info["pixelsize"], "expected pixel size 12")
}

func (env *QueryTestEnviron) TestFontMetricsInfo() {
	m := FontMetrics(env.font)
	env.Equal(int32(10), m.Ascent, "expected font ascent 10")
	env.Equal(int32(2), m.Descent, "expected font descent 2")
	env.Equal(12, m.LineHeight, "expected line height 12")
	env.Equal(int16(11), m.MaxAdvance, "expected max advance 11")
	env.Equal(int32(1), m.MaxOverlap, "expected max overlap 1")
	env.Equal(pcf.BoundingBox{Width: 12, Height: 12, X: -1, Y: -3}, m.BBox,
		"expected the aggregated font box")
}

func (env *QueryTestEnviron) TestGlyphIndexLookup() {
	gid, ok := GlyphIndex(env.font, 'A')
	env.Require().True(ok, "expected 'A' to be encoded")
	env.Equal(pcf.GlyphIndex(35), gid, "expected glyph index 35 for 'A'")
	_, ok = GlyphIndex(env.font, '☃')
	env.False(ok, "the snowman should not be encoded")
}

func (env *QueryTestEnviron) TestReverseLookup() {
	cp, ok := CodePointForGlyph(env.font, 35)
	env.Require().True(ok, "expected glyph 35 to be encoded")
	env.Equal(pcf.CodePoint('A'), cp, "expected code point of glyph 35 to be 'A'")
	_, ok = CodePointForGlyph(env.font, 999)
	env.False(ok, "glyph 999 does not exist")
}

func (env *QueryTestEnviron) TestGlyphMetricsInfo() {
	m := GlyphMetrics(env.font, 35)
	env.Equal(int16(8), m.Advance, "expected advance 8 for glyph 35")
	env.Equal(int16(0), m.LSB, "expected left side bearing 0")
	env.Equal(int16(7), m.RSB, "expected right side bearing 7")
	env.Equal(int16(9), m.Ascent, "expected ascent 9")
	env.Equal(int32(515), m.SWidth, "expected scalable width 515")
	env.Equal(pcf.BoundingBox{Width: 7, Height: 9, X: 0, Y: 0}, m.BBox, "expected a 7×9 box")
	env.Zero(GlyphMetrics(env.font, 999).Advance, "metrics of a non-existing glyph are zero")
}

func (env *QueryTestEnviron) TestGlyphNameLookup() {
	env.Equal("uni0041", GlyphName(env.font, 35), "expected glyph 35 to be named uni0041")
	env.Equal("", GlyphName(env.font, 999), "glyph 999 has no name")
}

func (env *QueryTestEnviron) TestCharmapLookup() {
	cm, ok := Charmap(env.font)
	env.Require().True(ok, "expected a character map for ISO8859-1")
	b, ok := cm.EncodeRune('Ä')
	env.Require().True(ok, "expected 'Ä' to be Latin-1 encodable")
	env.Equal(byte(0xC4), b, "expected 'Ä' at Latin-1 position 0xC4")
}

func (env *QueryTestEnviron) TestCodePointTranslation() {
	cp, ok := CodePointForRune(env.font, 'Ä')
	env.Require().True(ok, "expected 'Ä' to translate")
	env.Equal(pcf.CodePoint(0xC4), cp, "expected character code 0xC4 for 'Ä'")
	r, ok := RuneForCodePoint(env.font, 0xC4)
	env.Require().True(ok, "expected character code 0xC4 to translate back")
	env.Equal('Ä', r, "expected rune 'Ä' for character code 0xC4")
	_, ok = CodePointForRune(env.font, 'Ą')
	env.False(ok, "'Ą' is not Latin-1 encodable")
	_, ok = RuneForCodePoint(env.font, 0x100)
	env.False(ok, "single-byte charsets end at 255")
}

// Fonts without charset properties use their character codes as code
// points directly.
func (env *QueryTestEnviron) TestIdentityCharset() {
	f, err := pcf.Parse(testfont.Build(testfont.ReferenceGlyphs(),
		testfont.Options{Accel: testfont.ReferenceAccel()}))
	env.Require().NoError(err)
	_, ok := Charmap(f)
	env.False(ok, "a font without properties has no character map")
	cp, ok := CodePointForRune(f, 'A')
	env.Require().True(ok)
	env.Equal(pcf.CodePoint(0x41), cp, "expected the identity translation")
	_, ok = RuneForCodePoint(f, 0xD800)
	env.False(ok, "surrogate code points translate to no rune")
	_, ok = CodePointForRune(f, 0x10000)
	env.False(ok, "runes beyond 0xFFFF are not encodable")
}
