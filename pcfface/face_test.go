package pcfface

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/pcfont/internal/testfont"
	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type FaceTestEnviron struct {
	suite.Suite
	face *Face
}

// listen for 'go test' command --> run test methods
func TestFaceAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	suite.Run(t, new(FaceTestEnviron))
}

// run once, before test suite methods
func (env *FaceTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.pcf").SetTraceLevel(tracing.LevelError)
	f, err := pcf.Parse(testfont.Reference())
	env.Require().NoError(err, "cannot decode the reference font")
	env.face = New(f)
	tracing.Select("font.pcf").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *FaceTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *FaceTestEnviron) TestFaceMetrics() {
	m := env.face.Metrics()
	env.Equal(fixed.I(12), m.Height, "expected a line height of 12 pixels")
	env.Equal(fixed.I(10), m.Ascent, "expected an ascent of 10 pixels")
	env.Equal(fixed.I(2), m.Descent, "expected a descent of 2 pixels")
	env.Equal(fixed.I(7), m.XHeight, "expected the top of 'x' 7 pixels above the baseline")
	env.Equal(fixed.I(7), m.CapHeight, "expected the top of 'X' 7 pixels above the baseline")
	env.Equal(image.Point{X: 0, Y: 1}, m.CaretSlope, "expected an upright caret")
}

func (env *FaceTestEnviron) TestGlyphPlacement() {
	dr, mask, maskp, advance, ok := env.face.Glyph(fixed.P(10, 20), 'A')
	env.Require().True(ok, "the reference font encodes 'A'")
	env.Equal(image.Rect(10, 11, 17, 20), dr, "glyph rect should sit on the baseline at the dot")
	env.Equal(image.Point{}, maskp, "mask should be read from its origin")
	env.Equal(fixed.I(8), advance, "expected an advance of 8 pixels")
	alpha, good := mask.(*image.Alpha)
	env.Require().True(good, "expected an alpha mask")
	env.Equal(image.Rect(0, 0, 7, 9), alpha.Bounds(), "expected a 7×9 mask")
	env.EqualValues(0xff, alpha.AlphaAt(3, 0).A, "top of 'A' should be inked")
	env.EqualValues(0, alpha.AlphaAt(0, 0).A, "corner of 'A' should be blank")
}

func (env *FaceTestEnviron) TestGlyphFallback() {
	dr, _, _, advance, ok := env.face.Glyph(fixed.P(10, 20), 'Ω')
	env.Require().True(ok, "unmapped runes substitute the default character")
	env.Equal(fixed.I(4), advance, "expected the space glyph's advance")
	env.True(dr.Empty(), "the space glyph has no pixels to draw")
}

func (env *FaceTestEnviron) TestGlyphBounds() {
	bounds, advance, ok := env.face.GlyphBounds('A')
	env.Require().True(ok)
	env.Equal(fixed.R(0, -9, 7, 0), bounds, "'A' spans 9 pixels above the baseline")
	env.Equal(fixed.I(8), advance)
}

func (env *FaceTestEnviron) TestGlyphAdvance() {
	advance, ok := env.face.GlyphAdvance('W')
	env.Require().True(ok)
	env.Equal(fixed.I(7), advance, "expected the filler glyph advance")
	advance, ok = env.face.GlyphAdvance('Ω')
	env.Require().True(ok, "unmapped runes substitute the default character")
	env.Equal(fixed.I(4), advance, "expected the space glyph's advance")
}

func (env *FaceTestEnviron) TestKern() {
	env.Equal(fixed.Int26_6(0), env.face.Kern('A', 'V'), "bitmap fonts carry no kerning")
}

// TestDrawString renders through font.Drawer, exercising the Face the
// way the image pipeline does.
func (env *FaceTestEnviron) TestDrawString() {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 16))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: env.face,
		Dot:  fixed.P(2, 12),
	}
	d.DrawString("A")
	env.EqualValues(0xff, dst.RGBAAt(5, 3).R, "apex of 'A' should be painted")
	env.EqualValues(0, dst.RGBAAt(2, 3).A, "blank glyph pixel should stay transparent")
	env.Equal(fixed.P(10, 12), d.Dot, "dot should advance by the glyph's device width")
}

// --- Descender geometry ----------------------------------------------------

func TestGlyphBelowBaseline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.pcf")
	defer teardown()
	m := testfont.MetricsSpec{LSB: -1, RSB: 4, Width: 5, Ascent: 4, Descent: 2}
	bin := testfont.Build([]testfont.GlyphSpec{
		{
			Code:    'g',
			Metrics: m,
			Rows: []string{
				"01111",
				"10001",
				"01111",
				"00001",
				"00001",
				"01110",
			},
		},
	}, testfont.Options{
		Accel: testfont.AccelSpec{FontAscent: 5, FontDescent: 2, Min: m, Max: m},
	})
	f, err := pcf.Parse(bin)
	if err != nil {
		t.Fatalf("cannot parse descender font: %v", err)
	}
	face := New(f)
	bounds, advance, ok := face.GlyphBounds('g')
	if !ok {
		t.Fatal("font should encode 'g'")
	}
	if bounds != fixed.R(-1, -4, 4, 2) {
		t.Errorf("unexpected bounds %v", bounds)
	}
	if advance != fixed.I(5) {
		t.Errorf("expected an advance of 5 pixels, got %v", advance)
	}
	dr, _, _, _, _ := face.Glyph(fixed.P(8, 8), 'g')
	if dr != image.Rect(7, 4, 12, 10) {
		t.Errorf("unexpected draw rect %v", dr)
	}
}
