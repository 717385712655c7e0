package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/pcfont/pcfembed"
	"github.com/npillmayer/pcfont/pcfface"
	"github.com/npillmayer/pcfont/pcfquery"
	"github.com/pterm/pterm"
)

func tablesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	f := intp.font.PCF
	data := [][]string{
		{"Table", "Format", "Size", "Offset"},
	}
	for _, typ := range f.TableTypes() {
		table := f.Table(typ)
		offset, size := table.Extent()
		data = append(data, []string{
			typ.String(),
			fmt.Sprintf("%#x", table.Format()),
			fmt.Sprintf("%d", size),
			fmt.Sprintf("%d", offset),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func infoOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	f := intp.font.PCF
	info := pcfquery.NameInfo(f)
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := [][]string{
		{"Property", "Value"},
	}
	for _, k := range keys {
		data = append(data, []string{k, info[k]})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	m := pcfquery.FontMetrics(f)
	pterm.Printf("ascent %d, descent %d, line height %d, max advance %d\n",
		m.Ascent, m.Descent, m.LineHeight, m.MaxAdvance)
	pterm.Printf("font bounding box %s\n", m.BBox)
	return nil, false
}

func accelOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	acc := intp.font.PCF.Accel
	flags := make([]string, 0, 6)
	if acc.NoOverlap {
		flags = append(flags, "NoOverlap")
	}
	if acc.ConstantMetrics {
		flags = append(flags, "ConstantMetrics")
	}
	if acc.TerminalFont {
		flags = append(flags, "TerminalFont")
	}
	if acc.ConstantWidth {
		flags = append(flags, "ConstantWidth")
	}
	if acc.InkInside {
		flags = append(flags, "InkInside")
	}
	if acc.InkMetrics {
		flags = append(flags, "InkMetrics")
	}
	if len(flags) == 0 {
		flags = append(flags, "-")
	}
	pterm.Printf("flags: %s\n", strings.Join(flags, "|"))
	pterm.Printf("ascent %d, descent %d, max overlap %d\n",
		acc.FontAscent, acc.FontDescent, acc.MaxOverlap)
	data := [][]string{
		{"Bounds", "LSB", "RSB", "Width", "Ascent", "Descent"},
		metricsRow("min", acc.MinBounds),
		metricsRow("max", acc.MaxBounds),
	}
	if acc.HasInkBounds {
		data = append(data, metricsRow("ink min", acc.InkMinBounds))
		data = append(data, metricsRow("ink max", acc.InkMaxBounds))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func metricsRow(label string, m pcf.Metrics) []string {
	return []string{
		label,
		fmt.Sprintf("%d", m.LeftSideBearing),
		fmt.Sprintf("%d", m.RightSideBearing),
		fmt.Sprintf("%d", m.CharacterWidth),
		fmt.Sprintf("%d", m.Ascent),
		fmt.Sprintf("%d", m.Descent),
	}
}

func encodingOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	f := intp.font.PCF
	enc := f.Enc
	pterm.Printf("byte 1 range %d…%d, byte 2 range %d…%d\n",
		enc.MinByte1, enc.MaxByte1, enc.MinByte2, enc.MaxByte2)
	pterm.Printf("%d code points encoded, default character %d\n",
		f.NumGlyphs(), enc.DefaultChar)
	if cm, ok := pcfquery.Charmap(f); ok {
		pterm.Printf("charset: %s\n", cm)
	} else {
		pterm.Println("charset: none (code points used as runes)")
	}
	return nil, false
}

func propsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	props := intp.font.PCF.Props
	if props == nil {
		pterm.Println("font has no properties table")
		return nil, false
	}
	data := [][]string{
		{"Property", "Value"},
	}
	for _, p := range props.Props {
		value := fmt.Sprintf("%d", p.IntValue)
		if p.IsString {
			value = p.StrValue
		}
		data = append(data, []string{p.Name, value})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	r, err := op.charArg()
	if err != nil {
		return err, false
	}
	f := intp.font.PCF
	cp, ok := pcfquery.CodePointForRune(f, r)
	if !ok {
		return fmt.Errorf("character %q has no code point in this font's charset", r), false
	}
	g := f.GlyphAt(cp)
	if g == nil {
		return fmt.Errorf("font does not encode %q (code point %d)", r, cp), false
	}
	name := pcfquery.GlyphName(f, g.Index)
	if name != "" {
		name = " " + name
	}
	pterm.Printf("glyph%s for %q: code point %d, index %d\n", name, r, g.CodePoint, g.Index)
	pterm.Printf("box %s, advance %d\n", g.Box, g.ShiftX)
	for _, row := range glyphArt(g) {
		pterm.Println(row)
	}
	return nil, false
}

// glyphArt renders a glyph bitmap as rows of '#' and '.'.
func glyphArt(g *pcf.Glyph) []string {
	rows := make([]string, 0, g.Box.Height)
	for y := 0; y < g.Box.Height; y++ {
		sb := strings.Builder{}
		for x := 0; x < g.Box.Width; x++ {
			if g.Pixel(x, y) {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func metricsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	r, err := op.charArg()
	if err != nil {
		return err, false
	}
	f := intp.font.PCF
	gid, ok := pcfquery.GlyphIndex(f, r)
	if !ok {
		return fmt.Errorf("font does not encode %q", r), false
	}
	m := pcfquery.GlyphMetrics(f, gid)
	data := [][]string{
		{"Advance", "LSB", "RSB", "Ascent", "Descent", "SWidth", "BBox"},
		{
			fmt.Sprintf("%d", m.Advance),
			fmt.Sprintf("%d", m.LSB),
			fmt.Sprintf("%d", m.RSB),
			fmt.Sprintf("%d", m.Ascent),
			fmt.Sprintf("%d", m.Descent),
			fmt.Sprintf("%d", m.SWidth),
			m.BBox.String(),
		},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// namesOp lists glyph names, or prints the name of one character's
// glyph when given an argument.
func namesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	f := intp.font.PCF
	if !op.noArg() {
		r, err := op.charArg()
		if err != nil {
			return err, false
		}
		gid, ok := pcfquery.GlyphIndex(f, r)
		if !ok {
			return fmt.Errorf("font does not encode %q", r), false
		}
		name := pcfquery.GlyphName(f, gid)
		if name == "" {
			pterm.Printf("font carries no name for glyph %d\n", gid)
			return nil, false
		}
		pterm.Printf("glyph %d is named %q\n", gid, name)
		return nil, false
	}
	if f.Names == nil {
		pterm.Println("font has no glyph names table")
		return nil, false
	}
	const maxRows = 24
	data := [][]string{
		{"Code", "Index", "Name"},
	}
	listed := 0
	for _, cp := range f.CodePoints() {
		g := f.GlyphAt(cp)
		name, ok := f.Names.Name(g.Index)
		if !ok {
			continue
		}
		if listed < maxRows {
			data = append(data, []string{
				fmt.Sprintf("%d", cp),
				fmt.Sprintf("%d", g.Index),
				name,
			})
		}
		listed++
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if listed > maxRows {
		pterm.Printf("… and %d more\n", listed-maxRows)
	}
	return nil, false
}

// emitOp writes the font as a Go source file holding an embeddable
// glyph store: emit:<file>:<pkg>.
func emitOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	path, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("emit needs a target file: emit:<file>:<pkg>"), false
	}
	store := pcfembed.Build(intp.font.PCF, nil)
	out, err := os.Create(path)
	if err != nil {
		return err, false
	}
	defer out.Close()
	if err = store.WriteGo(out, op.format, ""); err != nil {
		return err, false
	}
	pterm.Printf("wrote %d glyphs (%d bytes of bitmap data) to %s\n",
		len(store.Glyphs), len(store.Bits), path)
	return nil, false
}

// pngOp renders a line of text into a PNG file: png:<text>:<file>.
func pngOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	text, ok := op.hasArg()
	if !ok || op.format == "" {
		return fmt.Errorf("png needs text and a target file: png:<text>:<file>"), false
	}
	const margin = 4
	face := pcfface.New(intp.font.PCF)
	m := face.Metrics()
	width := font.MeasureString(face, text).Ceil() + 2*margin
	height := m.Ascent.Ceil() + m.Descent.Ceil() + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(margin, margin+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	out, err := os.Create(op.format)
	if err != nil {
		return err, false
	}
	defer out.Close()
	if err = png.Encode(out, img); err != nil {
		return err, false
	}
	pterm.Printf("rendered %q (%d×%d px) to %s\n", text, width, height, op.format)
	return nil, false
}
