package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "table", "tables", "format":
		pterm.Info.Println("PCF file structure")
		pterm.Println(`
	A PCF file starts with a little-endian table directory:
	+-------+-------------+
	| magic | table count |
	+-------+--------+------+--------+
	| type  | format | size | offset |
	+-------+--------+------+--------+
	| ...                            |
	+--------------------------------+
	Table bodies repeat their format word and store their
	fields big-endian. The format word's upper bits select a
	table class (ink bounds, compressed metrics), the lower
	bits carry padding, byte order and bit order.

	tables       list the directory of the loaded font
	`)
	case "glyph", "coords", "metrics":
		pterm.Info.Println("Glyph coordinates")
		pterm.Println(`
	Glyph boxes are baseline-relative with Y growing upward:

	          +--------------+   ascent
	          |   ###        |
	          |  #   #       |
	   origin +--#####-------+-- baseline
	          |  #   #       |   descent
	          +--------------+
	          lsb        rsb

	A box prints as WIDTHxHEIGHT+X+Y with (X, Y) the lower
	left corner. The advance (device width) moves the origin
	to the next glyph; it is independent of the box.

	glyph:<char>     dump a glyph bitmap as ASCII art
	metrics:<char>   show a glyph's metric values
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load:<file>          load a PCF font
	tables               table directory of the loaded font
	info                 names, charset and font-wide metrics
	accel                accelerator values
	encoding             encoding ranges and charset
	props                all BDF properties
	glyph:<char>         glyph bitmap as ASCII art
	metrics:<char>       metric values of one glyph
	names                glyph names (names:<char> for one glyph)
	emit:<file>:<pkg>    write the font as embeddable Go source
	png:<text>:<file>    render a line of text to a PNG image
	trace:<level>        set trace level [Debug|Info|Error]
	help:<topic>         this text, or details on tables|glyph
	quit                 leave (also <ctrl>D)
	`)
	}
}
