package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pcfont"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.pcf'
func tracer() tracing.Trace {
	return tracing.Select("font.pcf")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.font.pcf":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "PCF font file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)   // will set the correct level later
	pterm.Info.Println("Welcome to the PCF CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("pcf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to inspect, if provided by flag
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font *pcfont.BitmapFont
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "( no font )"
	}
	return fmt.Sprintf("( font=%s, %d glyphs )", intp.font.Fontname, intp.font.PCF.NumGlyphs())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TRACE
	LOAD
	TABLES
	INFO
	ACCEL
	ENCODING
	PROPS
	GLYPH
	METRICS
	NAMES
	EMIT
	PNG
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"trace":    TRACE,
	"load":     LOAD,
	"tables":   TABLES,
	"info":     INFO,
	"accel":    ACCEL,
	"encoding": ENCODING,
	"props":    PROPS,
	"glyph":    GLYPH,
	"metrics":  METRICS,
	"names":    NAMES,
	"emit":     EMIT,
	"png":      PNG,
}

var opNames = []string{
	"quit",
	"help",
	"trace",
	"load",
	"tables",
	"info",
	"accel",
	"encoding",
	"props",
	"glyph",
	"metrics",
	"names",
	"emit",
	"png",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].format = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "glyph:A" or "emit:font.go:mypkg" or "tables"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[command.op[i].code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TRACE:    traceOp,
	LOAD:     loadOp,
	TABLES:   tablesOp,
	INFO:     infoOp,
	ACCEL:    accelOp,
	ENCODING: encodingOp,
	PROPS:    propsOp,
	GLYPH:    glyphOp,
	METRICS:  metricsOp,
	NAMES:    namesOp,
	EMIT:     emitOp,
	PNG:      pngOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func traceOp(intp *Intp, op *Op) (error, bool) {
	switch op.arg {
	case "Debug", "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info", "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error", "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", op.arg), false
	}
	pterm.Printf("trace level is %s\n", op.arg)
	return nil, false
}

func loadOp(intp *Intp, op *Op) (error, bool) {
	path, ok := op.hasArg()
	if !ok {
		return errors.New("load needs a file path: load:<file>"), false
	}
	return intp.loadFont(path), false
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	intp.font, err = pcfont.LoadPCFFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return
	}
	tracer().Infof("loaded PCF font = %s", intp.font.Fontname)
	pterm.Printf("font tables: %v\n", intp.font.PCF.TableTypes())
	for _, w := range intp.font.PCF.Warnings() {
		pterm.Printf("decoder warning: %s\n", w)
	}
	return
}

// ----------------------------------------------------------------------

var ERR_NO_FONT = errors.New("no font loaded; use load:<file>")

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return ERR_NO_FONT
	}
	return nil
}

// charArg interprets a command argument as a character: a single rune,
// or a code point number like 65 or 0x41.
func (op *Op) charArg() (rune, error) {
	if op.arg == "" {
		return 0, fmt.Errorf("%s needs a character argument: %s:<char>",
			opNames[op.code], opNames[op.code])
	}
	if utf8.RuneCountInString(op.arg) == 1 {
		r, _ := utf8.DecodeRuneInString(op.arg)
		return r, nil
	}
	n, err := strconv.ParseUint(op.arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("not a character or code point: %s", op.arg)
	}
	return rune(n), nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	if op.arg == "" {
		return true
	}
	return false
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
