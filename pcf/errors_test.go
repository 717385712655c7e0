package pcf

import (
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		InvalidHeader:          "invalid header",
		MissingTable:           "missing table",
		UnsupportedFormat:      "unsupported format",
		UnsupportedEndianness:  "unsupported endianness",
		UnsupportedPadding:     "unsupported padding",
		UnsupportedMetricsForm: "unsupported metrics form",
		OutOfBounds:            "out of bounds",
		InvalidGeometry:        "invalid geometry",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("expected kind %d to print as %q, got %q", kind, want, kind.String())
		}
	}
	if ErrorKind(99).String() != "unknown" {
		t.Error("unknown kinds should print as such")
	}
}

func TestFontErrorRendering(t *testing.T) {
	e := FontError{
		Kind:     UnsupportedPadding,
		Table:    TypeBitmaps,
		Section:  "format",
		Issue:    "glyph padding class 0 not supported",
		Severity: SeverityCritical,
		Offset:   512,
	}
	msg := e.Error()
	for _, part := range []string{"CRITICAL", "unsupported padding", "bitmaps/format", "offset 512"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q should mention %q", msg, part)
		}
	}
	e.Table = 0
	e.Offset = 0
	msg = e.Error()
	if strings.Contains(msg, "offset") || strings.Contains(msg, "/") {
		t.Errorf("error message %q should omit table and offset here", msg)
	}
}

func TestFontWarningRendering(t *testing.T) {
	w := FontWarning{Table: TypeMetrics, Issue: "count mismatch", Offset: 4}
	if !strings.Contains(w.String(), "WARNING") || !strings.Contains(w.String(), "metrics") {
		t.Errorf("unexpected warning rendering %q", w.String())
	}
}

func TestErrorCollector(t *testing.T) {
	ec := &errorCollector{}
	if ec.hasErrors() {
		t.Error("a fresh collector has no errors")
	}
	err := ec.fail(OutOfBounds, TypeBitmaps, "sizes", "table too short", 0)
	if err == nil || !ec.hasErrors() {
		t.Error("fail should record and return the error")
	}
	ec.addWarning(TypeMetrics, "count mismatch", 0)
	if len(ec.warnings) != 1 {
		t.Errorf("expected one warning, got %d", len(ec.warnings))
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityCritical.String() != "CRITICAL" || SeverityMajor.String() != "MAJOR" ||
		SeverityMinor.String() != "MINOR" {
		t.Error("unexpected severity rendering")
	}
}
