package pcf

import "fmt"

// ErrorKind classifies decoding failures. Every error returned by Parse
// wraps exactly one kind; clients match with errors.As on FontError and
// compare kinds.
type ErrorKind int

const (
	// InvalidHeader indicates that the file does not start with the PCF
	// magic bytes, or that the header itself is malformed.
	InvalidHeader ErrorKind = iota + 1
	// MissingTable indicates that a table required for glyph decoding is
	// not present in the table directory.
	MissingTable
	// UnsupportedFormat indicates a table format class other than the one
	// required for that table.
	UnsupportedFormat
	// UnsupportedEndianness indicates an accelerator table without the
	// big-endian byte-order bit.
	UnsupportedEndianness
	// UnsupportedPadding indicates a bitmap table whose rows are not
	// padded to 32-bit words.
	UnsupportedPadding
	// UnsupportedMetricsForm indicates a metrics table format class that
	// is neither the default nor the compressed form.
	UnsupportedMetricsForm
	// OutOfBounds indicates a read past the end of the input or of a
	// table segment.
	OutOfBounds
	// InvalidGeometry indicates per-glyph metrics yielding a negative
	// bitmap width or height.
	InvalidGeometry
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidHeader:
		return "invalid header"
	case MissingTable:
		return "missing table"
	case UnsupportedFormat:
		return "unsupported format"
	case UnsupportedEndianness:
		return "unsupported endianness"
	case UnsupportedPadding:
		return "unsupported padding"
	case UnsupportedMetricsForm:
		return "unsupported metrics form"
	case OutOfBounds:
		return "out of bounds"
	case InvalidGeometry:
		return "invalid geometry"
	default:
		return "unknown"
	}
}

// ErrorSeverity represents the severity level of a font decoding error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable or unreliable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during font decoding.
// Decoding stops at the first critical error; the caller receives either
// a fully decoded Font or a FontError, never both.
type FontError struct {
	Kind     ErrorKind     // Classification of the failure
	Table    TableType     // The PCF table where the error occurred (0 if outside any table)
	Section  string        // Specific section within the table (e.g., "format", "glyph 65")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	where := e.Section
	if e.Table != 0 {
		where = e.Table.String() + "/" + e.Section
	}
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s: %s at offset %d: %s", e.Severity, e.Kind, where, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", e.Severity, e.Kind, where, e.Issue)
}

// FontWarning represents a non-critical observation made during font
// decoding. Warnings indicate oddities but do not prevent font usage.
type FontWarning struct {
	Table  TableType // The PCF table where the warning occurred
	Issue  string    // Human-readable description of the warning
	Offset uint32    // Byte offset where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates errors and warnings during font decoding.
// This is an internal helper used by the decoder to collect issues as they are discovered.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

// fail records a decoding error and returns it, so call sites can record
// and return in one step.
func (ec *errorCollector) fail(kind ErrorKind, table TableType, section, issue string, offset uint32) error {
	e := FontError{
		Kind:     kind,
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: SeverityCritical,
		Offset:   offset,
	}
	ec.errors = append(ec.errors, e)
	return e
}

// addWarning records a decoding warning.
func (ec *errorCollector) addWarning(table TableType, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

// hasErrors returns true if any errors have been recorded.
func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}
