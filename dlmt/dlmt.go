// Provides parsing and serialization of Dalmatian (DLMT) media.
// A media is a plain text document with five sections :
// headers, views, tag descriptions, brushes and brushstrokes.
// Brushes are small paths drawn in their own coordinate system,
// placed on the page by brushstrokes.
// See package scene to compose the brushstrokes seen through a view,
// and package svgwrite to output them.
package dlmt

import (
	"errors"
	"fmt"
)

// ErrorMode sets how the parser reacts to unrecognized lines, which are
// never part of a valid record.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently drops the unrecognized lines.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode drops them and logs a warning.
	WarnErrorMode
	// StrictErrorMode rejects the document.
	StrictErrorMode
)

// ParseOptions tunes Parse and Read.
// The zero value is the lenient default.
type ParseOptions struct {
	ErrorMode ErrorMode
}

var (
	// ErrSection is returned when the section framing is not respected.
	ErrSection = errors.New("invalid section")
	// ErrMalformedRecord is returned for records with a wrong keyword or missing fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnsupportedHeader is returned for header keys outside of the supported set.
	ErrUnsupportedHeader = errors.New("unsupported header")
	// ErrUnsupportedCoordinateSystem is returned for coordinate systems other
	// than the canonical cartesian ones.
	ErrUnsupportedCoordinateSystem = errors.New("unsupported coordinate system")
	// ErrNoise is returned in StrictErrorMode for lines which are not records.
	ErrNoise = errors.New("unrecognized line")
)

// RecordError locates a fatal defect in a document.
type RecordError struct {
	Line int    // 1-based line number, 0 when parsing a single record
	Text string // the offending line
	Err  error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Text)
}

func (e *RecordError) Unwrap() error { return e.Err }

func malformed(line, detail string) error {
	return &RecordError{Text: line, Err: fmt.Errorf("%w: %s", ErrMalformedRecord, detail)}
}

func invalidField(line string, err error) error {
	return &RecordError{Text: line, Err: fmt.Errorf("%w: %w", ErrMalformedRecord, err)}
}

// fieldsOf tokenizes a record line starting with keyword, checking
// the keyword and the number of fields.
func fieldsOf(line, keyword string, n int) ([]string, error) {
	fields, ok := tokens(line, n)
	if len(fields) == 0 || fields[0] != keyword {
		return nil, malformed(line, "expected keyword "+keyword)
	}
	if !ok {
		return nil, malformed(line, fmt.Sprintf("expected %d fields", n))
	}
	return fields, nil
}
