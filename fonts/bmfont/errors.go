package bmfont

import (
	"errors"
	"fmt"
)

// ErrNoRecords is wrapped by the FormatError returned
// for a file without any glyph record.
var ErrNoRecords = errors.New("bmfont: no glyph record section")

// IOError is returned when a font description can't be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("bmfont: reading %s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports a malformed font description.
// Line is 1-based. Field names the record attribute at fault,
// and is empty for errors not tied to an attribute.
type FormatError struct {
	Line   int
	Field  string
	Reason string
	Err    error // optional cause
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bmfont: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("bmfont: line %d: field %s: %s", e.Line, e.Field, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DuplicateKey describes a definition found at Line and discarded
// because an earlier line already defined the same key.
// It is a warning : building a table never fails because of it.
type DuplicateKey struct {
	Line      int
	Codepoint rune

	// Kerning is true for kerning pairs, in which case
	// Codepoint is the first glyph of the pair.
	Kerning bool
	Second  rune
}

func (d DuplicateKey) Error() string {
	if d.Kerning {
		return fmt.Sprintf("bmfont: line %d: duplicate kerning pair (%d, %d) ignored", d.Line, d.Codepoint, d.Second)
	}
	return fmt.Sprintf("bmfont: line %d: duplicate glyph id %d ignored", d.Line, d.Codepoint)
}
