package bmfont

import "fmt"

// Options tunes how a font description is loaded.
// The zero value is ready to use.
type Options struct {
	// MaxLineLength, if positive, rejects lines longer
	// than this many bytes with a FormatError.
	MaxLineLength int

	// DecodeCharset maps glyph ids to Unicode code points when
	// the header declares a single byte charset with unicode=0.
	// By default, ids are used as they are.
	DecodeCharset bool
}

// DefaultOptions returns the options used by Build.
func DefaultOptions() Options {
	return Options{}
}

func (opts Options) checkLength(line string, lineNum int) error {
	if opts.MaxLineLength > 0 && len(line) > opts.MaxLineLength {
		return &FormatError{
			Line:   lineNum,
			Reason: fmt.Sprintf("line too long (%d bytes, limit is %d)", len(line), opts.MaxLineLength),
		}
	}
	return nil
}
