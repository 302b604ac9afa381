package bmfont

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// attributes of a glyph record, in file order
var recordFields = [...]string{"id", "x", "y", "width", "height", "xoffset", "yoffset"}

// attributes of a kerning line, in file order
var kerningFields = [...]string{"first", "second", "amount"}

var errNoDigits = errors.New("no digits")

// parseRecord decodes a glyph record. Its first token is the record tag
// and is not checked; attributes after "yoffset" are ignored.
// lineNum is only used to report errors.
func parseRecord(line string, lineNum int) (rune, GlyphMetrics, error) {
	var values [len(recordFields)]int
	err := readIntFields(strings.Fields(line), recordFields[:], values[:], lineNum)
	if err != nil {
		return 0, GlyphMetrics{}, err
	}
	m := GlyphMetrics{
		Position: Point{X: values[1], Y: values[2]},
		Size:     Size{Width: values[3], Height: values[4]},
		Offset:   Point{X: values[5], Y: values[6]},
	}
	return rune(values[0]), m, nil
}

// parseKerning decodes a "kerning first=.. second=.. amount=.." line.
func parseKerning(line string, lineNum int) (kernPair, int, error) {
	var values [len(kerningFields)]int
	err := readIntFields(strings.Fields(line), kerningFields[:], values[:], lineNum)
	if err != nil {
		return kernPair{}, 0, err
	}
	return kernPair{first: rune(values[0]), second: rune(values[1])}, values[2], nil
}

// readIntFields decodes the key=value tokens following the tag (tokens[0]),
// checking that the keys match `fields`.
func readIntFields(tokens []string, fields []string, values []int, lineNum int) error {
	for i, field := range fields {
		v, err := readIntToken(tokens, i+1, field, lineNum)
		if err != nil {
			return err
		}
		values[i] = v
	}
	return nil
}

// safely try to read one token; returns an error
// if it's not found
func readToken(tokens []string, index int, field string, lineNum int) (string, error) {
	if index >= len(tokens) {
		return "", &FormatError{
			Line:   lineNum,
			Field:  field,
			Reason: fmt.Sprintf("missing attribute (expected %d tokens, got %d)", index+1, len(tokens)),
		}
	}
	return tokens[index], nil
}

func readIntToken(tokens []string, index int, field string, lineNum int) (int, error) {
	tok, err := readToken(tokens, index, field, lineNum)
	if err != nil {
		return 0, err
	}
	eq := strings.IndexByte(tok, '=')
	if eq < 0 {
		return 0, &FormatError{Line: lineNum, Field: field, Reason: fmt.Sprintf("invalid key=value pair %q", tok)}
	}
	if key := tok[:eq]; key != field {
		return 0, &FormatError{Line: lineNum, Field: field, Reason: fmt.Sprintf("unexpected attribute %q", key)}
	}
	v, err := parseDecimal(tok[eq+1:])
	if err != nil {
		return 0, &FormatError{Line: lineNum, Field: field, Reason: fmt.Sprintf("invalid integer %q", tok[eq+1:]), Err: err}
	}
	return v, nil
}

// parseDecimal reads the signed base 10 integer starting s : an optional
// sign followed by digits, up to the first non digit. At least one digit
// is required, and the value must fit in 32 bits.
func parseDecimal(s string) (int, error) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, errNoDigits
	}
	v, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
