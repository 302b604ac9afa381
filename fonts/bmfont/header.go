package bmfont

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/log"
)

// recordTag starts every glyph record line.
const recordTag = "char"

// Info is the descriptive header of a font file.
// It is informative only : glyph lookups never depend on it.
type Info struct {
	Face         string
	Size         int // negative when the size matches the glyph height
	Bold, Italic bool
	Charset      string
	Unicode      bool // false when ids are codes in Charset

	LineHeight     int
	Base           int // distance from the top of a line to the baseline
	ScaleW, ScaleH int // atlas size
	Pages          []Page
}

// Page is one atlas image of the font.
type Page struct {
	ID   int
	File string
}

// isRecordMarker returns true if line is a glyph record, that is
// if it starts with the whole word "char". The summary line
// "chars count=..." is not a record.
func isRecordMarker(line string) bool {
	if len(line) <= len(recordTag) || line[:len(recordTag)] != recordTag {
		return false
	}
	return isSpace(line[len(recordTag)])
}

// scanHeader walks the header lines, up to the first glyph record,
// whose index is returned. Known header lines are decoded on the way.
func scanHeader(lines []string, opts Options) (int, Info, error) {
	info := Info{Unicode: true}
	for i, line := range lines {
		if err := opts.checkLength(line, i+1); err != nil {
			return 0, Info{}, err
		}
		if isRecordMarker(line) {
			log.Parse.Printf("bmfont: glyph records start at line %d\n", i+1)
			return i, info, nil
		}
		info.decodeLine(line, i+1)
	}
	return 0, Info{}, &FormatError{Line: len(lines), Reason: "no glyph record section", Err: ErrNoRecords}
}

// decodeLine fills the header fields found in line.
// Unknown tags and invalid attributes are skipped.
func (info *Info) decodeLine(line string, lineNum int) {
	tag, attrs := splitAttributes(line)
	switch tag {
	case "info", "common", "page":
	default:
		return
	}

	var page Page
	for _, attr := range attrs {
		var err error
		switch tag + "." + attr.key {
		case "info.face":
			info.Face = attr.value
		case "info.size":
			info.Size, err = parseDecimal(attr.value)
		case "info.bold":
			info.Bold, err = parseFlag(attr.value)
		case "info.italic":
			info.Italic, err = parseFlag(attr.value)
		case "info.charset":
			info.Charset = attr.value
		case "info.unicode":
			info.Unicode, err = parseFlag(attr.value)
		case "common.lineHeight":
			info.LineHeight, err = parseDecimal(attr.value)
		case "common.base":
			info.Base, err = parseDecimal(attr.value)
		case "common.scaleW":
			info.ScaleW, err = parseDecimal(attr.value)
		case "common.scaleH":
			info.ScaleH, err = parseDecimal(attr.value)
		case "page.id":
			page.ID, err = parseDecimal(attr.value)
		case "page.file":
			page.File = attr.value
		}
		if err != nil {
			log.Info.Printf("WARNING: bmfont: line %d: ignoring %s %s=%q: %s\n", lineNum, tag, attr.key, attr.value, err)
		}
	}
	if tag == "page" {
		info.Pages = append(info.Pages, page)
	}
}

func parseFlag(s string) (bool, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return false, err
	}
	if v != 0 && v != 1 {
		return false, fmt.Errorf("invalid flag %d", v)
	}
	return v == 1, nil
}

type attribute struct {
	key, value string
}

// splitAttributes returns the first word of line and the key=value pairs
// following it. Values may be double-quoted to hold spaces. A word without
// '=' is returned as a key with an empty value.
func splitAttributes(line string) (tag string, attrs []attribute) {
	i := skipSpaces(line, 0)
	end := skipWord(line, i)
	tag = line[i:end]
	for i = skipSpaces(line, end); i < len(line); i = skipSpaces(line, i) {
		start := i
		for i < len(line) && line[i] != '=' && !isSpace(line[i]) {
			i++
		}
		attr := attribute{key: line[start:i]}
		if i < len(line) && line[i] == '=' {
			i++
			if i < len(line) && line[i] == '"' {
				i++
				start = i
				for i < len(line) && line[i] != '"' {
					i++
				}
				attr.value = line[start:i]
				if i < len(line) { // closing quote
					i++
				}
			} else {
				start = i
				i = skipWord(line, i)
				attr.value = line[start:i]
			}
		}
		attrs = append(attrs, attr)
	}
	return tag, attrs
}

func firstWord(s string) string {
	start := skipSpaces(s, 0)
	return s[start:skipWord(s, start)]
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func skipWord(s string, i int) int {
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return i
}
