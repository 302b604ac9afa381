package bmfont

import (
	"strings"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/log"
	"golang.org/x/text/encoding/charmap"
)

// single byte charsets, as named by the Windows font API
var charsets = map[string]*charmap.Charmap{
	"ANSI":       charmap.Windows1252,
	"EASTEUROPE": charmap.Windows1250,
	"RUSSIAN":    charmap.Windows1251,
	"GREEK":      charmap.Windows1253,
	"TURKISH":    charmap.Windows1254,
	"HEBREW":     charmap.Windows1255,
	"ARABIC":     charmap.Windows1256,
	"BALTIC":     charmap.Windows1257,
	"VIETNAMESE": charmap.Windows1258,
	"THAI":       charmap.Windows874,
	"OEM":        charmap.CodePage437,
	"MAC":        charmap.Macintosh,
}

// charsetDecoder returns the mapping from glyph ids to Unicode
// described by `info`, or nil if ids are to be used as they are.
func charsetDecoder(info Info) func(id rune) rune {
	if info.Unicode {
		return nil
	}
	cm, ok := charsets[strings.ToUpper(info.Charset)]
	if !ok {
		log.Info.Printf("WARNING: bmfont: unsupported charset %q, glyph ids are kept\n", info.Charset)
		return nil
	}
	return func(id rune) rune {
		if id < 0 || id > 0xFF {
			return id
		}
		if r := cm.DecodeByte(byte(id)); r != utf8.RuneError {
			return r
		}
		return id
	}
}
