package bmfont

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRecordMarker(t *testing.T) {
	for line, expected := range map[string]bool{
		"char id=65 x=0":  true,
		"char\tid=65 x=0": true,
		"chars count=95":  false,
		"char":            false,
		"charid=65":       false,
		" char id=65":     false,
		"kerning first=1": false,
		"":                false,
	} {
		assert.Equal(t, expected, isRecordMarker(line), line)
	}
}

func TestScanHeader(t *testing.T) {
	lines := []string{
		`info face="DejaVu Sans Mono" size=-16 bold=1 italic=0 charset="ANSI" unicode=0 padding=0,0,0,0`,
		`common lineHeight=19 base=15 scaleW=128 scaleH=64 pages=2`,
		`page id=0 file="dejavu_0.png"`,
		`page id=1 file="dejavu 1.png"`,
		``,
		`chars count=1`,
		`char id=65 x=0 y=14 width=9 height=12 xoffset=0 yoffset=3`,
	}
	start, info, err := scanHeader(lines, Options{})
	require.NoError(t, err)
	assert.Equal(t, 6, start)
	assert.Equal(t, Info{
		Face:       "DejaVu Sans Mono",
		Size:       -16,
		Bold:       true,
		Charset:    "ANSI",
		LineHeight: 19,
		Base:       15,
		ScaleW:     128,
		ScaleH:     64,
		Pages:      []Page{{ID: 0, File: "dejavu_0.png"}, {ID: 1, File: "dejavu 1.png"}},
	}, info)
}

func TestScanHeaderLenient(t *testing.T) {
	lines := []string{
		`info face="Broken size=abc bold=2`,
		`common lineHeight=x base=15`,
		`char id=65 x=0 y=14 width=9 height=12 xoffset=0 yoffset=3`,
	}
	start, info, err := scanHeader(lines, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, "Broken size=abc bold=2", info.Face) // unterminated quote
	assert.Equal(t, 15, info.Base)
	assert.Equal(t, 0, info.LineHeight)
	assert.True(t, info.Unicode) // default
}

func TestScanHeaderNoRecords(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{"info face=\"x\""},
		{"info face=\"x\"", "common lineHeight=16", "chars count=0", "kernings count=0", ""},
	} {
		_, _, err := scanHeader(lines, Options{})
		var ferr *FormatError
		require.True(t, errors.As(err, &ferr))
		assert.Equal(t, len(lines), ferr.Line)
		assert.True(t, errors.Is(err, ErrNoRecords))
	}
}

func TestSplitAttributes(t *testing.T) {
	tag, attrs := splitAttributes(`  page id=0   file="my font.png" flag x=`)
	assert.Equal(t, "page", tag)
	assert.Equal(t, []attribute{
		{"id", "0"},
		{"file", "my font.png"},
		{"flag", ""},
		{"x", ""},
	}, attrs)

	tag, attrs = splitAttributes("")
	assert.Equal(t, "", tag)
	assert.Empty(t, attrs)
}
