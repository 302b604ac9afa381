package main

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/bmfont/fonts/bmfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlyphs(t *testing.T) {
	out, err := parseGlyphs("A,€,66,1000")
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', '€', 66, 1000}, out)

	out, err = parseGlyphs("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = parseGlyphs("AB")
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	table, err := bmfont.Build("../../fonts/bmfont/test/simple.fnt")
	require.NoError(t, err)
	defer table.Destroy()

	var buf bytes.Buffer
	printTable(&buf, table, []rune{'A', 'C'})
	s := buf.String()
	assert.Contains(t, s, `face: "x"`)
	assert.Contains(t, s, "glyphs: 2")
	assert.Contains(t, s, "'A' (65) box: (0,0)-(8,8) offset: (0,0)")
	assert.Contains(t, s, "'C' (67) missing")

	buf.Reset()
	printTable(&buf, table, nil)
	assert.Contains(t, buf.String(), "'B' (66) box: (8,0)-(16,8)")
}
