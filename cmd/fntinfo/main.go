// This tool loads a BMFont description (.fnt) and prints
// its header and glyph metrics.
package main

import (
	"errors"
	"flag"
	"io"
	stdlog "log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/bmfont/fonts/bmfont"
	"github.com/pdfcpu/pdfcpu/pkg/log"
	"golang.org/x/exp/errors/fmt"
)

func check(err error) {
	if err != nil {
		fmt.Println("fatal error", err)
		os.Exit(1)
	}
}

func main() {
	glyphs := flag.String("glyph", "", "comma separated glyphs to print, as characters or decimal code points (default: all)")
	maxLine := flag.Int("max-line", 0, "maximum line length in bytes (0 for no limit)")
	charset := flag.Bool("charset", false, "map glyph ids of non Unicode fonts to Unicode")
	verbose := flag.Bool("v", false, "trace parsing")
	flag.Parse()

	log.SetInfoLogger(stdlog.New(os.Stderr, "INFO: ", stdlog.Ltime))
	if *verbose {
		log.SetParseLogger(stdlog.New(os.Stderr, "PARSE: ", stdlog.Ltime))
	}

	if flag.NArg() != 1 {
		check(errors.New("usage: fntinfo [flags] file.fnt"))
	}
	query, err := parseGlyphs(*glyphs)
	check(err)

	opts := bmfont.Options{MaxLineLength: *maxLine, DecodeCharset: *charset}
	table, err := bmfont.BuildWith(bmfont.OSSource{}, flag.Arg(0), opts)
	check(err)
	defer table.Destroy()

	printTable(os.Stdout, table, query)
}

// parseGlyphs decodes the -glyph flag. A single character stands for
// itself, anything longer is read as a decimal code point.
func parseGlyphs(arg string) ([]rune, error) {
	if arg == "" {
		return nil, nil
	}
	var out []rune
	for _, s := range strings.Split(arg, ",") {
		if utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			out = append(out, r)
			continue
		}
		cp, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid glyph %q", s)
		}
		out = append(out, rune(cp))
	}
	return out, nil
}

// printTable writes the content of `table`; only the glyphs in `query`
// are listed, unless it is empty.
func printTable(w io.Writer, table *bmfont.GlyphTable, query []rune) {
	info := table.Info()
	fmt.Fprintf(w, "face: %q size: %d bold: %t italic: %t\n", info.Face, info.Size, info.Bold, info.Italic)
	fmt.Fprintf(w, "line height: %d base: %d atlas: %dx%d\n", info.LineHeight, info.Base, info.ScaleW, info.ScaleH)
	for _, page := range info.Pages {
		fmt.Fprintf(w, "page %d: %s\n", page.ID, page.File)
	}
	fmt.Fprintf(w, "glyphs: %d\n", table.Len())
	for _, dup := range table.Duplicates() {
		fmt.Fprintln(w, "  ", dup)
	}

	if len(query) == 0 {
		table.Each(func(cp rune, m bmfont.GlyphMetrics) { printGlyph(w, cp, m) })
		return
	}
	for _, cp := range query {
		m, ok := table.Lookup(cp)
		if !ok {
			fmt.Fprintf(w, "%q (%d) missing\n", cp, cp)
			continue
		}
		printGlyph(w, cp, m)
	}
}

func printGlyph(w io.Writer, cp rune, m bmfont.GlyphMetrics) {
	fmt.Fprintf(w, "%q (%d) box: %v offset: (%d,%d)\n", cp, cp, m.Src(), m.Offset.X, m.Offset.Y)
}
