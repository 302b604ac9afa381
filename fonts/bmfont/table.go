package bmfont

import (
	"fmt"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/log"
)

type kernPair struct {
	first, second rune
}

// GlyphTable maps code points to the metrics of their glyph.
//
// A table is never modified once built, so it may be shared by
// concurrent readers, as long as Destroy is not called concurrently.
type GlyphTable struct {
	glyphs     map[rune]GlyphMetrics
	kerns      map[kernPair]int
	info       Info
	duplicates []DuplicateKey
}

// Build loads the BMFont description at `path`, using the default options.
// It returns an *IOError if the file can't be read and a *FormatError if
// its content is malformed. No table is returned on error.
func Build(path string) (*GlyphTable, error) {
	return BuildWith(OSSource{}, path, DefaultOptions())
}

// BuildWith is the same as Build, but reads the file from `src`.
func BuildWith(src Source, path string, opts Options) (*GlyphTable, error) {
	data, err := src.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	log.Parse.Printf("bmfont: loading %s (%d bytes)\n", path, len(data))
	return Parse(data, opts)
}

// Parse builds a table from the content of a .fnt file.
func Parse(data []byte, opts Options) (*GlyphTable, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)

	start, info, err := scanHeader(lines, opts)
	if err != nil {
		return nil, err
	}

	b := builder{
		table: &GlyphTable{
			glyphs: make(map[rune]GlyphMetrics),
			kerns:  make(map[kernPair]int),
			info:   info,
		},
	}
	if opts.DecodeCharset {
		b.decodeID = charsetDecoder(info)
	}
	for i := start; i < len(lines); i++ {
		if err := opts.checkLength(lines[i], i+1); err != nil {
			return nil, err
		}
		if err := b.addLine(lines[i], i+1); err != nil {
			return nil, err
		}
	}

	log.Parse.Printf("bmfont: %d glyphs, %d kerning pairs, %d duplicates\n",
		len(b.table.glyphs), len(b.table.kerns), len(b.table.duplicates))
	return b.table, nil
}

// builder accumulates the records of one file
type builder struct {
	table    *GlyphTable
	decodeID func(rune) rune // optional
}

func (b *builder) addLine(line string, lineNum int) error {
	switch firstWord(line) {
	case "": // blank line
		return nil
	case "kernings": // summary
		return nil
	case "kerning":
		pair, amount, err := parseKerning(line, lineNum)
		if err != nil {
			return err
		}
		b.addKerning(pair, amount, lineNum)
		return nil
	}

	id, metrics, err := parseRecord(line, lineNum)
	if err != nil {
		return err
	}
	b.addGlyph(id, metrics, lineNum)
	return nil
}

func (b *builder) addGlyph(id rune, metrics GlyphMetrics, lineNum int) {
	if b.decodeID != nil {
		id = b.decodeID(id)
	}
	if _, has := b.table.glyphs[id]; has {
		dup := DuplicateKey{Line: lineNum, Codepoint: id}
		log.Info.Printf("WARNING: %s\n", dup)
		b.table.duplicates = append(b.table.duplicates, dup)
		return
	}
	b.table.glyphs[id] = metrics
}

func (b *builder) addKerning(pair kernPair, amount int, lineNum int) {
	if b.decodeID != nil {
		pair.first, pair.second = b.decodeID(pair.first), b.decodeID(pair.second)
	}
	if _, has := b.table.kerns[pair]; has {
		dup := DuplicateKey{Line: lineNum, Codepoint: pair.first, Kerning: true, Second: pair.second}
		log.Info.Printf("WARNING: %s\n", dup)
		b.table.duplicates = append(b.table.duplicates, dup)
		return
	}
	b.table.kerns[pair] = amount
}

// Lookup returns the metrics of the glyph for `cp`.
// The boolean is false if the font has no such glyph,
// which is expected for partial fonts : the caller may
// then use a fallback glyph.
func (t *GlyphTable) Lookup(cp rune) (GlyphMetrics, bool) {
	if t == nil {
		return GlyphMetrics{}, false
	}
	m, ok := t.glyphs[cp]
	return m, ok
}

// Kerning returns the horizontal adjustment, in pixels, to apply
// between `first` and `second`. It is most often negative.
func (t *GlyphTable) Kerning(first, second rune) (int, bool) {
	if t == nil {
		return 0, false
	}
	amount, ok := t.kerns[kernPair{first: first, second: second}]
	return amount, ok
}

// Len returns the number of glyphs.
func (t *GlyphTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.glyphs)
}

// Codepoints returns the code points defined by the font, sorted.
func (t *GlyphTable) Codepoints() []rune {
	if t == nil {
		return nil
	}
	out := make([]rune, 0, len(t.glyphs))
	for cp := range t.glyphs {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Each calls `fn` for every glyph, by increasing code point.
func (t *GlyphTable) Each(fn func(cp rune, m GlyphMetrics)) {
	for _, cp := range t.Codepoints() {
		fn(cp, t.glyphs[cp])
	}
}

// Info returns the header of the font file.
func (t *GlyphTable) Info() Info {
	if t == nil {
		return Info{}
	}
	return t.info
}

// Duplicates returns the definitions discarded while building the table,
// in file order.
func (t *GlyphTable) Duplicates() []DuplicateKey {
	if t == nil {
		return nil
	}
	return append([]DuplicateKey(nil), t.duplicates...)
}

// Destroy releases the content of the table.
// The table must not be used afterwards: lookups
// would only report missing glyphs.
// Calling Destroy again has no effect.
func (t *GlyphTable) Destroy() {
	if t == nil {
		return
	}
	t.glyphs = nil
	t.kerns = nil
	t.duplicates = nil
	t.info = Info{}
}

func (t *GlyphTable) String() string {
	return fmt.Sprintf("GlyphTable{%q, %d glyphs}", t.Info().Face, t.Len())
}
