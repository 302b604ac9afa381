// Package bmfont loads the glyph metrics of bitmap fonts described
// in the BMFont text format (.fnt files), as produced by AngelCode's
// Bitmap Font Generator, Hiero, FontBuilder, etc...
//
// A .fnt file pairs an atlas image with one line per glyph, giving
// the rectangle holding the glyph in the atlas and the offset to apply
// when placing it relative to the text cursor:
//
//	info face="Arial" size=32 bold=0 italic=0 charset="" unicode=1
//	common lineHeight=36 base=29 scaleW=256 scaleH=256 pages=1
//	page id=0 file="arial_0.png"
//	chars count=95
//	char id=65 x=0 y=0 width=20 height=23 xoffset=0 yoffset=6 xadvance=20 page=0 chnl=15
//	kernings count=1
//	kerning first=65 second=86 amount=-2
//
// The resulting GlyphTable is built once, then only read: it is safe
// for concurrent lookups. Decoding the atlas image and rendering glyphs
// are left to the caller.
package bmfont
