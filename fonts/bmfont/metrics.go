package bmfont

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Point is a pixel coordinate, or a displacement.
type Point struct {
	X, Y int
}

// Size is a pixel extent.
type Size struct {
	Width, Height int
}

// GlyphMetrics locates a glyph in the atlas image.
type GlyphMetrics struct {
	// Position is the top-left corner of the glyph box in the atlas.
	Position Point
	Size     Size
	// Offset is the displacement from the text cursor
	// to the top-left corner of the rendered box.
	Offset Point
}

// Src returns the glyph box, in atlas pixels.
func (m GlyphMetrics) Src() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: m.Position.X, Y: m.Position.Y},
		Max: image.Point{X: m.Position.X + m.Size.Width, Y: m.Position.Y + m.Size.Height},
	}
}

// Dst returns the box covered by the glyph when drawn
// with the cursor at `dot`, which is first rounded to the nearest pixel.
func (m GlyphMetrics) Dst(dot fixed.Point26_6) image.Rectangle {
	x := dot.X.Round() + m.Offset.X
	y := dot.Y.Round() + m.Offset.Y
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + m.Size.Width, Y: y + m.Size.Height},
	}
}
