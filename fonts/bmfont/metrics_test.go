package bmfont

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestGlyphBoxes(t *testing.T) {
	m := GlyphMetrics{
		Position: Point{X: 10, Y: 14},
		Size:     Size{Width: 9, Height: 12},
		Offset:   Point{X: -1, Y: 3},
	}
	assert.Equal(t, image.Rect(10, 14, 19, 26), m.Src())

	dot := fixed.Point26_6{X: fixed.I(100), Y: fixed.I(40)}
	assert.Equal(t, image.Rect(99, 43, 108, 55), m.Dst(dot))

	// 100.75 rounds to 101
	dot.X += 48
	assert.Equal(t, image.Rect(100, 43, 109, 55), m.Dst(dot))
}
