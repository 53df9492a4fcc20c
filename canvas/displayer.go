package canvas

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Size implements drivers.Displayer. Dimensions beyond int16 are saturated.
func (c *Canvas) Size() (x, y int16) {
	return sat16(c.width), sat16(c.height)
}

// SetPixel implements drivers.Displayer so tinyfont and tinydraw style
// renderers can write into the canvas.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int64(x), int64(y), uint32(FromRGBA(col)))
}

// Display implements drivers.Displayer. A bare canvas has nothing to flush;
// presenting is done by the owner of the display bridge.
func (c *Canvas) Display() error { return nil }

func sat16(v int) int16 {
	if v > 0x7fff {
		return 0x7fff
	}
	return int16(v)
}
