package canvas

import "image/color"

// Color is a packed 32-bit RGBA8888 value laid out 0xRRGGBBAA.
type Color uint32

const (
	Red   Color = 0xff0000ff
	Green Color = 0x00ff00ff
	Blue  Color = 0x0000ffff
	Black Color = 0x000000ff
	White Color = 0xffffffff
)

// Pack builds a Color from its components.
func Pack(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromRGBA packs c without any alpha conversion.
func FromRGBA(c color.RGBA) Color {
	return Pack(c.R, c.G, c.B, c.A)
}

// Components unpacks c.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA returns the same four bytes as a color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b, a := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color. The packed value is not premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Components()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}
