// Package canvas implements a CPU-side RGBA8888 pixel buffer and the
// rasterization primitives that draw into it.
//
// Every drawing call is bounds-checked per pixel: writes that fall outside
// the canvas are dropped. Drawing never fails and never allocates.
package canvas

import (
	"errors"
	"fmt"
	"math"
)

// MaxPixels bounds the size of a single canvas.
const MaxPixels = 64 << 20

// ErrAllocation reports that a pixel buffer could not be allocated.
var ErrAllocation = errors.New("canvas: failed to allocate pixel buffer")

// Mode selects how closed shapes are drawn.
type Mode uint8

const (
	// Outline draws only the shape boundary.
	Outline Mode = iota
	// Filled draws the boundary and everything inside it.
	Filled
)

func (m Mode) String() string {
	switch m {
	case Outline:
		return "outline"
	case Filled:
		return "filled"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Canvas is a width×height grid of packed colors stored row-major.
// Cell (x, y) lives at index y*width+x.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	pix    []uint32
	width  int
	height int
}

// New allocates a canvas. It returns an error wrapping ErrAllocation when the
// requested size is negative or too large to hold.
func New(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrAllocation, width, height)
	}
	if width != 0 && height > MaxPixels/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, MaxPixels)
	}
	return &Canvas{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}, nil
}

// Release drops the pixel buffer. It is safe to call more than once; after
// the first call the canvas has no cells and every draw call is a no-op.
func (c *Canvas) Release() {
	c.pix = nil
	c.width = 0
	c.height = 0
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels returns the live buffer. Each cell holds a Color as uint32.
func (c *Canvas) Pixels() []uint32 { return c.pix }

// Index maps (x, y) to a buffer index.
func (c *Canvas) Index(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return y*c.width + x, true
}

// At returns the color at (x, y), or 0 when (x, y) is out of bounds.
func (c *Canvas) At(x, y int) Color {
	i, ok := c.Index(x, y)
	if !ok {
		return 0
	}
	return Color(c.pix[i])
}

// Fill overwrites every cell with col.
func (c *Canvas) Fill(col Color) {
	v := uint32(col)
	for i := range c.pix {
		c.pix[i] = v
	}
}

func (c *Canvas) set(x, y int64, v uint32) {
	if x < 0 || x >= int64(c.width) || y < 0 || y >= int64(c.height) {
		return
	}
	c.pix[int(y)*c.width+int(x)] = v
}

// coordLimit is where cell coordinates saturate. Sums and differences of
// saturated coordinates stay well inside int64.
const coordLimit = 1 << 60

// cell converts a coordinate to a cell coordinate, saturating at
// ±coordLimit. It reports false for NaN and infinities.
func cell(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	f := math.Floor(v)
	switch {
	case f < -coordLimit:
		return -coordLimit, true
	case f > coordLimit:
		return coordLimit, true
	}
	return int64(f), true
}

func clamp(v, limit int64) int64 {
	return max(-limit, min(limit, v))
}
