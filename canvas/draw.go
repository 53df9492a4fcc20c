package canvas

import (
	"math"
	"math/bits"
	"sort"
)

// DrawPixel colors the cell containing (x, y).
func (c *Canvas) DrawPixel(x, y float64, col Color) {
	ix, ok0 := cell(x)
	iy, ok1 := cell(y)
	if !ok0 || !ok1 {
		return
	}
	c.set(ix, iy, uint32(col))
}

// DrawLine draws a one pixel wide segment between the cells containing
// (x0, y0) and (x1, y1) using Bresenham's algorithm. Both endpoints are drawn.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, col Color) {
	ix0, ok0 := cell(x0)
	iy0, ok1 := cell(y0)
	ix1, ok2 := cell(x1)
	iy1, ok3 := cell(y1)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return
	}
	c.line(ix0, iy0, ix1, iy1, uint32(col))
}

// line draws the cells Bresenham's error-term walk visits from (x0, y0) to
// (x1, y1): err = dx-dy, x advances while 2err >= -dy, y while 2err <= dx.
//
// That walk steps the major axis on every iteration and, after i major
// steps, sits at minor offset floor((2*minor*i + major) / (2*major)), so
// only the major-axis steps that land on the canvas are evaluated.
func (c *Canvas) line(x0, y0, x1, y1 int64, v uint32) {
	dx, sx := x1-x0, int64(1)
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y1-y0, int64(1)
	if dy < 0 {
		dy, sy = -dy, -1
	}

	if dx >= dy {
		lo, hi := steps(x0, sx, dx, c.width)
		for i := lo; i <= hi; i++ {
			c.set(x0+sx*i, y0+sy*offset(i, dx, dy), v)
		}
		return
	}
	lo, hi := steps(y0, sy, dy, c.height)
	for j := lo; j <= hi; j++ {
		c.set(x0+sx*offset(j, dy, dx), y0+sy*j, v)
	}
}

// steps returns the range of k in [0, n] for which start+dir*k lies in
// [0, size). The range is empty when lo > hi.
func steps(start, dir, n int64, size int) (lo, hi int64) {
	last := int64(size) - 1
	if dir > 0 {
		return max(0, -start), min(n, last-start)
	}
	return max(0, start-last), min(n, start)
}

// offset is the minor-axis offset after k major steps of a line spanning
// major×minor cells. The product is taken in 128 bits.
func offset(k, major, minor int64) int64 {
	if major == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(2*minor), uint64(k))
	lo, carry := bits.Add64(lo, uint64(major), 0)
	q, _ := bits.Div64(hi+carry, lo, uint64(2*major))
	return int64(q)
}

// DrawRect draws the w×h box whose top-left cell contains (x, y).
//
// In Filled mode the box covers [x, x+w) × [y, y+h). Nothing is drawn when
// the origin lies outside the canvas; otherwise the far edges are clamped.
// In Outline mode the four corner cells are joined by lines, clockwise from
// the top-left, and each pixel is clipped individually.
func (c *Canvas) DrawRect(x, y, w, h float64, col Color, mode Mode) {
	ix, ok0 := cell(x)
	iy, ok1 := cell(y)
	iw, ok2 := cell(w)
	ih, ok3 := cell(h)
	if !ok0 || !ok1 || !ok2 || !ok3 || iw <= 0 || ih <= 0 {
		return
	}
	v := uint32(col)

	if mode != Filled {
		right := ix + iw - 1
		bottom := iy + ih - 1
		c.line(ix, iy, right, iy, v)
		c.line(right, iy, right, bottom, v)
		c.line(right, bottom, ix, bottom, v)
		c.line(ix, bottom, ix, iy, v)
		return
	}

	if ix < 0 || ix >= int64(c.width) || iy < 0 || iy >= int64(c.height) {
		return
	}
	x0, y0 := int(ix), int(iy)
	x1 := int(min(ix+iw, int64(c.width)))
	y1 := int(min(iy+ih, int64(c.height)))
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.width : py*c.width+c.width]
		for px := x0; px < x1; px++ {
			row[px] = v
		}
	}
}

// circleLimit bounds circle centers and radii so that 4r² fits in an int64.
const circleLimit = 1 << 30

// DrawCircle draws the radius-r circle centered on the cell containing
// (cx, cy) with the midpoint algorithm. Filled mode also colors every cell
// inside the outline, one horizontal span per row.
func (c *Canvas) DrawCircle(cx, cy, r float64, col Color, mode Mode) {
	icx, ok0 := cell(cx)
	icy, ok1 := cell(cy)
	ir, ok2 := cell(r)
	if !ok0 || !ok1 || !ok2 || ir < 0 {
		return
	}
	icx, icy, ir = clamp(icx, circleLimit), clamp(icy, circleLimit), min(ir, circleLimit)
	v := uint32(col)
	if ir == 0 {
		c.set(icx, icy, v)
		return
	}

	a := arc{r: ir}
	last := a.last()
	if mode == Filled {
		c.disc(icx, icy, a, last, v)
		return
	}

	// Cells (cx±px, cy±py) need px within reach of the columns, cells
	// (cx±py, cy±px) need it within reach of the rows.
	for _, rr := range [2][2]int64{reach(icx, c.width), reach(icy, c.height)} {
		for px := rr[0]; px <= min(rr[1], last); px++ {
			py := a.row(px)
			c.set(icx+px, icy+py, v)
			c.set(icx-px, icy+py, v)
			c.set(icx+px, icy-py, v)
			c.set(icx-px, icy-py, v)
			c.set(icx+py, icy+px, v)
			c.set(icx-py, icy+px, v)
			c.set(icx+py, icy-px, v)
			c.set(icx-py, icy-px, v)
		}
	}
}

// disc fills the circle row by row. Row offset t is covered out to the
// widest px whose arc row is t, or out to row(t) when t is itself an arc
// column.
func (c *Canvas) disc(cx, cy int64, a arc, last int64, v uint32) {
	for y := 0; y < c.height; y++ {
		t := abs(int64(y) - cy)
		if t > a.r {
			continue
		}
		half := int64(-1)
		if t <= last {
			half = a.row(t)
		}
		p := int64(sort.Search(int(last)+1, func(i int) bool { return a.row(int64(i)) < t })) - 1
		if p >= 0 && a.row(p) == t {
			half = max(half, p)
		}
		if half >= 0 {
			c.span(cx-half, cx+half, y, v)
		}
	}
}

// arc is the first octant of the midpoint circle of radius r, the walk that
// starts at px=0, py=r, d=3-2r and ends once px passes py.
type arc struct{ r int64 }

// row returns py at column px: the largest q with (2q-1)² < 4r²-1-4px²,
// or -1 when there is none.
func (a arc) row(px int64) int64 {
	s := 4*a.r*a.r - 1 - 4*px*px
	if s <= 1 {
		return -1
	}
	return (isqrt(s-1) + 1) / 2
}

// last returns the final column of the walk.
func (a arc) last() int64 {
	return int64(sort.Search(int(a.r)+1, func(i int) bool { return int64(i) > a.row(int64(i)) })) - 1
}

// reach returns the smallest and largest distance from center to a cell in
// [0, size). The range is empty when size is 0.
func reach(center int64, size int) [2]int64 {
	last := int64(size) - 1
	if last < 0 {
		return [2]int64{1, 0}
	}
	var lo int64
	switch {
	case center < 0:
		lo = -center
	case center > last:
		lo = center - last
	}
	return [2]int64{lo, max(abs(center), abs(center-last))}
}

// DrawTriangle outlines the triangle with the given vertices.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 float64, col Color) {
	c.DrawLine(x0, y0, x1, y1, col)
	c.DrawLine(x1, y1, x2, y2, col)
	c.DrawLine(x2, y2, x0, y0, col)
}

// span colors row y from x0 to x1 inclusive.
func (c *Canvas) span(x0, x1 int64, y int, v uint32) {
	if y < 0 || y >= c.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, int64(c.width)-1)
	row := c.pix[y*c.width : y*c.width+c.width]
	for x := x0; x <= x1; x++ {
		row[x] = v
	}
}

func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
