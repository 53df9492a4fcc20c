package main

import "tinec/canvas"

type ball struct {
	x, y   float64
	vx, vy float64
	r      float64
	color  canvas.Color
	mode   canvas.Mode
}

func newBalls(width, height int) []ball {
	w, h := float64(width), float64(height)
	return []ball{
		{x: w / 4, y: h / 3, vx: 3, vy: 2, r: 40, color: canvas.Red, mode: canvas.Outline},
		{x: w / 2, y: h / 2, vx: -2, vy: 3, r: 30, color: canvas.Green, mode: canvas.Filled},
		{x: 3 * w / 4, y: 2 * h / 3, vx: 4, vy: -3, r: 20, color: canvas.Blue, mode: canvas.Filled},
		{x: w / 3, y: 3 * h / 4, vx: -3, vy: -4, r: 50, color: canvas.White, mode: canvas.Outline},
	}
}

// step moves the ball and reflects it off the edges of a w×h area so the
// whole circle stays visible.
func (b *ball) step(w, h float64) {
	b.x += b.vx
	b.y += b.vy
	if b.x-b.r < 0 {
		b.x = b.r
		b.vx = -b.vx
	} else if b.x+b.r > w-1 {
		b.x = w - 1 - b.r
		b.vx = -b.vx
	}
	if b.y-b.r < 0 {
		b.y = b.r
		b.vy = -b.vy
	} else if b.y+b.r > h-1 {
		b.y = h - 1 - b.r
		b.vy = -b.vy
	}
}
