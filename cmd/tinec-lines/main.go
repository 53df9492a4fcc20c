// Command tinec-lines spins a fan of lines around the window center inside
// an outlined frame.
package main

import (
	"fmt"
	"math"
	"time"

	"tinec/canvas"
	"tinec/hal"
	"tinec/internal/hud"
	"tinec/internal/runner"
	"tinec/tinec"
)

const (
	spokes = 24
	margin = 20
	// Radians per frame.
	spin = math.Pi / 240
)

var palette = []canvas.Color{canvas.Red, canvas.Green, canvas.Blue, canvas.White}

func main() {
	runner.Main(runner.Config{Title: "Lines", Width: 640, Height: 480, FPS: 60}, run)
}

func run(cfg runner.Config, open hal.Opener) error {
	c, err := tinec.Init(cfg.Title, cfg.Width, cfg.Height, open)
	if err != nil {
		return err
	}
	defer c.Deinit()

	var fps hud.FPS
	overlay := hud.Overlay{X: margin + 4, Y: margin + 2, Color: canvas.White}
	return c.Loop(tinec.Pacing{FPS: cfg.FPS}, func(frame uint64) error {
		c.Fill(canvas.Black)
		drawFrame(c.Canvas, frame)
		if cfg.HUD {
			fps.Tick(time.Now())
			overlay.Draw(c, fps.String(), fmt.Sprintf("frame %d", frame))
		}
		if cfg.Done(frame) {
			c.Stop()
		}
		return nil
	})
}

func drawFrame(c *canvas.Canvas, frame uint64) {
	w, h := float64(c.Width()), float64(c.Height())
	c.DrawRect(margin, margin, w-2*margin, h-2*margin, canvas.White, canvas.Outline)

	cx, cy := w/2, h/2
	r := math.Min(w, h)/2 - 2*margin
	angle := float64(frame) * spin
	for i := 0; i < spokes; i++ {
		x0, y0, x1, y1 := spoke(cx, cy, r, angle+float64(i)*2*math.Pi/spokes)
		c.DrawLine(x0, y0, x1, y1, palette[i%len(palette)])
	}

	// Marker triangle at the tip of the first spoke.
	_, _, tx, ty := spoke(cx, cy, r, angle)
	c.DrawTriangle(tx-6, ty-6, tx+6, ty-6, tx, ty+6, canvas.Green)
}

// spoke returns a segment from the center out to radius r at angle a.
func spoke(cx, cy, r, a float64) (x0, y0, x1, y1 float64) {
	return cx, cy, cx + r*math.Cos(a), cy + r*math.Sin(a)
}
