// Command tinec-rect slides a red rectangle down the window, wrapping at
// the bottom edge.
package main

import (
	"fmt"

	"tinec/canvas"
	"tinec/hal"
	"tinec/internal/hud"
	"tinec/internal/runner"
	"tinec/tinec"
)

const (
	rectX = 100
	rectW = 90
	rectH = 80
)

func main() {
	runner.Main(runner.Config{Title: "Test Window", Width: 800, Height: 600, FPS: 60}, run)
}

func run(cfg runner.Config, open hal.Opener) error {
	c, err := tinec.Init(cfg.Title, cfg.Width, cfg.Height, open)
	if err != nil {
		return err
	}
	defer c.Deinit()

	overlay := hud.Overlay{X: 4, Y: 4, Color: canvas.White}
	y := 100
	return c.Loop(tinec.Pacing{FPS: cfg.FPS}, func(frame uint64) error {
		c.Fill(canvas.Black)
		c.DrawRect(rectX, float64(y), rectW, rectH, canvas.Red, canvas.Filled)
		if cfg.HUD {
			overlay.Draw(c, fmt.Sprintf("frame %d", frame), fmt.Sprintf("y %d", y))
		}
		y = nextY(y, c.Height())
		if cfg.Done(frame) {
			c.Stop()
		}
		return nil
	})
}

// nextY advances the rectangle one row, wrapping to the top once its
// origin leaves the canvas.
func nextY(y, height int) int {
	y++
	if y >= height {
		return 0
	}
	return y
}
