// Command tinec-circles bounces outlined and filled circles around the window.
package main

import (
	"fmt"

	"tinec/canvas"
	"tinec/hal"
	"tinec/internal/hud"
	"tinec/internal/runner"
	"tinec/tinec"
)

func main() {
	runner.Main(runner.Config{Title: "Circles", Width: 800, Height: 600, FPS: 60}, run)
}

func run(cfg runner.Config, open hal.Opener) error {
	c, err := tinec.Init(cfg.Title, cfg.Width, cfg.Height, open)
	if err != nil {
		return err
	}
	defer c.Deinit()

	balls := newBalls(c.Width(), c.Height())
	overlay := hud.Overlay{X: 4, Y: 4, Color: canvas.White}
	return c.Loop(tinec.Pacing{FPS: cfg.FPS}, func(frame uint64) error {
		c.Fill(canvas.Black)
		for i := range balls {
			b := &balls[i]
			c.DrawCircle(b.x, b.y, b.r, b.color, b.mode)
			b.step(float64(c.Width()), float64(c.Height()))
		}
		if cfg.HUD {
			overlay.Draw(c, fmt.Sprintf("frame %d", frame), fmt.Sprintf("balls %d", len(balls)))
		}
		if cfg.Done(frame) {
			c.Stop()
		}
		return nil
	})
}
