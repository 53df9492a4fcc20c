package main

import (
	"math"
	"testing"

	"tinec/canvas"
	"tinec/hal"
	"tinec/internal/runner"
)

func TestSpoke(t *testing.T) {
	x0, y0, x1, y1 := spoke(10, 20, 5, 0)
	if x0 != 10 || y0 != 20 || x1 != 15 || math.Abs(y1-20) > 1e-9 {
		t.Fatalf("spoke(angle 0) = %v %v %v %v", x0, y0, x1, y1)
	}
}

func TestDrawFrame(t *testing.T) {
	c, err := canvas.New(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	drawFrame(c, 0)

	if c.At(margin, margin) != canvas.White || c.At(200-margin-1, 100-margin-1) != canvas.White {
		t.Fatalf("frame corners not drawn")
	}
	if c.At(100, 50) == 0 {
		t.Fatalf("center not covered by the spokes")
	}
	// Spoke 0 points right along the center row.
	if c.At(100+10, 50) != canvas.Red {
		t.Fatalf("first spoke missing: %#08x", uint32(c.At(110, 50)))
	}
}

func TestRunHeadless(t *testing.T) {
	display := hal.NewHeadless(hal.HeadlessConfig{})
	cfg := runner.Config{Title: "lines", Width: 160, Height: 120, Frames: 4, HUD: true}
	if err := run(cfg, display.Open); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := display.Frames(); n != 4 {
		t.Fatalf("presented %d frames, want 4", n)
	}
}
