// Package hud draws small text overlays such as frame counters on top of a
// canvas.
package hud

import (
	"fmt"
	"time"

	"tinec/canvas"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay writes lines of text with their top-left corner at (X, Y).
type Overlay struct {
	X, Y  int16
	Color canvas.Color
	// Font defaults to proggy TinySZ8pt7b.
	Font tinyfont.Fonter
}

func (o *Overlay) font() tinyfont.Fonter {
	if o.Font != nil {
		return o.Font
	}
	return &proggy.TinySZ8pt7b
}

// Draw writes each line one font line height below the previous one.
func (o *Overlay) Draw(d drivers.Displayer, lines ...string) {
	f := o.font()
	adv := int16(f.GetYAdvance())
	c := o.Color.ToRGBA()
	y := o.Y
	for _, s := range lines {
		y += adv
		tinyfont.WriteLine(d, f, o.X, y, s, c)
	}
}

// FPS measures the frame rate over one second windows.
type FPS struct {
	start  time.Time
	frames int
	rate   float64
}

// Tick records one frame shown at now.
func (f *FPS) Tick(now time.Time) {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if el := now.Sub(f.start); el >= time.Second {
		f.rate = float64(f.frames) / el.Seconds()
		f.frames = 0
		f.start = now
	}
}

// Rate returns the last measured rate, or 0 before the first full second.
func (f *FPS) Rate() float64 { return f.rate }

func (f *FPS) String() string {
	return fmt.Sprintf("fps %.0f", f.rate)
}
