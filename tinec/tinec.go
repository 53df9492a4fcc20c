// Package tinec ties a canvas to a display bridge: Init allocates the pixel
// buffer and opens the display, Update presents the whole buffer, and Deinit
// releases both.
//
//	c, err := tinec.Init("demo", 800, 600, hal.HeadlessOpener(hal.HeadlessConfig{Frames: 60}))
//	if err != nil {
//		return err
//	}
//	defer c.Deinit()
//	for c.Running() {
//		c.Fill(canvas.Black)
//		c.DrawRect(100, 100, 90, 80, canvas.Red, canvas.Filled)
//		if err := c.Update(); err != nil {
//			return err
//		}
//	}
package tinec

import (
	"errors"
	"fmt"

	"tinec/canvas"
	"tinec/hal"
)

// Errors returned by Init. Both wrap the underlying cause.
var (
	ErrAllocation  = canvas.ErrAllocation
	ErrBackendInit = hal.ErrBackendInit
)

// Canvas is a pixel buffer bound to a display. All drawing methods of
// canvas.Canvas are available directly.
type Canvas struct {
	*canvas.Canvas

	title   string
	bridge  hal.Bridge
	running bool
	closed  bool
}

// Init allocates a width×height canvas and opens a display for it through
// open. Failures are returned, never fatal: errors wrap ErrAllocation or
// ErrBackendInit.
func Init(title string, width, height int, open hal.Opener) (*Canvas, error) {
	if open == nil {
		return nil, fmt.Errorf("%w: no display opener", ErrBackendInit)
	}
	buf, err := canvas.New(width, height)
	if err != nil {
		return nil, err
	}
	b, err := open(title, width, height)
	if err != nil {
		buf.Release()
		if !errors.Is(err, hal.ErrBackendInit) {
			err = fmt.Errorf("%w: %v", hal.ErrBackendInit, err)
		}
		return nil, err
	}

	Logger().Info("canvas created", "title", title, "width", width, "height", height)
	return &Canvas{
		Canvas:  buf,
		title:   title,
		bridge:  b,
		running: true,
	}, nil
}

// Update presents the whole buffer.
func (c *Canvas) Update() error {
	if c.closed {
		return hal.ErrClosed
	}
	return c.bridge.Present(c.Pixels(), c.Width(), c.Height())
}

// Display implements drivers.Displayer by presenting the buffer.
func (c *Canvas) Display() error { return c.Update() }

// PollQuit drains the display's input and reports whether a quit was
// requested, now or earlier.
func (c *Canvas) PollQuit() bool {
	if c.running && !c.closed && c.bridge.PollQuit() {
		c.running = false
		Logger().Info("quit requested", "title", c.title)
	}
	return !c.running
}

// Running polls for quit and reports whether the main loop should continue.
func (c *Canvas) Running() bool {
	return !c.PollQuit()
}

// Stop ends the main loop at the next Running check.
func (c *Canvas) Stop() { c.running = false }

// Deinit releases the pixel buffer and closes the display. Calling it again
// is a no-op. The canvas must not be drawn to or updated afterwards.
func (c *Canvas) Deinit() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.running = false
	c.Canvas.Release()
	err := c.bridge.Close()
	Logger().Info("canvas closed", "title", c.title)
	return err
}
