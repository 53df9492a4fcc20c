// Package hal is the display bridge between a canvas and whatever presents it.
//
// A Bridge receives whole frames of packed 0xRRGGBBAA cells, reports when the
// user asked to quit and releases its resources on Close. Backends are
// created through an Opener.
package hal

import "errors"

var (
	// ErrBackendInit reports that a display backend could not be created.
	ErrBackendInit = errors.New("hal: display backend init failed")
	// ErrClosed is returned by Present once the bridge has been closed.
	ErrClosed = errors.New("hal: display closed")
	// ErrGeometry is returned by Present when the frame does not match the
	// size the bridge was opened with.
	ErrGeometry = errors.New("hal: frame geometry mismatch")
)

// Bridge presents frames and reports quit requests.
type Bridge interface {
	// Present uploads the full frame and shows it. pix holds width*height
	// cells in row-major order.
	Present(pix []uint32, width, height int) error
	// PollQuit drains pending input and reports whether the user asked to
	// close the display.
	PollQuit() bool
	// Close releases every backend resource. It is safe to call more than once.
	Close() error
}

// Opener creates a display surface.
type Opener func(title string, width, height int) (Bridge, error)
