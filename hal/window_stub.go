//go:build !cgo

package hal

import (
	"errors"
	"log/slog"
)

// WindowConfig controls the desktop window backend.
type WindowConfig struct {
	Scale  int
	Logger *slog.Logger
}

func RunWindow(_ WindowConfig, _ func(Opener) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
