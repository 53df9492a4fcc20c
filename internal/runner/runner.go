// Package runner is the shared entry point of the example programs. It
// parses flags, sets up logging and picks the display backend.
package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"tinec/hal"
	"tinec/internal/buildinfo"
	"tinec/tinec"
)

// Program is the body of an example: it opens its canvas through open and
// returns when done.
type Program func(cfg Config, open hal.Opener) error

// Main parses os.Args over defaults, runs prog and exits non-zero on failure.
func Main(defaults Config, prog Program) {
	cfg, err := Parse(os.Args[0], os.Args[1:], defaults)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := Run(cfg, os.Stderr, prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes prog headless or in a window, logging to logw.
func Run(cfg Config, logw io.Writer, prog Program) error {
	log := newLogger(logw, cfg.Verbose)
	tinec.SetLogger(log)
	defer tinec.SetLogger(nil)

	cfg.Title = buildinfo.Title(cfg.Title)
	log.Info("starting", "title", cfg.Title, buildinfo.Attr(), "headless", cfg.Headless, "frames", cfg.Frames, "fps", cfg.FPS)

	if cfg.Headless {
		display := hal.NewHeadless(hal.HeadlessConfig{
			Frames:    cfg.Frames,
			DumpDir:   cfg.DumpDir,
			DumpEvery: cfg.DumpEvery,
			Logger:    log,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			display.RequestQuit()
		}()
		return prog(cfg, display.Open)
	}

	return hal.RunWindow(hal.WindowConfig{Scale: cfg.Scale, Logger: log}, func(open hal.Opener) error {
		return prog(cfg, open)
	})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
