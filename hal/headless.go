package hal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
)

// HeadlessConfig controls the no-window backend.
type HeadlessConfig struct {
	// Frames makes PollQuit report true once this many frames were
	// presented. Zero runs until RequestQuit.
	Frames uint64
	// DumpDir, when set, receives frames as BMP files.
	DumpDir string
	// DumpEvery writes every n-th frame. Values below 1 mean every frame.
	DumpEvery int
	Logger    *slog.Logger
}

// Headless is a Bridge that keeps frames in memory instead of showing them.
type Headless struct {
	mu sync.Mutex

	cfg    HeadlessConfig
	log    *slog.Logger
	title  string
	width  int
	height int

	last   []uint32
	frames uint64
	opened bool
	quit   bool
	closed bool
}

// NewHeadless returns an unopened headless backend.
func NewHeadless(cfg HeadlessConfig) *Headless {
	if cfg.DumpEvery < 1 {
		cfg.DumpEvery = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Headless{cfg: cfg, log: log}
}

// HeadlessOpener returns an Opener backed by a fresh Headless.
func HeadlessOpener(cfg HeadlessConfig) Opener {
	return NewHeadless(cfg).Open
}

// Open implements Opener. A Headless can be opened once.
func (h *Headless) Open(title string, width, height int) (Bridge, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.opened {
		return nil, fmt.Errorf("%w: headless display already opened", ErrBackendInit)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid display size %dx%d", ErrBackendInit, width, height)
	}
	if h.cfg.DumpDir != "" {
		if err := os.MkdirAll(h.cfg.DumpDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
		}
	}

	h.opened = true
	h.title = title
	h.width = width
	h.height = height
	h.last = make([]uint32, width*height)
	h.log.Info("headless display opened", "title", title, "width", width, "height", height)
	return h, nil
}

// Present copies the frame and optionally writes it to DumpDir.
func (h *Headless) Present(pix []uint32, width, height int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || !h.opened {
		return ErrClosed
	}
	if !validFrame(pix, width, height, h.width, h.height) {
		return fmt.Errorf("%w: got %dx%d (%d cells), want %dx%d", ErrGeometry, width, height, len(pix), h.width, h.height)
	}

	copy(h.last, pix)
	h.frames++

	if h.cfg.DumpDir != "" && (h.frames-1)%uint64(h.cfg.DumpEvery) == 0 {
		if err := h.dump(); err != nil {
			return err
		}
	}
	if h.cfg.Frames > 0 && h.frames >= h.cfg.Frames {
		h.quit = true
	}
	return nil
}

func (h *Headless) dump() error {
	name := filepath.Join(h.cfg.DumpDir, fmt.Sprintf("frame-%06d.bmp", h.frames))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("hal: dump frame: %w", err)
	}
	if err := bmp.Encode(f, frameImage(h.last, h.width, h.height)); err != nil {
		f.Close()
		return fmt.Errorf("hal: dump frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("hal: dump frame: %w", err)
	}
	h.log.Debug("frame dumped", "path", name)
	return nil
}

// PollQuit reports whether the frame budget is spent or RequestQuit was called.
func (h *Headless) PollQuit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quit
}

// RequestQuit makes the next PollQuit report true. It is safe to call from
// any goroutine, e.g. a signal handler.
func (h *Headless) RequestQuit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quit = true
}

func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.log.Info("headless display closed", "title", h.title, "frames", h.frames)
	return nil
}

// Frames returns the number of presented frames.
func (h *Headless) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastFrame returns a copy of the most recently presented frame.
func (h *Headless) LastFrame() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]uint32(nil), h.last...)
}

// Closed reports whether Close was called.
func (h *Headless) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
