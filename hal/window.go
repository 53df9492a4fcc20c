//go:build cgo

package hal

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window backend.
type WindowConfig struct {
	// Scale multiplies the window size; the frame is stretched to fit.
	Scale  int
	Logger *slog.Logger
}

// RunWindow opens a desktop window and runs prog against it. It blocks until
// prog returns and the window is gone.
//
// ebiten has to own the calling goroutine, so prog runs on its own goroutine.
// Present hands each frame to the window and waits until it was drawn.
// The Opener passed to prog can create one window.
func RunWindow(cfg WindowConfig, prog func(Opener) error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w := &window{
		log:    log,
		opened: make(chan struct{}),
		drawn:  make(chan struct{}, 1),
		quit:   make(chan struct{}),
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}

	errc := make(chan error, 1)
	go func() {
		err := prog(w.open)
		w.Close()
		errc <- err
	}()

	select {
	case <-w.opened:
	case err := <-errc:
		return err
	}

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width*cfg.Scale, w.height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)
	runErr := ebiten.RunGame(w)

	close(w.done)
	w.requestQuit()
	progErr := <-errc
	if runErr != nil {
		return fmt.Errorf("%w: %v", ErrBackendInit, runErr)
	}
	return progErr
}

type window struct {
	log *slog.Logger

	mu      sync.Mutex
	isOpen  bool
	title   string
	width   int
	height  int
	rgba    []byte
	pending bool
	img     *ebiten.Image

	quitOnce  sync.Once
	closeOnce sync.Once

	opened chan struct{}
	drawn  chan struct{}
	quit   chan struct{}
	closed chan struct{}
	done   chan struct{}
}

func (w *window) open(title string, width, height int) (Bridge, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isOpen {
		return nil, fmt.Errorf("%w: window already open", ErrBackendInit)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid window size %dx%d", ErrBackendInit, width, height)
	}
	w.isOpen = true
	w.title = title
	w.width = width
	w.height = height
	w.rgba = make([]byte, width*height*4)
	close(w.opened)
	w.log.Info("window opened", "title", title, "width", width, "height", height)
	return w, nil
}

func (w *window) Present(pix []uint32, width, height int) error {
	if !validFrame(pix, width, height, w.width, w.height) {
		return fmt.Errorf("%w: got %dx%d (%d cells), want %dx%d", ErrGeometry, width, height, len(pix), w.width, w.height)
	}
	select {
	case <-w.closed:
		return ErrClosed
	case <-w.done:
		return ErrClosed
	default:
	}

	w.mu.Lock()
	rgbaBytes(w.rgba, pix)
	w.pending = true
	w.mu.Unlock()

	select {
	case <-w.drawn:
	case <-w.quit:
	case <-w.closed:
	}
	return nil
}

func (w *window) PollQuit() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

func (w *window) Close() error {
	w.closeOnce.Do(func() {
		close(w.closed)
		w.log.Info("window closing", "title", w.title)
	})
	return nil
}

func (w *window) requestQuit() {
	w.quitOnce.Do(func() { close(w.quit) })
}

func (w *window) Update() error {
	select {
	case <-w.closed:
		w.mu.Lock()
		if w.img != nil {
			w.img.Deallocate()
			w.img = nil
		}
		w.mu.Unlock()
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		w.requestQuit()
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}
	if w.pending {
		w.img.WritePixels(w.rgba)
		w.pending = false
		select {
		case w.drawn <- struct{}{}:
		default:
		}
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
