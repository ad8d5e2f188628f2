package navigator

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"mr/internal/pages"
)

// Result is the outcome of one load request. Tiles is empty when Err is set.
type Result struct {
	Seq   uint64
	Page  pages.Page
	Tiles []*image.RGBA
	Err   error
}

// Loader reads, resizes and slices pages off the UI goroutine. Only the most
// recent request delivers a result; starting a new one cancels the previous.
type Loader struct {
	read       func(pages.Page) ([]byte, error)
	tileHeight int
	results    chan Result
	latest     atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewLoader creates a loader that reads page bytes with read and slices
// pages into tiles of at most tileHeight rows.
func NewLoader(read func(pages.Page) ([]byte, error), tileHeight int) *Loader {
	return &Loader{
		read:       read,
		tileHeight: tileHeight,
		results:    make(chan Result, 1),
	}
}

// Results returns the channel results are delivered on. It is never closed.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Load starts loading page at the given width under sequence number seq.
func (l *Loader) Load(seq uint64, page pages.Page, width int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if l.cancel != nil {
		l.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.latest.Store(seq)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx, seq, page, width)
	}()
}

func (l *Loader) run(ctx context.Context, seq uint64, page pages.Page, width int) {
	res := Result{Seq: seq, Page: page}

	data, err := l.read(page)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", page.Name, err)
	} else if ctx.Err() == nil {
		res.Tiles, err = pages.Tile(data, width, l.tileHeight)
		if err != nil {
			res.Err = fmt.Errorf("tile %s: %w", page.Name, err)
		}
	}

	if ctx.Err() != nil || l.latest.Load() != seq {
		return
	}

	select {
	case l.results <- res:
	case <-ctx.Done():
	}
}

// Close cancels any in-flight load and waits for workers to exit. Load is a
// no-op afterwards.
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()

	l.wg.Wait()
}
