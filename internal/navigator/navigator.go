// Package navigator holds the current position in the page list and decides
// when a page has to be loaded. UI callbacks are turned into Event values and
// applied to the Navigator from the UI goroutine; loads themselves run on a
// Loader.
package navigator

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a jump outside the page list.
	ErrOutOfRange = errors.New("page index out of range")
	// ErrStale is returned when a Loaded event belongs to a superseded request.
	ErrStale = errors.New("stale load result")
)

// Event is an input to the navigator's transition function.
type Event interface {
	event()
}

// Start requests the first page.
type Start struct{}

// Next moves one page forward.
type Next struct{}

// Previous moves one page back.
type Previous struct{}

// JumpTo moves to an arbitrary page.
type JumpTo struct {
	Index int
}

// Scrolled reports the scroll position of the current page's content.
type Scrolled struct {
	Offset int
	Max    int
}

// Reload requests the current page again, e.g. after a width change.
type Reload struct{}

// Loaded reports that the load with sequence number Seq has completed.
type Loaded struct {
	Seq uint64
}

func (Start) event()    {}
func (Next) event()     {}
func (Previous) event() {}
func (JumpTo) event()   {}
func (Scrolled) event() {}
func (Reload) event()   {}
func (Loaded) event()   {}

// Request asks for page Index to be loaded. Seq identifies the request; only
// the most recent one is current.
type Request struct {
	Seq   uint64
	Index int
}

// Navigator is the page position state machine. It is not safe for
// concurrent use.
type Navigator struct {
	index    int
	count    int
	autoNext bool
	loading  bool
	seq      uint64
}

// New creates a navigator over count pages, positioned at page 0.
func New(count int, autoNext bool) *Navigator {
	return &Navigator{count: max(count, 0), autoNext: autoNext}
}

// Index returns the current page index.
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of pages.
func (n *Navigator) Count() int {
	return n.count
}

// Loading reports whether a load request is in flight.
func (n *Navigator) Loading() bool {
	return n.loading
}

// Seq returns the sequence number of the latest request.
func (n *Navigator) Seq() uint64 {
	return n.seq
}

// AutoNext reports whether auto-advance is enabled.
func (n *Navigator) AutoNext() bool {
	return n.autoNext
}

// Apply runs one transition. When the page has to be (re)loaded it returns
// the request and true.
func (n *Navigator) Apply(ev Event) (Request, bool, error) {
	switch e := ev.(type) {
	case Start:
		if n.count == 0 {
			return Request{}, false, nil
		}
		n.index = 0
		return n.request(), true, nil

	case Next:
		if n.index >= n.count-1 {
			return Request{}, false, nil
		}
		n.index++
		return n.request(), true, nil

	case Previous:
		if n.index <= 0 {
			return Request{}, false, nil
		}
		n.index--
		return n.request(), true, nil

	case JumpTo:
		if e.Index < 0 || e.Index >= n.count {
			return Request{}, false, fmt.Errorf("jump to %d of %d pages: %w", e.Index, n.count, ErrOutOfRange)
		}
		n.index = e.Index
		return n.request(), true, nil

	case Scrolled:
		if !n.autoNext || n.loading || e.Max <= 0 || e.Offset < e.Max {
			return Request{}, false, nil
		}
		return n.Apply(Next{})

	case Reload:
		if n.count == 0 {
			return Request{}, false, nil
		}
		return n.request(), true, nil

	case Loaded:
		if e.Seq != n.seq {
			return Request{}, false, fmt.Errorf("load %d superseded by %d: %w", e.Seq, n.seq, ErrStale)
		}
		n.loading = false
		return Request{}, false, nil
	}

	return Request{}, false, fmt.Errorf("unknown event %T", ev)
}

func (n *Navigator) request() Request {
	n.seq++
	n.loading = true
	return Request{Seq: n.seq, Index: n.index}
}
