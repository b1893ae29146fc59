package game

import (
	"time"

	"github.com/iburimskiy/sunflower-field/internal/canvas"
)

// FrameHandle identifies a scheduled frame callback. The zero handle is
// never issued.
type FrameHandle uint64

// ResizeFunc receives the new viewport size in pixels.
type ResizeFunc func(width, height int)

// Host is the environment an Animator runs in: a drawing surface, a
// monotonic clock, a display-paced frame scheduler and resize
// notifications. All callbacks are delivered on the host's single loop
// goroutine.
type Host interface {
	// Canvas returns the drawing surface, or nil when none is available.
	Canvas() canvas.Canvas
	Viewport() (width, height int)
	Now() time.Duration

	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
	OnResize(fn ResizeFunc) (remove func())
}

// FrameQueue holds callbacks waiting for the next display refresh. Hosts
// call Fire once per refresh. Callbacks requested while firing wait for
// the following refresh.
type FrameQueue struct {
	next    FrameHandle
	pending []queuedFrame
}

type queuedFrame struct {
	h  FrameHandle
	fn func()
}

func (q *FrameQueue) Request(fn func()) FrameHandle {
	q.next++
	q.pending = append(q.pending, queuedFrame{h: q.next, fn: fn})
	return q.next
}

// Cancel drops a pending callback. Unknown or already fired handles are
// ignored.
func (q *FrameQueue) Cancel(h FrameHandle) {
	for i, f := range q.pending {
		if f.h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *FrameQueue) Pending() int { return len(q.pending) }

// Fire runs every callback pending at the time of the call, in request
// order, and reports how many ran.
func (q *FrameQueue) Fire() int {
	due := q.pending
	q.pending = nil
	for _, f := range due {
		f.fn()
	}
	return len(due)
}

// Listeners is a set of resize callbacks notified in registration order.
type Listeners struct {
	next int
	fns  []listener
}

type listener struct {
	id int
	fn ResizeFunc
}

// Add registers fn and returns a function that removes it. Calling the
// remover more than once is harmless.
func (l *Listeners) Add(fn ResizeFunc) (remove func()) {
	l.next++
	id := l.next
	l.fns = append(l.fns, listener{id: id, fn: fn})
	return func() {
		for i, ln := range l.fns {
			if ln.id == id {
				l.fns = append(l.fns[:i], l.fns[i+1:]...)
				return
			}
		}
	}
}

func (l *Listeners) Len() int { return len(l.fns) }

func (l *Listeners) Notify(width, height int) {
	for _, ln := range append([]listener(nil), l.fns...) {
		ln.fn(width, height)
	}
}
