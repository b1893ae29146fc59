package game

import (
	"errors"
	"log"
	"time"

	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/iburimskiy/sunflower-field/internal/render"
	"github.com/iburimskiy/sunflower-field/internal/scene"
)

// ErrNoSurface is returned by Start when the host has no canvas to draw on.
var ErrNoSurface = errors.New("game: no drawing surface")

// Animator drives a scene: one update and one render per host frame, from
// Start until Stop.
type Animator struct {
	host  Host
	state *scene.State

	canvas        canvas.Canvas
	width, height int

	start        time.Duration
	frame        FrameHandle
	removeResize func()
	running      bool
}

func NewAnimator(host Host, state *scene.State) *Animator {
	return &Animator{host: host, state: state}
}

// State exposes the scene being animated.
func (a *Animator) State() *scene.State { return a.state }

// Viewport is the size the next frame will be drawn at.
func (a *Animator) Viewport() render.Viewport {
	return render.Viewport{Width: a.width, Height: a.height}
}

func (a *Animator) Running() bool { return a.running }

// Start binds the host surface, subscribes to resizes and schedules the
// first frame. Without a surface nothing is scheduled and ErrNoSurface is
// returned. Starting a running animator does nothing.
func (a *Animator) Start() error {
	if a.running {
		return nil
	}
	c := a.host.Canvas()
	if c == nil {
		return ErrNoSurface
	}
	a.canvas = c
	a.resize(a.host.Viewport())
	a.removeResize = a.host.OnResize(a.resize)
	a.start = a.host.Now()
	a.running = true
	a.frame = a.host.RequestFrame(a.tick)
	return nil
}

// Stop cancels the pending frame and drops the resize listener. It is safe
// to call more than once and before Start.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.host.CancelFrame(a.frame)
	a.frame = 0
	if a.removeResize != nil {
		a.removeResize()
		a.removeResize = nil
	}
	log.Printf("animation stopped after %s", formatDuration(a.host.Now()-a.start))
}

func (a *Animator) tick() {
	if !a.running {
		return
	}
	a.state.Advance(a.host.Now() - a.start)
	render.Frame(a.canvas, a.Viewport(), a.state)
	a.frame = a.host.RequestFrame(a.tick)
}

// resize records the new viewport and resyncs the surface before the next
// frame reads it.
func (a *Animator) resize(width, height int) {
	a.width, a.height = width, height
	if r, ok := a.canvas.(canvas.Resizer); ok {
		r.Resize(width, height)
	}
}
