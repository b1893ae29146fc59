// Package window hosts the animation in a desktop window driven by ebiten.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/iburimskiy/sunflower-field/internal/canvas/ebitencanvas"
	"github.com/iburimskiy/sunflower-field/internal/game"
)

// Window implements ebiten.Game and game.Host. Frame callbacks run inside
// Draw, once per display refresh. Layout doubles as the resize source.
type Window struct {
	canvas        *ebitencanvas.Canvas
	width, height int
	start         time.Time

	frames game.FrameQueue
	resize game.Listeners
}

func New(width, height int) *Window {
	return &Window{
		canvas: ebitencanvas.New(width, height),
		width:  width,
		height: height,
		start:  time.Now(),
	}
}

func (w *Window) Canvas() canvas.Canvas { return w.canvas }

func (w *Window) Viewport() (int, int) { return w.width, w.height }

// Now is monotonic: time.Since uses the monotonic clock reading.
func (w *Window) Now() time.Duration { return time.Since(w.start) }

func (w *Window) RequestFrame(fn func()) game.FrameHandle { return w.frames.Request(fn) }

func (w *Window) CancelFrame(h game.FrameHandle) { w.frames.Cancel(h) }

func (w *Window) OnResize(fn game.ResizeFunc) func() { return w.resize.Add(fn) }

// PendingFrames and Listeners report what is still registered, for
// checking teardown.
func (w *Window) PendingFrames() int { return w.frames.Pending() }

func (w *Window) Listeners() int { return w.resize.Len() }

func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// Draw fires pending frames here rather than in Update, so the scene
// advances once per displayed frame and draws onto the current screen.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Begin(screen)
	w.frames.Fire()
}

// Layout keeps the logical screen equal to the window size so percent
// coordinates always span the visible area.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return w.width, w.height
	}
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.resize.Notify(outsideWidth, outsideHeight)
	}
	return w.width, w.height
}
