// Package terminal hosts the animation in a terminal. The scene is drawn by
// the software rasteriser and shown as half-block cells, two vertical
// samples per cell.
package terminal

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/iburimskiy/sunflower-field/internal/canvas/raster"
	"github.com/iburimskiy/sunflower-field/internal/game"
)

const halfBlock = '▀'

// Terminal implements game.Host on a tcell screen.
type Terminal struct {
	screen      tcell.Screen
	raster      *raster.Canvas
	supersample int
	cols, rows  int
	start       time.Time

	frames game.FrameQueue
	resize game.Listeners
}

// New wraps an initialised screen. Each cell covers supersample×supersample
// raster pixels per half.
func New(screen tcell.Screen, supersample int) *Terminal {
	t := &Terminal{
		screen:      screen,
		supersample: max(supersample, 1),
		start:       time.Now(),
	}
	t.cols, t.rows = screen.Size()
	w, h := t.Viewport()
	t.raster = raster.New(w, h)
	return t
}

func (t *Terminal) Canvas() canvas.Canvas { return t.raster }

// Viewport is the raster size in pixels.
func (t *Terminal) Viewport() (int, int) {
	return t.cols * t.supersample, t.rows * 2 * t.supersample
}

func (t *Terminal) Now() time.Duration { return time.Since(t.start) }

func (t *Terminal) RequestFrame(fn func()) game.FrameHandle { return t.frames.Request(fn) }

func (t *Terminal) CancelFrame(h game.FrameHandle) { t.frames.Cancel(h) }

func (t *Terminal) OnResize(fn game.ResizeFunc) func() { return t.resize.Add(fn) }

func (t *Terminal) PendingFrames() int { return t.frames.Pending() }

func (t *Terminal) Listeners() int { return t.resize.Len() }

// Run paces frames at fps until ctx is done or the user quits. Scene state
// is only touched from the calling goroutine.
func (t *Terminal) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if t.frames.Fire() > 0 {
				t.present()
			}
		}
	}
}

// handleEvent reports false when the loop should exit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.handleResize()
	}
	return true
}

func (t *Terminal) handleResize() {
	t.cols, t.rows = t.screen.Size()
	w, h := t.Viewport()
	t.raster.Resize(w, h)
	t.resize.Notify(w, h)
}

// present downsamples the raster into cells and flushes the screen.
func (t *Terminal) present() {
	img := t.raster.Image()
	ss := t.supersample
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			x0 := col * ss
			y0 := row * 2 * ss
			top := average(img, x0, y0, ss)
			bottom := average(img, x0, y0+ss, ss)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// average box-filters an n×n block starting at (x0, y0), ignoring pixels
// outside the image.
func average(img *image.RGBA, x0, y0, n int) tcell.Color {
	b := img.Bounds()
	var r, g, bl, count int
	for y := y0; y < y0+n && y < b.Max.Y; y++ {
		for x := x0; x < x0+n && x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r += int(img.Pix[i])
			g += int(img.Pix[i+1])
			bl += int(img.Pix[i+2])
			count++
		}
	}
	if count == 0 {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(r/count), int32(g/count), int32(bl/count))
}
