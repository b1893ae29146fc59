// Package canvas defines the immediate-mode 2D drawing surface the renderer
// paints on, plus the transform and alpha state shared by its backends.
package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a 2D drawing context. Shape coordinates are in the local space
// set up by Translate, Rotate and Scale; SetAlpha applies to every shape
// drawn until the next Restore.
type Canvas interface {
	Size() (width, height int)
	Clear()
	// FillVerticalGradient paints the full width from y=0 to y=height,
	// interpolating stops top to bottom.
	FillVerticalGradient(height float64, stops []GradientStop)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	Scale(sx, sy float64)
	SetAlpha(a float64)

	FillCircle(cx, cy, r float64, c colorful.Color)
	FillEllipse(cx, cy, rx, ry float64, c colorful.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color)
}

// Resizer is implemented by canvases whose pixel size follows the viewport.
type Resizer interface {
	Resize(width, height int)
}

// GradientStop is a colour at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  colorful.Color
}

// GradientAt samples stops at t. Stops must be sorted by offset. Values
// outside the first and last stop take the edge colour.
func GradientAt(stops []GradientStop, t float64) colorful.Color {
	if len(stops) == 0 {
		return colorful.Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return a.Color.BlendRgb(b.Color, (t-a.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// WithAlpha converts c to a 16-bit colour with straight alpha a.
func WithAlpha(c colorful.Color, a float64) color.NRGBA64 {
	c = c.Clamped()
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(min(max(a, 0), 1)),
	}
}

func to16(v float64) uint16 { return uint16(math.Round(v * 0xffff)) }
