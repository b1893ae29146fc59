// Package raster is a software canvas backend over image.RGBA.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// Canvas flattens shapes into polygons and fills them with an anti-aliased
// rasterizer. Pixels are premultiplied and composited source-over.
type Canvas struct {
	canvas.Stack
	img *image.RGBA
	z   vector.Rasterizer
}

func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image when the size changes. Contents are
// not preserved.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// FillVerticalGradient paints one row at a time, sampling the gradient at
// the row's center.
func (c *Canvas) FillVerticalGradient(height float64, stops []canvas.GradientStop) {
	w, h := c.Size()
	if height <= 0 {
		return
	}
	alpha := c.Alpha()
	for y := 0; y < h; y++ {
		fy := float64(y) + 0.5
		if fy > height {
			break
		}
		src := image.NewUniform(canvas.WithAlpha(canvas.GradientAt(stops, fy/height), alpha))
		draw.Draw(c.img, image.Rect(0, y, w, y+1), src, image.Point{}, draw.Over)
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color) {
	c.FillEllipse(cx, cy, r, r, col)
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col colorful.Color) {
	c.fill(canvas.EllipseOutline(c.Transform(), cx, cy, rx, ry), col)
}

// StrokeLine draws a segment with butt caps.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col colorful.Color) {
	c.fill(canvas.LineOutline(c.Transform(), x0, y0, x1, y1, width), col)
}

// fill rasterizes the closed polygon pts over the part of the image its
// bounding box covers.
func (c *Canvas) fill(pts []canvas.Point, col colorful.Color) {
	alpha := c.Alpha()
	if len(pts) < 3 || alpha <= 0 {
		return
	}
	minX, minY, maxX, maxY := canvas.Bounds(pts)
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	// The mask covers r only, so points are shifted to its origin.
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, image.NewUniform(canvas.WithAlpha(col, alpha)), image.Point{})
}
