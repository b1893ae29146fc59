// Package ebitencanvas implements canvas.Canvas on an ebiten image.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/lucasb-eyer/go-colorful"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily created 1x1 white source image for
// untextured triangles. Only touched from the game loop.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Canvas draws onto the image passed to Begin. Shapes go through ebiten's
// vector package; the gradient is a strip of vertex-coloured quads.
type Canvas struct {
	canvas.Stack
	dst           *ebiten.Image
	width, height int

	verts []ebiten.Vertex
	inds  []uint16
}

func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Begin targets dst for the frame about to be drawn.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.Stack.Reset()
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize sets the logical size reported to the game's Layout.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

func (c *Canvas) Clear() {
	if c.dst != nil {
		c.dst.Clear()
	}
}

// FillVerticalGradient draws one vertex-coloured quad per pair of stops.
func (c *Canvas) FillVerticalGradient(height float64, stops []canvas.GradientStop) {
	if c.dst == nil || len(stops) == 0 {
		return
	}
	w := float64(c.width)
	alpha := c.Alpha()
	c.reset()
	for i, s := range stops {
		y := float32(s.Offset * height)
		c.verts = append(c.verts,
			vertex(0, y, s.Color, alpha),
			vertex(float32(w), y, s.Color, alpha),
		)
		if i == 0 {
			continue
		}
		base := uint16(2 * (i - 1))
		c.inds = append(c.inds, base, base+1, base+2, base+1, base+3, base+2)
	}
	c.flush()
}

func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color) {
	c.FillEllipse(cx, cy, r, r, col)
}

// FillEllipse fills the flattened ellipse as an anti-aliased path.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col colorful.Color) {
	pts := canvas.EllipseOutline(c.Transform(), cx, cy, rx, ry)
	if c.dst == nil || len(pts) == 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	alpha := c.Alpha()
	c.reset()
	c.verts, c.inds = path.AppendVerticesAndIndicesForFilling(c.verts, c.inds)
	for i := range c.verts {
		c.verts[i] = vertex(c.verts[i].DstX, c.verts[i].DstY, col, alpha)
	}
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.FillRuleNonZero,
		AntiAlias:      true,
	})
}

// StrokeLine draws the segment with butt caps. The width follows the
// transform's scale.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col colorful.Color) {
	if c.dst == nil || width <= 0 || (x0 == x1 && y0 == y1) {
		return
	}
	m := c.Transform()
	ax, ay := m.Apply(x0, y0)
	bx, by := m.Apply(x1, y1)
	w := width * m.ScaleFactor()
	vector.StrokeLine(c.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(w), canvas.WithAlpha(col, c.Alpha()), true)
}

func (c *Canvas) reset() {
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
}

func (c *Canvas) flush() {
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), op)
}

// vertex builds an untextured vertex with premultiplied colour.
func vertex(x, y float32, col colorful.Color, alpha float64) ebiten.Vertex {
	a := float32(alpha)
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(col.R) * a,
		ColorG: float32(col.G) * a,
		ColorB: float32(col.B) * a,
		ColorA: a,
	}
}
