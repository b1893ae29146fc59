// Package render paints a scene.State onto a canvas.Canvas.
package render

import (
	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/iburimskiy/sunflower-field/internal/config"
	"github.com/iburimskiy/sunflower-field/internal/scene"
)

// Viewport is the surface size in pixels that percent coordinates map onto.
type Viewport struct {
	Width, Height int
}

// ToPixels maps a percent position onto the viewport.
func (v Viewport) ToPixels(x, y float64) (float64, float64) {
	return x / 100 * float64(v.Width), y / 100 * float64(v.Height)
}

var skyStops = []canvas.GradientStop{
	{Offset: 0, Color: config.SkyTop},
	{Offset: config.SkyMiddleOffset, Color: config.SkyMiddle},
	{Offset: 1, Color: config.SkyBottom},
}

// Frame draws one complete frame: background, then particles, then the
// posed ornaments. Every pixel of the previous frame is overwritten.
func Frame(c canvas.Canvas, vp Viewport, st *scene.State) {
	c.Clear()
	Background(c, vp)

	for i := range st.Particles {
		Particle(c, vp, &st.Particles[i])
	}
	for _, p := range st.Poses {
		o := st.Ornaments[p.Index]
		x, y := vp.ToPixels(o.X, o.Y)
		Sunflower(c, x, y, p)
	}
}

// Background paints the sky gradient over the viewport.
func Background(c canvas.Canvas, vp Viewport) {
	c.FillVerticalGradient(float64(vp.Height), skyStops)
}

func Particle(c canvas.Canvas, vp Viewport, p *scene.Particle) {
	x, y := vp.ToPixels(p.X, p.Y)

	c.Save()
	defer c.Restore()
	c.SetAlpha(p.Opacity)
	c.Translate(x, y)
	c.Rotate(p.Rotation)

	switch p.Kind {
	case scene.Leaf:
		c.FillEllipse(0, 0, p.Size*config.LeafParticleX, p.Size*config.LeafParticleY, config.LeafColor)
	default:
		c.FillCircle(0, 0, p.Size, config.PollenColor)
	}
}
