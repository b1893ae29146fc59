package render

import (
	"math"

	"github.com/iburimskiy/sunflower-field/internal/canvas"
	"github.com/iburimskiy/sunflower-field/internal/config"
	"github.com/iburimskiy/sunflower-field/internal/scene"
)

const leafTilt = math.Pi / 6

// Sunflower draws one flower with its head at pixel (x, y). Parts are
// painted back to front: stem, leaves, petals, disc, seeds.
func Sunflower(c canvas.Canvas, x, y float64, p scene.Pose) {
	c.Save()
	defer c.Restore()
	c.SetAlpha(p.Opacity)
	c.Translate(x, y)
	c.Rotate(p.Angle)
	c.Scale(p.Scale, p.Scale)

	c.StrokeLine(0, 0, 0, config.StemLength, config.StemWidth, config.StemColor)

	leaf(c, config.LeafUpperY, -leafTilt, -config.LeafOffsetX)
	leaf(c, config.LeafLowerY, leafTilt, config.LeafOffsetX)

	for i := 0; i < config.PetalCount; i++ {
		c.Save()
		c.Rotate(float64(i) / config.PetalCount * 2 * math.Pi)
		c.FillEllipse(config.PetalOffset, 0, config.PetalRadiusX, config.PetalRadiusY, config.PetalColor)
		c.Restore()
	}

	c.FillCircle(0, 0, config.DiscRadius, config.DiscColor)

	for i := 0; i < config.SeedClusters; i++ {
		c.Save()
		c.Rotate(float64(i) / config.SeedClusters * 2 * math.Pi)
		for j := 0; j < config.SeedsPerArm; j++ {
			c.FillCircle(0, config.SeedStart+float64(j)*config.SeedSpacing, config.SeedRadius, config.SeedColor)
		}
		c.Restore()
	}
}

func leaf(c canvas.Canvas, stemY, tilt, offsetX float64) {
	c.Save()
	c.Translate(0, stemY)
	c.Rotate(tilt)
	c.FillEllipse(offsetX, 0, config.LeafRadiusX, config.LeafRadiusY, config.StemColor)
	c.Restore()
}
