package scene

import (
	"math"
	"time"

	"github.com/iburimskiy/sunflower-field/internal/config"
	"github.com/tanema/gween/ease"
)

// Ornament is one sunflower. Its fields are fixed at generation time; every
// animated value is derived from them and the scene clock.
type Ornament struct {
	X, Y      float64 // percent of viewport, within [EdgeMargin, 100-EdgeMargin]
	Scale     float64
	Phase     float64 // radians
	Amplitude float64 // radians
	Tilt      float64 // degrees
	AppearAt  time.Duration
}

// Appearance is the fade/pop-in state of an ornament at some instant.
type Appearance struct {
	Visible bool
	Opacity float64
	Scale   float64
}

// Appearance reports how far the ornament has faded in at the given time
// since scene start.
func (o Ornament) Appearance(now time.Duration) Appearance {
	since := now - o.AppearAt
	if since < 0 {
		return Appearance{}
	}
	eased := easeIn(since)
	scale := o.Scale
	if eased < 1 {
		scale *= config.AppearMinScale + (1-config.AppearMinScale)*eased
	}
	return Appearance{Visible: true, Opacity: eased, Scale: scale}
}

// Sway returns the oscillation angle in radians for the given sway clock.
func (o Ornament) Sway(clock float64) float64 {
	return math.Sin(clock+o.Phase) * o.Amplitude
}

// Angle is the total head rotation: sway plus static tilt.
func (o Ornament) Angle(clock float64) float64 {
	return o.Sway(clock) + o.Tilt*math.Pi/180
}

// easeIn maps time since appearance onto ease-out-cubic progress. The curve
// is evaluated as one minus ease-in-cubic of the remaining time, so the
// tail keeps float32's relative precision and stays below 1 until the end.
func easeIn(since time.Duration) float64 {
	progress := clamp01(float64(since) / float64(config.AppearDuration))
	if progress >= 1 {
		return 1
	}
	return 1 - float64(ease.InCubic(float32(1-progress), 0, 1, 1))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
