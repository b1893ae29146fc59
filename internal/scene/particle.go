package scene

import "github.com/iburimskiy/sunflower-field/internal/config"

// Kind selects how a particle is drawn.
type Kind uint8

const (
	Pollen Kind = iota
	Leaf
)

func (k Kind) String() string {
	switch k {
	case Pollen:
		return "pollen"
	case Leaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Particle is a drifting mote. Position is in percent of viewport with a
// wrap margin on every side.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Size          float64
	Opacity       float64
	Kind          Kind
	Rotation      float64
	RotationSpeed float64
}

// Step integrates one tick of drift and spin, then wraps.
func (p *Particle) Step(drift float64) {
	p.X += p.VX * drift
	p.Y += p.VY * drift
	p.Rotation += p.RotationSpeed
	p.Wrap()
}

// Wrap teleports each axis independently to the opposite bound once it
// leaves [WrapMin, WrapMax].
func (p *Particle) Wrap() {
	p.X = wrap(p.X)
	p.Y = wrap(p.Y)
}

func wrap(v float64) float64 {
	if v > config.WrapMax {
		return config.WrapMin
	}
	if v < config.WrapMin {
		return config.WrapMax
	}
	return v
}
