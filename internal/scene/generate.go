package scene

import (
	"math"
	"time"

	"github.com/iburimskiy/sunflower-field/internal/config"
)

// Source is the random input to scene generation. Float64 must return
// values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Options controls scene layout. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Ornaments int
	Cols      int
	Rows      int
	Jitter    float64 // fraction of a cell the jitter may span
	Margin    float64 // minimum distance from the viewport edge, percent
	BaseDelay time.Duration
	Stagger   time.Duration
	Particles int
}

func DefaultOptions() Options {
	return Options{
		Ornaments: config.OrnamentCount,
		Cols:      config.GridCols,
		Rows:      config.GridRows,
		Jitter:    config.CellJitter,
		Margin:    config.EdgeMargin,
		BaseDelay: config.AppearBaseDelay,
		Stagger:   config.AppearStagger,
		Particles: config.ParticleCount,
	}
}

// Generate builds a fresh scene. Call it once per scene lifetime.
func Generate(opts Options, src Source) *State {
	return &State{
		Ornaments: NewOrnaments(opts, src),
		Particles: NewParticles(opts.Particles, src),
	}
}

// NewOrnaments places ornaments on a jittered grid and shuffles their
// appearance order. Ornaments past Cols*Rows continue into rows below the
// grid and end up on the bottom margin after clamping.
func NewOrnaments(opts Options, src Source) []Ornament {
	cols := max(opts.Cols, 1)
	rows := max(opts.Rows, 1)
	cellW := 100 / float64(cols)
	cellH := 100 / float64(rows)
	lo, hi := opts.Margin, 100-opts.Margin

	out := make([]Ornament, opts.Ornaments)
	for i := range out {
		col := i % cols
		row := i / cols

		cx := float64(col)*cellW + cellW/2
		cy := float64(row)*cellH + cellH/2
		dx := (src.Float64() - 0.5) * cellW * opts.Jitter
		dy := (src.Float64() - 0.5) * cellH * opts.Jitter

		out[i] = Ornament{
			X:         clamp(cx+dx, lo, hi),
			Y:         clamp(cy+dy, lo, hi),
			Scale:     config.ScaleMin + src.Float64()*config.ScaleSpan,
			Phase:     src.Float64() * 2 * math.Pi,
			Amplitude: config.AmplitudeMin + src.Float64()*config.AmplitudeSpan,
			Tilt:      config.TiltMin + src.Float64()*config.TiltSpan,
		}
	}

	// Fisher-Yates, then hand out appearance slots in shuffled order.
	for i := len(out) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	for i := range out {
		out[i].AppearAt = opts.BaseDelay + time.Duration(i)*opts.Stagger
	}
	return out
}

// NewParticles scatters n particles uniformly over the viewport.
func NewParticles(n int, src Source) []Particle {
	out := make([]Particle, n)
	for i := range out {
		p := Particle{
			X:       src.Float64() * 100,
			Y:       src.Float64() * 100,
			VX:      -0.5 + src.Float64(),
			VY:      -0.2 + src.Float64()*0.4,
			Size:    2 + src.Float64()*4,
			Opacity: 0.3 + src.Float64()*0.4,
		}
		if src.Float64() > config.LeafThreshold {
			p.Kind = Leaf
		}
		p.Rotation = src.Float64() * 2 * math.Pi
		p.RotationSpeed = config.RotationSpeedMin + src.Float64()*config.RotationSpeedSpan
		out[i] = p
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
