package scene

import (
	"time"

	"github.com/iburimskiy/sunflower-field/internal/config"
)

// Pose holds the drawable values of one visible ornament for the current
// frame.
type Pose struct {
	Index   int // into State.Ornaments
	Opacity float64
	Scale   float64
	Angle   float64 // radians, sway plus tilt
}

// State is everything the animation mutates between frames. It is owned by
// a single driver and is not safe for concurrent use.
type State struct {
	Ornaments []Ornament
	Particles []Particle

	// Clock is the sway clock. It advances by config.SwayStep per tick
	// regardless of wall time, so sway speed follows the frame rate.
	Clock float64
	// Elapsed is the time since scene start passed to the last Advance.
	Elapsed time.Duration
	// Poses lists the ornaments to draw this frame, in ornament order.
	Poses []Pose
}

// Advance runs one tick of the frame updater.
func (s *State) Advance(now time.Duration) {
	s.Elapsed = now
	s.Clock += config.SwayStep

	for i := range s.Particles {
		s.Particles[i].Step(config.DriftScale)
	}

	s.Poses = s.Poses[:0]
	for i, o := range s.Ornaments {
		a := o.Appearance(now)
		if !a.Visible || a.Opacity <= 0 {
			continue
		}
		s.Poses = append(s.Poses, Pose{
			Index:   i,
			Opacity: a.Opacity,
			Scale:   a.Scale,
			Angle:   o.Angle(s.Clock),
		})
	}
}
