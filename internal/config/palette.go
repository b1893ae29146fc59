package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Sky gradient stops, top to bottom.
var (
	SkyTop    = mustHex("#dbeafe")
	SkyMiddle = mustHex("#bfdbfe")
	SkyBottom = mustHex("#93c5fd")

	SkyMiddleOffset = 0.7
)

// Particle colours
var (
	PollenColor = mustHex("#fbbf24")
	LeafColor   = mustHex("#65a30d")
)

// Sunflower part colours
var (
	StemColor  = mustHex("#4d7c0f")
	PetalColor = mustHex("#facc15")
	DiscColor  = mustHex("#92400e")
	SeedColor  = mustHex("#422006")
)

// Sunflower geometry in unscaled local units. The flower head sits at the
// origin and the stem hangs down the positive Y axis.
const (
	StemLength = 120.0
	StemWidth  = 3.0

	LeafUpperY  = 40.0
	LeafLowerY  = 80.0
	LeafOffsetX = 12.0
	LeafRadiusX = 16.0
	LeafRadiusY = 8.0

	PetalCount   = 14
	PetalOffset  = 18.0
	PetalRadiusX = 22.0
	PetalRadiusY = 7.0

	DiscRadius = 16.0

	SeedClusters  = 5
	SeedsPerArm   = 3
	SeedStart     = 4.0
	SeedSpacing   = 2.5
	SeedRadius    = 1.2
	LeafParticleX = 1.5
	LeafParticleY = 0.8
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("config: bad colour %q: %v", s, err))
	}
	return c
}
