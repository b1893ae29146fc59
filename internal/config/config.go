package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Ornament layout (percent of viewport)
	OrnamentCount = 30
	GridCols      = 5
	GridRows      = 5
	CellJitter    = 0.6
	EdgeMargin    = 5.0

	// Ornament randomisation
	ScaleMin      = 0.4
	ScaleSpan     = 0.4
	AmplitudeMin  = 0.015
	AmplitudeSpan = 0.02
	TiltMin       = -8.0
	TiltSpan      = 16.0

	// Appearance schedule
	AppearBaseDelay = 500 * time.Millisecond
	AppearStagger   = 400 * time.Millisecond
	AppearDuration  = 800 * time.Millisecond
	AppearMinScale  = 0.3

	// Sway clock advance per tick, not per second
	SwayStep = 0.01

	// Particles
	ParticleCount     = 15
	DriftScale        = 0.1
	WrapMin           = -5.0
	WrapMax           = 105.0
	LeafThreshold     = 0.7
	RotationSpeedMin  = -0.02
	RotationSpeedSpan = 0.04

	// Terminal host
	TerminalFPS         = 60
	TerminalSupersample = 4
)
