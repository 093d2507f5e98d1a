package constants

import "time"

// Game Loop & Simulation Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickSeconds is the fixed simulation step applied to every velocity
	// Never derived from measured frame time
	TickSeconds = 0.016

	// DefaultTicksPerFrame is how many simulation ticks run per presented frame
	DefaultTicksPerFrame = 40
)

// Playfield geometry in world units
const (
	FieldWidth  = 720.0
	FieldHeight = 720.0
)

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer     = 10
	PriorityProjectile = 15
	PriorityFormation  = 20
	PriorityEffect     = 30
	PriorityCombat     = 40
	PriorityCull       = 100
)
