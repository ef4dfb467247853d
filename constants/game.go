package constants

import "time"

// Board geometry
// The grid is derived from a fixed window and cell size: 800x600 at 20 -> 40x30
const (
	WindowWidth  = 800
	WindowHeight = 600
	CellSize     = 20
)

// Pacing and scoring
const (
	// BaseSpeed is the tick rate at the start of a round (ticks per second)
	BaseSpeed = 8.0

	// SpeedIncrement is added to the tick rate per food eaten
	SpeedIncrement = 0.1

	// MaxSpeed caps the tick rate
	MaxSpeed = 15.0

	// ScoreIncrement is awarded per food eaten
	ScoreIncrement = 10
)

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the HUD refresh interval between ticks
	FrameUpdateInterval = 100 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 256
)
