package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Canvas is the simulation space in pixels, independent of terminal size
const (
	CanvasWidth  = 960
	CanvasHeight = 540
)
