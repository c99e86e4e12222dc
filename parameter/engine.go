package parameter

import "time"

// Loop timing
const (
	// FrameRate is the fixed simulation tick rate; one tick per rendered frame
	FrameRate = 60

	// FrameDuration is simulated time advanced by one tick
	FrameDuration = time.Second / FrameRate
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// World surface mapping
const (
	// CellWidth is world units per terminal column
	CellWidth = 8
	// CellHeight is world units per terminal row, terminal cells are roughly 1:2
	CellHeight = 16

	// PointerSentinel is the off-surface coordinate a released pointer is parked at
	PointerSentinel = -1000.0
)
