package event

// EventType represents the type of input event
type EventType uint8

const (
	EventNone EventType = iota

	// EventPointerDown starts a touch/charge session
	// Trigger: mouse button press | Consumer: game loop -> sim.PointerStart
	EventPointerDown

	// EventPointerMove updates pointer position and velocity estimate
	// Trigger: mouse motion | Consumer: game loop -> sim.PointerMove
	EventPointerMove

	// EventPointerUp ends the session, possibly launching a snowball
	// Trigger: mouse button release | Consumer: game loop -> sim.PointerEnd
	EventPointerUp

	// EventResize carries new terminal dimensions in X, Y (cells)
	EventResize

	// EventQuit requests loop shutdown
	EventQuit
)

// String returns human-readable event name
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "PointerDown"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerUp:
		return "PointerUp"
	case EventResize:
		return "Resize"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// InputEvent is a value-type event passed from the poll goroutine to the loop
// X, Y are terminal cell coordinates (or dimensions for EventResize)
type InputEvent struct {
	Type EventType
	X, Y int
}
