package constants

import "time"

// PointerTiming contains delays used when replaying button actions on the host
const (
	// Delay between the press and release of a synthesized click or keystroke
	PressReleaseDelay = 50 * time.Millisecond
	// Delay between consecutive clicks of a multi-click
	MultiClickDelay = 100 * time.Millisecond
	// Delay between wheel notches of a multi-notch scroll
	ScrollStepDelay = 50 * time.Millisecond
	// Delay between typed characters and around held modifiers
	KeyStrokeDelay = 10 * time.Millisecond
)

// ServerTiming contains timing constants for the pointer server
const (
	// Grace period for open connections on shutdown
	ShutdownTimeout = 5 * time.Second
	// Deadline for writing a single websocket reply
	WSWriteTimeout = 5 * time.Second
)
