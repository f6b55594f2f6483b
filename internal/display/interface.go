package display

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"
)

//go:generate go tool counterfeiter -generate

//counterfeiter:generate -o ../../tests/mocks/display/fake_display_controller.go . DisplayController
//counterfeiter:generate -o ../../tests/mocks/display/fake_provider.go . Provider

// Coordinate range every backend can address. X11 carries pointer
// positions as 16-bit signed integers.
const (
	MinCoordinate = math.MinInt16
	MaxCoordinate = math.MaxInt16
)

// DisplayController drives the host screen, pointer and keyboard on one display server
type DisplayController interface {
	// Screen operations
	ScreenSize(ctx context.Context) (width, height int, err error)
	CaptureScreen(ctx context.Context) (image.Image, error)

	// Pointer operations
	CursorPosition(ctx context.Context) (x, y int, err error)
	MoveMouse(ctx context.Context, x, y int) error
	ClickMouse(ctx context.Context, button MouseButton, clicks int) error
	PressMouse(ctx context.Context, button MouseButton) error
	ReleaseMouse(ctx context.Context, button MouseButton) error
	ScrollMouse(ctx context.Context, clicks int, direction ScrollDirection) error

	// Keyboard operations
	TypeText(ctx context.Context, text string) error
	SendKeyCombo(ctx context.Context, combo string) error

	// Lifecycle
	Close() error
}

// InRange reports whether (x, y) is addressable by every backend
func InRange(x, y int) bool {
	return x >= MinCoordinate && x <= MaxCoordinate && y >= MinCoordinate && y <= MaxCoordinate
}

// MouseButton represents a mouse button
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// String returns the string representation of a mouse button
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseMouseButton parses a button name. An empty name means the left button.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return MouseButtonLeft, nil
	case "middle":
		return MouseButtonMiddle, nil
	case "right":
		return MouseButtonRight, nil
	default:
		return MouseButtonLeft, fmt.Errorf("invalid button: %s (must be 'left', 'middle', or 'right')", s)
	}
}

// ScrollDirection represents a wheel direction
type ScrollDirection string

const (
	ScrollUp    ScrollDirection = "up"
	ScrollDown  ScrollDirection = "down"
	ScrollLeft  ScrollDirection = "left"
	ScrollRight ScrollDirection = "right"
)

// ParseScrollDirection parses a direction name. An empty name means down.
func ParseScrollDirection(s string) (ScrollDirection, error) {
	switch d := ScrollDirection(strings.ToLower(s)); d {
	case "":
		return ScrollDown, nil
	case ScrollUp, ScrollDown, ScrollLeft, ScrollRight:
		return d, nil
	default:
		return ScrollDown, fmt.Errorf("invalid scroll direction: %s (must be 'up', 'down', 'left', or 'right')", s)
	}
}

// Provider creates DisplayController instances for a specific display server
type Provider interface {
	// GetController connects to the named display ("" selects the default)
	GetController(display string) (DisplayController, error)

	// Info returns information about the display server
	Info() Info

	// IsAvailable returns true if this display server is available on the current system
	IsAvailable() bool
}

// Info contains metadata about a display backend
type Info struct {
	Name              string // "x11", "robot"
	Priority          int    // higher wins during detection
	SupportsPress     bool
	RequiresElevation bool
}
