package x11

import (
	"context"
	"fmt"
	"image"
	"os"

	display "github.com/inference-gateway/deskcast/internal/display"
)

// Controller adapts Client to the display.DisplayController interface
type Controller struct {
	client *Client
}

var _ display.DisplayController = (*Controller)(nil)

// ScreenSize returns the screen width and height
func (c *Controller) ScreenSize(ctx context.Context) (width, height int, err error) {
	w, h := c.client.ScreenSize()
	return w, h, nil
}

// CaptureScreen captures the whole screen
func (c *Controller) CaptureScreen(ctx context.Context) (image.Image, error) {
	return c.client.CaptureScreen()
}

// CursorPosition returns the current cursor position
func (c *Controller) CursorPosition(ctx context.Context) (x, y int, err error) {
	return c.client.CursorPosition()
}

// MoveMouse moves the cursor to the specified coordinates
func (c *Controller) MoveMouse(ctx context.Context, x, y int) error {
	return c.client.MoveMouse(x, y)
}

// ClickMouse clicks the specified mouse button
func (c *Controller) ClickMouse(ctx context.Context, button display.MouseButton, clicks int) error {
	code, err := ButtonCode(button)
	if err != nil {
		return err
	}
	return c.client.ClickMouse(code, clicks)
}

// PressMouse holds the specified mouse button down
func (c *Controller) PressMouse(ctx context.Context, button display.MouseButton) error {
	code, err := ButtonCode(button)
	if err != nil {
		return err
	}
	return c.client.PressMouse(code)
}

// ReleaseMouse releases the specified mouse button
func (c *Controller) ReleaseMouse(ctx context.Context, button display.MouseButton) error {
	code, err := ButtonCode(button)
	if err != nil {
		return err
	}
	return c.client.ReleaseMouse(code)
}

// ScrollMouse scrolls the wheel clicks notches in direction
func (c *Controller) ScrollMouse(ctx context.Context, clicks int, direction display.ScrollDirection) error {
	code, err := ScrollCode(direction)
	if err != nil {
		return err
	}
	return c.client.ScrollMouse(code, clicks)
}

// TypeText types text on the focused window
func (c *Controller) TypeText(ctx context.Context, text string) error {
	return c.client.TypeText(text)
}

// SendKeyCombo presses a key combination such as "ctrl+c"
func (c *Controller) SendKeyCombo(ctx context.Context, combo string) error {
	return c.client.SendKeyCombo(combo)
}

// Close closes the X11 connection
func (c *Controller) Close() error {
	c.client.Close()
	return nil
}

// ButtonCode maps a mouse button to its X11 core pointer button number
func ButtonCode(button display.MouseButton) (byte, error) {
	switch button {
	case display.MouseButtonLeft:
		return 1, nil
	case display.MouseButtonMiddle:
		return 2, nil
	case display.MouseButtonRight:
		return 3, nil
	default:
		return 0, fmt.Errorf("invalid button: %s", button)
	}
}

// ScrollCode maps a wheel direction to the X11 button that reports it
func ScrollCode(direction display.ScrollDirection) (byte, error) {
	switch direction {
	case display.ScrollUp:
		return 4, nil
	case display.ScrollDown:
		return 5, nil
	case display.ScrollLeft:
		return 6, nil
	case display.ScrollRight:
		return 7, nil
	default:
		return 0, fmt.Errorf("invalid scroll direction: %s", direction)
	}
}

// Provider implements the display.Provider interface for X11
type Provider struct{}

var _ display.Provider = (*Provider)(nil)

// NewProvider creates a new X11 provider
func NewProvider() *Provider {
	return &Provider{}
}

// GetController connects to the named X display, $DISPLAY when empty
func (p *Provider) GetController(displayName string) (display.DisplayController, error) {
	client, err := NewClient(displayName)
	if err != nil {
		return nil, err
	}
	return &Controller{client: client}, nil
}

// Info returns information about the X11 backend
func (p *Provider) Info() display.Info {
	return display.Info{
		Name:              "x11",
		Priority:          10,
		SupportsPress:     true,
		RequiresElevation: false,
	}
}

// IsAvailable returns true if X11 is available on the current system
func (p *Provider) IsAvailable() bool {
	// Wayland sessions take priority even when XWayland exports DISPLAY
	return os.Getenv("DISPLAY") != "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

func init() {
	display.Register(NewProvider())
}
