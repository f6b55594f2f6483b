package robot

import (
	"context"
	"fmt"
	"image"
	"os"
	"runtime"

	robotgo "github.com/go-vgo/robotgo"
	constants "github.com/inference-gateway/deskcast/internal/constants"
	display "github.com/inference-gateway/deskcast/internal/display"
)

// Controller drives the desktop through robotgo, which works on macOS, Windows and X11
type Controller struct{}

var _ display.DisplayController = (*Controller)(nil)

// ScreenSize returns the main display size
func (c *Controller) ScreenSize(ctx context.Context) (width, height int, err error) {
	w, h := robotgo.GetScreenSize()
	return w, h, nil
}

// CaptureScreen captures the main display
func (c *Controller) CaptureScreen(ctx context.Context) (image.Image, error) {
	bitmap := robotgo.CaptureScreen()
	if bitmap == nil {
		return nil, fmt.Errorf("failed to capture screen")
	}
	defer robotgo.FreeBitmap(bitmap)

	img := robotgo.ToImage(bitmap)
	if img == nil {
		return nil, fmt.Errorf("failed to convert bitmap to image")
	}
	return img, nil
}

// CursorPosition returns the current cursor position
func (c *Controller) CursorPosition(ctx context.Context) (x, y int, err error) {
	x, y = robotgo.Location()
	return x, y, nil
}

// MoveMouse moves the cursor to the specified coordinates
func (c *Controller) MoveMouse(ctx context.Context, x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// ClickMouse clicks the specified mouse button
func (c *Controller) ClickMouse(ctx context.Context, button display.MouseButton, clicks int) error {
	name, err := robotButton(button)
	if err != nil {
		return err
	}

	for i := 0; i < clicks; i++ {
		robotgo.Click(name)
		if i < clicks-1 {
			robotgo.MilliSleep(int(constants.MultiClickDelay.Milliseconds()))
		}
	}
	return nil
}

// PressMouse holds the specified mouse button down
func (c *Controller) PressMouse(ctx context.Context, button display.MouseButton) error {
	name, err := robotButton(button)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name)
}

// ReleaseMouse releases the specified mouse button
func (c *Controller) ReleaseMouse(ctx context.Context, button display.MouseButton) error {
	name, err := robotButton(button)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name, "up")
}

// ScrollMouse scrolls the wheel clicks notches in direction
func (c *Controller) ScrollMouse(ctx context.Context, clicks int, direction display.ScrollDirection) error {
	robotgo.ScrollDir(clicks, string(direction))
	return nil
}

// TypeText types text on the focused window
func (c *Controller) TypeText(ctx context.Context, text string) error {
	robotgo.Type(text)
	return nil
}

// SendKeyCombo presses a key combination such as "ctrl+c"
func (c *Controller) SendKeyCombo(ctx context.Context, combo string) error {
	key, modifiers, err := parseCombo(combo)
	if err != nil {
		return err
	}
	if err := robotgo.KeyTap(key, modifiers...); err != nil {
		return fmt.Errorf("failed to send key combo: %w", err)
	}
	return nil
}

// Close is a no-op; robotgo holds no per-controller resources
func (c *Controller) Close() error {
	return nil
}

// Provider implements the display.Provider interface for robotgo
type Provider struct{}

var _ display.Provider = (*Provider)(nil)

// NewProvider creates a new robotgo provider
func NewProvider() *Provider {
	return &Provider{}
}

// GetController returns a robotgo controller. robotgo always drives the main display.
func (p *Provider) GetController(displayName string) (display.DisplayController, error) {
	return &Controller{}, nil
}

// Info returns information about the robotgo backend
func (p *Provider) Info() display.Info {
	return display.Info{
		Name:              "robot",
		Priority:          0,
		SupportsPress:     true,
		RequiresElevation: runtime.GOOS == "darwin",
	}
}

// IsAvailable reports whether robotgo can reach a desktop session
func (p *Provider) IsAvailable() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	default:
		return os.Getenv("DISPLAY") != ""
	}
}

func init() {
	display.Register(NewProvider())
}
