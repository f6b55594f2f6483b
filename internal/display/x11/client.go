package x11

import (
	"fmt"
	"image"
	"os"
	"time"

	xgb "github.com/BurntSushi/xgb"
	xproto "github.com/BurntSushi/xgb/xproto"
	xtest "github.com/BurntSushi/xgb/xtest"
	xgbutil "github.com/BurntSushi/xgbutil"
	keybind "github.com/BurntSushi/xgbutil/keybind"
	xgraphics "github.com/BurntSushi/xgbutil/xgraphics"

	constants "github.com/inference-gateway/deskcast/internal/constants"
	display "github.com/inference-gateway/deskcast/internal/display"
	logger "github.com/inference-gateway/deskcast/internal/logger"
)

// Client wraps an X11 connection with XTEST input synthesis
type Client struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	screen  *xproto.ScreenInfo
	display string
}

// NewClient connects to display and initializes the XTEST extension
func NewClient(display string) (*Client, error) {
	// xgb prints connection noise to stderr; silence it for the dial only
	oldStderr := os.Stderr
	devNull, devErr := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if devErr == nil {
		os.Stderr = devNull
	}

	xu, err := xgbutil.NewConnDisplay(display)

	if devErr == nil {
		os.Stderr = oldStderr
		_ = devNull.Close()
	}

	if err != nil {
		logger.Error("Failed to connect to X11 display", "display", display, "error", err)
		return nil, fmt.Errorf("failed to connect to X11 display %s: %w", display, err)
	}

	if err := xtest.Init(xu.Conn()); err != nil {
		logger.Error("Failed to initialize XTEST extension", "error", err)
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to initialize XTEST extension: %w", err)
	}

	keybind.Initialize(xu)

	return &Client{
		xu:      xu,
		conn:    xu.Conn(),
		screen:  xproto.Setup(xu.Conn()).DefaultScreen(xu.Conn()),
		display: display,
	}, nil
}

// Close closes the X11 connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// ScreenSize returns the root window size in pixels
func (c *Client) ScreenSize() (int, int) {
	return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
}

// CaptureScreen grabs the whole root window
func (c *Client) CaptureScreen() (image.Image, error) {
	img, err := xgraphics.NewDrawable(c.xu, xproto.Drawable(c.screen.Root))
	if err != nil {
		return nil, fmt.Errorf("failed to capture root window: %w", err)
	}
	return img, nil
}

// CursorPosition returns the pointer position relative to the root window
func (c *Client) CursorPosition() (int, int, error) {
	pointer, err := xproto.QueryPointer(c.conn, c.screen.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}

// MoveMouse warps the pointer to absolute root window coordinates
func (c *Client) MoveMouse(x, y int) error {
	wx, wy, err := warpTarget(x, y)
	if err != nil {
		return err
	}

	err = xproto.WarpPointerChecked(
		c.conn,
		xproto.WindowNone,
		c.screen.Root,
		0, 0,
		0, 0,
		wx, wy,
	).Check()
	if err != nil {
		return fmt.Errorf("failed to move mouse: %w", err)
	}

	c.conn.Sync()
	return nil
}

// warpTarget narrows a position to the 16-bit coordinates the X protocol carries
func warpTarget(x, y int) (int16, int16, error) {
	if !display.InRange(x, y) {
		return 0, 0, fmt.Errorf("pointer position (%d, %d) is outside the X11 coordinate range [%d, %d]",
			x, y, display.MinCoordinate, display.MaxCoordinate)
	}
	return int16(x), int16(y), nil
}

// ClickMouse clicks button the given number of times at the current position
func (c *Client) ClickMouse(button byte, clicks int) error {
	for i := 0; i < clicks; i++ {
		if err := c.fakeButton(xproto.ButtonPress, button); err != nil {
			return err
		}
		time.Sleep(constants.PressReleaseDelay)

		if err := c.fakeButton(xproto.ButtonRelease, button); err != nil {
			return err
		}

		if i < clicks-1 {
			time.Sleep(constants.MultiClickDelay)
		}
	}

	c.conn.Sync()
	return nil
}

// PressMouse sends a button press without releasing it
func (c *Client) PressMouse(button byte) error {
	if err := c.fakeButton(xproto.ButtonPress, button); err != nil {
		return err
	}
	c.conn.Sync()
	return nil
}

// ReleaseMouse sends a button release
func (c *Client) ReleaseMouse(button byte) error {
	if err := c.fakeButton(xproto.ButtonRelease, button); err != nil {
		return err
	}
	c.conn.Sync()
	return nil
}

// ScrollMouse turns the wheel clicks notches. X11 reports wheel notches as
// presses of buttons 4 to 7.
func (c *Client) ScrollMouse(button byte, clicks int) error {
	for i := 0; i < clicks; i++ {
		if err := c.fakeButton(xproto.ButtonPress, button); err != nil {
			return err
		}
		if err := c.fakeButton(xproto.ButtonRelease, button); err != nil {
			return err
		}

		if i < clicks-1 {
			time.Sleep(constants.ScrollStepDelay)
		}
	}

	c.conn.Sync()
	return nil
}

// TypeText types text one keystroke at a time, holding Shift where the US layout needs it
func (c *Client) TypeText(text string) error {
	shift, err := c.keycode("Shift_L")
	if err != nil {
		return err
	}

	for _, char := range text {
		stroke := charKeystroke(char)
		code, err := c.keycode(stroke.keysym)
		if err != nil {
			logger.Debug("Skipping character without keycode", "char", string(char), "keysym", stroke.keysym)
			continue
		}

		if stroke.shift {
			if err := c.fakeKey(xproto.KeyPress, shift); err != nil {
				return err
			}
		}
		if err := c.tapKey(code); err != nil {
			return err
		}
		if stroke.shift {
			if err := c.fakeKey(xproto.KeyRelease, shift); err != nil {
				return err
			}
		}
		time.Sleep(constants.KeyStrokeDelay)
	}

	c.conn.Sync()
	return nil
}

// SendKeyCombo presses a key combination such as "ctrl+c" or "enter"
func (c *Client) SendKeyCombo(combo string) error {
	modifiers, key, err := parseCombo(combo)
	if err != nil {
		return err
	}

	modCodes := make([]xproto.Keycode, 0, len(modifiers))
	for _, mod := range modifiers {
		code, err := c.keycode(mod)
		if err != nil {
			return err
		}
		modCodes = append(modCodes, code)
	}

	code, err := c.keycode(key)
	if err != nil {
		return err
	}

	for _, mod := range modCodes {
		if err := c.fakeKey(xproto.KeyPress, mod); err != nil {
			return err
		}
		time.Sleep(constants.KeyStrokeDelay)
	}

	if err := c.tapKey(code); err != nil {
		return err
	}

	for i := len(modCodes) - 1; i >= 0; i-- {
		if err := c.fakeKey(xproto.KeyRelease, modCodes[i]); err != nil {
			return err
		}
		time.Sleep(constants.KeyStrokeDelay)
	}

	c.conn.Sync()
	return nil
}

func (c *Client) keycode(keysym string) (xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(c.xu, keysym)
	if len(codes) == 0 {
		return 0, fmt.Errorf("no keycode found for key: %s", keysym)
	}
	return codes[0], nil
}

func (c *Client) tapKey(code xproto.Keycode) error {
	if err := c.fakeKey(xproto.KeyPress, code); err != nil {
		return err
	}
	time.Sleep(constants.PressReleaseDelay)
	return c.fakeKey(xproto.KeyRelease, code)
}

func (c *Client) fakeKey(eventType byte, code xproto.Keycode) error {
	cookie := xtest.FakeInputChecked(c.conn, eventType, byte(code), 0, c.screen.Root, 0, 0, 0)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("failed to send key event: %w", err)
	}
	return nil
}

func (c *Client) fakeButton(eventType byte, button byte) error {
	cookie := xtest.FakeInputChecked(c.conn, eventType, button, 0, c.screen.Root, 0, 0, 0)
	if err := cookie.Check(); err != nil {
		if eventType == xproto.ButtonPress {
			return fmt.Errorf("failed to send button press: %w", err)
		}
		return fmt.Errorf("failed to send button release: %w", err)
	}
	return nil
}
