package pointer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	config "github.com/inference-gateway/deskcast/config"
	display "github.com/inference-gateway/deskcast/internal/display"
	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	zap "go.uber.org/zap"
)

var (
	ErrUnknownEvent     = errors.New("unknown pointer event type")
	ErrUnknownButton    = errors.New("unknown mouse button")
	ErrUnknownDirection = errors.New("unknown scroll direction")
	ErrNonFinite        = errors.New("mapped coordinates are not finite")
	ErrOutOfRange       = errors.New("mapped coordinates are outside the display coordinate range")
	ErrNoController     = errors.New("no pointer controller available")
	ErrInvalidSize      = errors.New("invalid element size")
	ErrEmptyInput       = errors.New("keyboard event has nothing to send")
	ErrRateLimited      = errors.New("pointer rate limit exceeded")
)

// EventType names what a viewer asks the host to do
type EventType string

const (
	EventMove   EventType = "move"
	EventClick  EventType = "click"
	EventDown   EventType = "down"
	EventUp     EventType = "up"
	EventScroll EventType = "scroll"
	EventKey    EventType = "key"
	EventText   EventType = "text"
)

// Positional reports whether the event carries an element-space position
func (t EventType) Positional() bool {
	switch t {
	case EventMove, EventClick, EventDown, EventUp, EventScroll:
		return true
	default:
		return false
	}
}

// Event is an input event captured in element space by a viewer
type Event struct {
	Type          EventType
	X             float64
	Y             float64
	ElementWidth  float64
	ElementHeight float64
	// SourceWidth and SourceHeight are optional; the host screen size is used when unset
	SourceWidth  float64
	SourceHeight float64
	Button       string
	// Clicks counts button clicks, or wheel notches for scroll events
	Clicks    int
	Direction string
	// Key is a key combination such as "enter" or "ctrl+c"
	Key  string
	Text string
}

// Result describes what was dispatched to the host.
// Point, Mapped and Clamped are only set for positional events.
type Result struct {
	Point   geometry.Point
	Mapped  geometry.Point
	Clamped bool
	Backend string
}

// Service maps viewer input events onto the host screen
type Service struct {
	mu         sync.Mutex
	controller display.DisplayController
	backend    string
	mode       geometry.FitMode
	clamp      bool
	limiter    *RateLimiter
}

// NewService creates a pointer service dispatching to controller
func NewService(cfg *config.Config, controller display.DisplayController, backend string) *Service {
	return &Service{
		controller: controller,
		backend:    backend,
		mode:       cfg.FitMode(),
		clamp:      cfg.Pointer.Clamp,
		limiter:    NewRateLimiter(cfg.Pointer.RateLimit),
	}
}

// Handle executes ev on the host. Positional events are mapped to source space
// first; mapping and validation errors are returned before anything is dispatched.
func (s *Service) Handle(ctx context.Context, ev Event) (*Result, error) {
	if !ev.Type.Positional() {
		return s.handleKeyboard(ctx, ev)
	}

	button, direction, err := s.validate(ev)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		return nil, ErrNoController
	}

	source, err := s.sourceSize(ctx, ev)
	if err != nil {
		return nil, err
	}

	element := geometry.Size{Width: ev.ElementWidth, Height: ev.ElementHeight}
	mapped := geometry.Map(s.mode, geometry.Point{X: ev.X, Y: ev.Y}, element, source)
	if !mapped.IsFinite() {
		return nil, fmt.Errorf("%w: %s from element %s and source %s", ErrNonFinite, mapped, element, source)
	}

	target := mapped
	if s.clamp {
		target = geometry.Clamp(mapped, source)
	}

	// Checked on the float so the int conversion below is always defined
	if !inRange(target) {
		return nil, fmt.Errorf("%w: %s not within [%d, %d]", ErrOutOfRange, target, display.MinCoordinate, display.MaxCoordinate)
	}

	result := &Result{
		Point:   target,
		Mapped:  mapped,
		Clamped: target != mapped,
		Backend: s.backend,
	}

	if ev.Type != EventMove {
		if err := s.limiter.CheckAndRecord(ev.Type); err != nil {
			return nil, err
		}
	}

	if err := s.dispatch(ctx, ev, button, direction, target.Image()); err != nil {
		return nil, err
	}

	logger.L(ctx).Debug("Pointer event dispatched",
		zap.String("type", string(ev.Type)),
		zap.Float64("element_x", ev.X),
		zap.Float64("element_y", ev.Y),
		zap.Int("source_x", int(target.X)),
		zap.Int("source_y", int(target.Y)),
		zap.Bool("clamped", result.Clamped),
		zap.String("mode", string(s.mode)),
	)

	return result, nil
}

// Close releases the underlying controller
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		return nil
	}
	err := s.controller.Close()
	s.controller = nil
	return err
}

func (s *Service) handleKeyboard(ctx context.Context, ev Event) (*Result, error) {
	switch ev.Type {
	case EventKey:
		if ev.Key == "" {
			return nil, fmt.Errorf("%w: key is empty", ErrEmptyInput)
		}
	case EventText:
		if ev.Text == "" {
			return nil, fmt.Errorf("%w: text is empty", ErrEmptyInput)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		return nil, ErrNoController
	}

	if err := s.limiter.CheckAndRecord(ev.Type); err != nil {
		return nil, err
	}

	if ev.Type == EventKey {
		if err := s.controller.SendKeyCombo(ctx, ev.Key); err != nil {
			return nil, fmt.Errorf("failed to send key %q: %w", ev.Key, err)
		}
	} else {
		if err := s.controller.TypeText(ctx, ev.Text); err != nil {
			return nil, fmt.Errorf("failed to type text: %w", err)
		}
	}

	logger.L(ctx).Debug("Keyboard event dispatched",
		zap.String("type", string(ev.Type)),
		zap.String("key", ev.Key),
		zap.Int("text_length", len([]rune(ev.Text))),
	)

	return &Result{Backend: s.backend}, nil
}

func (s *Service) validate(ev Event) (display.MouseButton, display.ScrollDirection, error) {
	button, err := display.ParseMouseButton(ev.Button)
	if err != nil {
		return display.MouseButtonLeft, "", fmt.Errorf("%w: %q", ErrUnknownButton, ev.Button)
	}

	var direction display.ScrollDirection
	if ev.Type == EventScroll {
		direction, err = display.ParseScrollDirection(ev.Direction)
		if err != nil {
			return button, "", fmt.Errorf("%w: %q", ErrUnknownDirection, ev.Direction)
		}
	}

	element := geometry.Size{Width: ev.ElementWidth, Height: ev.ElementHeight}
	if !element.IsValid() {
		return button, direction, fmt.Errorf("%w: %s", ErrInvalidSize, element)
	}

	return button, direction, nil
}

func (s *Service) sourceSize(ctx context.Context, ev Event) (geometry.Size, error) {
	if ev.SourceWidth > 0 && ev.SourceHeight > 0 {
		return geometry.Size{Width: ev.SourceWidth, Height: ev.SourceHeight}, nil
	}

	w, h, err := s.controller.ScreenSize(ctx)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("failed to get screen size: %w", err)
	}
	return geometry.Size{Width: float64(w), Height: float64(h)}, nil
}

func (s *Service) dispatch(ctx context.Context, ev Event, button display.MouseButton, direction display.ScrollDirection, p image.Point) error {
	if err := s.controller.MoveMouse(ctx, p.X, p.Y); err != nil {
		return fmt.Errorf("failed to move mouse: %w", err)
	}

	clicks := ev.Clicks
	if clicks <= 0 {
		clicks = 1
	}

	switch ev.Type {
	case EventClick:
		if err := s.controller.ClickMouse(ctx, button, clicks); err != nil {
			return fmt.Errorf("failed to click %s button: %w", button, err)
		}
	case EventDown:
		if err := s.controller.PressMouse(ctx, button); err != nil {
			return fmt.Errorf("failed to press %s button: %w", button, err)
		}
	case EventUp:
		if err := s.controller.ReleaseMouse(ctx, button); err != nil {
			return fmt.Errorf("failed to release %s button: %w", button, err)
		}
	case EventScroll:
		if err := s.controller.ScrollMouse(ctx, clicks, direction); err != nil {
			return fmt.Errorf("failed to scroll %s: %w", direction, err)
		}
	}

	return nil
}

func inRange(p geometry.Point) bool {
	return p.X >= display.MinCoordinate && p.X <= display.MaxCoordinate &&
		p.Y >= display.MinCoordinate && p.Y <= display.MaxCoordinate
}
