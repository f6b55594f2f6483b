package pointer

import (
	"context"
	"errors"
	"testing"

	config "github.com/inference-gateway/deskcast/config"
	display "github.com/inference-gateway/deskcast/internal/display"
	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	displayMocks "github.com/inference-gateway/deskcast/tests/mocks/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(mutate func(cfg *config.Config)) (*Service, *displayMocks.FakeDisplayController) {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	fake := &displayMocks.FakeDisplayController{}
	fake.ScreenSizeReturns(1920, 1080, nil)
	return NewService(cfg, fake, "fake"), fake
}

func TestService_Handle_Move(t *testing.T) {
	tests := []struct {
		name        string
		event       Event
		clamp       bool
		expectedX   int
		expectedY   int
		clamped     bool
		description string
	}{
		{
			name:        "Letterboxed viewer uses screen size",
			event:       Event{Type: EventMove, X: 400, Y: 400, ElementWidth: 800, ElementHeight: 800},
			clamp:       true,
			expectedX:   960,
			expectedY:   540,
			description: "Center of a square viewer maps to the center of a 1920x1080 screen",
		},
		{
			name:        "Explicit source size wins over screen size",
			event:       Event{Type: EventMove, X: 225, Y: 300, ElementWidth: 300, ElementHeight: 300, SourceWidth: 100, SourceHeight: 200},
			clamp:       false,
			expectedX:   100,
			expectedY:   200,
			description: "Bottom-right of the displayed content maps to the source extent without clamping",
		},
		{
			name:        "Padding click is clamped",
			event:       Event{Type: EventMove, X: 50, Y: 0, ElementWidth: 100, ElementHeight: 100, SourceWidth: 200, SourceHeight: 100},
			clamp:       true,
			expectedX:   100,
			expectedY:   0,
			clamped:     true,
			description: "Clicks above the content land on the first row",
		},
		{
			name:        "Padding click passes through unclamped",
			event:       Event{Type: EventMove, X: 50, Y: 0, ElementWidth: 100, ElementHeight: 100, SourceWidth: 200, SourceHeight: 100},
			clamp:       false,
			expectedX:   100,
			expectedY:   -50,
			description: "Without clamping the raw mapped coordinate is dispatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake := newTestService(func(cfg *config.Config) { cfg.Pointer.Clamp = tt.clamp })

			result, err := svc.Handle(context.Background(), tt.event)
			require.NoError(t, err, tt.description)

			require.Equal(t, 1, fake.MoveMouseCallCount())
			_, x, y := fake.MoveMouseArgsForCall(0)
			assert.Equal(t, tt.expectedX, x, tt.description)
			assert.Equal(t, tt.expectedY, y, tt.description)
			assert.Equal(t, tt.clamped, result.Clamped)
			assert.Equal(t, "fake", result.Backend)
			assert.Equal(t, 0, fake.ClickMouseCallCount())
		})
	}
}

func TestService_Handle_FillMode(t *testing.T) {
	svc, fake := newTestService(func(cfg *config.Config) { cfg.Pointer.FitMode = "fill" })

	result, err := svc.Handle(context.Background(), Event{Type: EventMove, X: 512, Y: 384, ElementWidth: 1024, ElementHeight: 768})
	require.NoError(t, err)

	_, x, y := fake.MoveMouseArgsForCall(0)
	assert.Equal(t, 960, x)
	assert.Equal(t, 540, y)
	assert.Equal(t, geometry.Point{X: 960, Y: 540}, result.Point)
}

func TestService_Handle_Buttons(t *testing.T) {
	ctx := context.Background()
	svc, fake := newTestService(nil)
	base := Event{X: 10, Y: 10, ElementWidth: 1920, ElementHeight: 1080}

	click := base
	click.Type = EventClick
	click.Button = "right"
	click.Clicks = 2
	_, err := svc.Handle(ctx, click)
	require.NoError(t, err)
	require.Equal(t, 1, fake.ClickMouseCallCount())
	_, button, clicks := fake.ClickMouseArgsForCall(0)
	assert.Equal(t, display.MouseButtonRight, button)
	assert.Equal(t, 2, clicks)

	single := base
	single.Type = EventClick
	_, err = svc.Handle(ctx, single)
	require.NoError(t, err)
	_, button, clicks = fake.ClickMouseArgsForCall(1)
	assert.Equal(t, display.MouseButtonLeft, button)
	assert.Equal(t, 1, clicks)

	down := base
	down.Type = EventDown
	_, err = svc.Handle(ctx, down)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.PressMouseCallCount())

	up := base
	up.Type = EventUp
	up.Button = "middle"
	_, err = svc.Handle(ctx, up)
	require.NoError(t, err)
	require.Equal(t, 1, fake.ReleaseMouseCallCount())
	_, button = fake.ReleaseMouseArgsForCall(0)
	assert.Equal(t, display.MouseButtonMiddle, button)

	assert.Equal(t, 4, fake.MoveMouseCallCount())
}

func TestService_Handle_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown event type", func(t *testing.T) {
		svc, fake := newTestService(nil)
		_, err := svc.Handle(ctx, Event{Type: "teleport", ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrUnknownEvent)
		assert.Equal(t, 0, fake.MoveMouseCallCount())
	})

	t.Run("unknown button", func(t *testing.T) {
		svc, _ := newTestService(nil)
		_, err := svc.Handle(ctx, Event{Type: EventClick, Button: "thumb", ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrUnknownButton)
	})

	t.Run("invalid element size", func(t *testing.T) {
		svc, _ := newTestService(nil)
		_, err := svc.Handle(ctx, Event{Type: EventMove, ElementWidth: 0, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("zero screen size is not finite", func(t *testing.T) {
		svc, fake := newTestService(nil)
		fake.ScreenSizeReturns(0, 0, nil)
		_, err := svc.Handle(ctx, Event{Type: EventMove, X: 5, Y: 5, ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrNonFinite)
		assert.Equal(t, 0, fake.MoveMouseCallCount())
	})

	t.Run("screen size failure", func(t *testing.T) {
		svc, fake := newTestService(nil)
		fake.ScreenSizeReturns(0, 0, errors.New("display gone"))
		_, err := svc.Handle(ctx, Event{Type: EventMove, ElementWidth: 10, ElementHeight: 10})
		assert.ErrorContains(t, err, "display gone")
	})

	t.Run("controller failure is wrapped", func(t *testing.T) {
		svc, fake := newTestService(nil)
		boom := errors.New("boom")
		fake.ClickMouseReturns(boom)
		_, err := svc.Handle(ctx, Event{Type: EventClick, ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown scroll direction", func(t *testing.T) {
		svc, fake := newTestService(nil)
		_, err := svc.Handle(ctx, Event{Type: EventScroll, Direction: "sideways", ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrUnknownDirection)
		assert.Equal(t, 0, fake.ScrollMouseCallCount())
	})

	t.Run("button actions are rate limited", func(t *testing.T) {
		svc, fake := newTestService(func(cfg *config.Config) {
			cfg.Pointer.RateLimit = config.RateLimitConfig{Enabled: true, MaxActions: 1, WindowSeconds: 60}
		})

		_, err := svc.Handle(ctx, Event{Type: EventClick, ElementWidth: 10, ElementHeight: 10})
		require.NoError(t, err)

		_, err = svc.Handle(ctx, Event{Type: EventClick, ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Equal(t, 1, fake.ClickMouseCallCount())

		_, err = svc.Handle(ctx, Event{Type: EventMove, ElementWidth: 10, ElementHeight: 10})
		assert.NoError(t, err, "moves are never limited")
	})

	t.Run("closed service", func(t *testing.T) {
		svc, fake := newTestService(nil)
		require.NoError(t, svc.Close())
		assert.Equal(t, 1, fake.CloseCallCount())
		require.NoError(t, svc.Close())

		_, err := svc.Handle(ctx, Event{Type: EventMove, ElementWidth: 10, ElementHeight: 10})
		assert.ErrorIs(t, err, ErrNoController)
	})
}

func TestService_Handle_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		clamp bool
	}{
		{
			name:  "Point beyond a tiny element maps past int16",
			event: Event{Type: EventClick, X: 20, Y: 0.5, ElementWidth: 1, ElementHeight: 1, SourceWidth: 1920, SourceHeight: 1080},
			clamp: false,
		},
		{
			name:  "Huge finite mapping",
			event: Event{Type: EventMove, X: 1e300, Y: 5, ElementWidth: 10, ElementHeight: 10, SourceWidth: 10, SourceHeight: 10},
			clamp: false,
		},
		{
			name:  "Clamped to a source wider than the coordinate range",
			event: Event{Type: EventMove, X: 90, Y: 5, ElementWidth: 100, ElementHeight: 10, SourceWidth: 100000, SourceHeight: 10000},
			clamp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake := newTestService(func(cfg *config.Config) { cfg.Pointer.Clamp = tt.clamp })

			_, err := svc.Handle(context.Background(), tt.event)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Equal(t, 0, fake.MoveMouseCallCount(), "nothing is dispatched for an unaddressable point")
			assert.Equal(t, 0, fake.ClickMouseCallCount())
		})
	}

	t.Run("Largest addressable coordinate is dispatched", func(t *testing.T) {
		svc, fake := newTestService(func(cfg *config.Config) { cfg.Pointer.Clamp = false })

		_, err := svc.Handle(context.Background(), Event{Type: EventMove, X: 32767, Y: 0, ElementWidth: 10, ElementHeight: 10, SourceWidth: 10, SourceHeight: 10})
		require.NoError(t, err)
		_, x, _ := fake.MoveMouseArgsForCall(0)
		assert.Equal(t, 32767, x)
	})
}

func TestService_Handle_Scroll(t *testing.T) {
	svc, fake := newTestService(nil)

	result, err := svc.Handle(context.Background(), Event{
		Type:          EventScroll,
		X:             400,
		Y:             400,
		ElementWidth:  800,
		ElementHeight: 800,
		Direction:     "up",
		Clicks:        3,
	})
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 960, Y: 540}, result.Point)

	require.Equal(t, 1, fake.MoveMouseCallCount(), "the wheel turns under the mapped position")
	require.Equal(t, 1, fake.ScrollMouseCallCount())
	_, clicks, direction := fake.ScrollMouseArgsForCall(0)
	assert.Equal(t, 3, clicks)
	assert.Equal(t, display.ScrollUp, direction)

	_, err = svc.Handle(context.Background(), Event{Type: EventScroll, ElementWidth: 10, ElementHeight: 10})
	require.NoError(t, err)
	_, clicks, direction = fake.ScrollMouseArgsForCall(1)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, display.ScrollDown, direction)
}

func TestService_Handle_Keyboard(t *testing.T) {
	ctx := context.Background()

	t.Run("key combo", func(t *testing.T) {
		svc, fake := newTestService(nil)

		result, err := svc.Handle(ctx, Event{Type: EventKey, Key: "ctrl+c"})
		require.NoError(t, err)
		assert.Equal(t, "fake", result.Backend)
		assert.Equal(t, geometry.Point{}, result.Point)

		require.Equal(t, 1, fake.SendKeyComboCallCount())
		_, combo := fake.SendKeyComboArgsForCall(0)
		assert.Equal(t, "ctrl+c", combo)
		assert.Equal(t, 0, fake.MoveMouseCallCount(), "keys do not move the pointer")
		assert.Equal(t, 0, fake.ScreenSizeCallCount())
	})

	t.Run("text", func(t *testing.T) {
		svc, fake := newTestService(nil)

		_, err := svc.Handle(ctx, Event{Type: EventText, Text: "Hello, world!"})
		require.NoError(t, err)

		require.Equal(t, 1, fake.TypeTextCallCount())
		_, text := fake.TypeTextArgsForCall(0)
		assert.Equal(t, "Hello, world!", text)
	})

	t.Run("empty input", func(t *testing.T) {
		svc, fake := newTestService(nil)

		_, err := svc.Handle(ctx, Event{Type: EventKey})
		assert.ErrorIs(t, err, ErrEmptyInput)
		_, err = svc.Handle(ctx, Event{Type: EventText})
		assert.ErrorIs(t, err, ErrEmptyInput)

		assert.Equal(t, 0, fake.SendKeyComboCallCount())
		assert.Equal(t, 0, fake.TypeTextCallCount())
	})

	t.Run("controller failure is wrapped", func(t *testing.T) {
		svc, fake := newTestService(nil)
		boom := errors.New("no keycode found for key: hyper")
		fake.SendKeyComboReturns(boom)

		_, err := svc.Handle(ctx, Event{Type: EventKey, Key: "hyper"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("keys share the action rate limit", func(t *testing.T) {
		svc, fake := newTestService(func(cfg *config.Config) {
			cfg.Pointer.RateLimit = config.RateLimitConfig{Enabled: true, MaxActions: 1, WindowSeconds: 60}
		})

		_, err := svc.Handle(ctx, Event{Type: EventText, Text: "a"})
		require.NoError(t, err)
		_, err = svc.Handle(ctx, Event{Type: EventKey, Key: "enter"})
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Equal(t, 0, fake.SendKeyComboCallCount())
	})

	t.Run("closed service", func(t *testing.T) {
		svc, _ := newTestService(nil)
		require.NoError(t, svc.Close())

		_, err := svc.Handle(ctx, Event{Type: EventKey, Key: "enter"})
		assert.ErrorIs(t, err, ErrNoController)
	})
}

func TestService_Handle_LogsDispatch(t *testing.T) {
	ctx, logs := logger.TestContext()
	svc, _ := newTestService(nil)

	_, err := svc.Handle(ctx, Event{Type: EventMove, X: 0, Y: 0, ElementWidth: 100, ElementHeight: 100, SourceWidth: 200, SourceHeight: 100})
	require.NoError(t, err)

	entries := logs.FilterMessage("Pointer event dispatched").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "move", fields["type"])
	assert.Equal(t, int64(0), fields["source_x"])
	assert.Equal(t, true, fields["clamped"])
}
