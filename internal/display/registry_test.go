package display_test

import (
	"testing"

	display "github.com/inference-gateway/deskcast/internal/display"
	displayMocks "github.com/inference-gateway/deskcast/tests/mocks/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProvider(name string, priority int, available bool) *displayMocks.FakeProvider {
	p := &displayMocks.FakeProvider{}
	p.InfoReturns(display.Info{Name: name, Priority: priority})
	p.IsAvailableReturns(available)
	return p
}

func TestDetectDisplay(t *testing.T) {
	display.ClearProviders()
	defer display.ClearProviders()

	_, err := display.DetectDisplay()
	assert.Error(t, err)

	display.Register(fakeProvider("robot", 0, true))
	display.Register(fakeProvider("x11", 10, true))
	display.Register(fakeProvider("offline", 100, false))

	p, err := display.DetectDisplay()
	require.NoError(t, err)
	assert.Equal(t, "x11", p.Info().Name)
	assert.Len(t, display.GetAllProviders(), 3)
}

func TestDetectDisplay_TiesGoToFirstRegistered(t *testing.T) {
	display.ClearProviders()
	defer display.ClearProviders()

	display.Register(fakeProvider("first", 5, true))
	display.Register(fakeProvider("second", 5, true))

	p, err := display.DetectDisplay()
	require.NoError(t, err)
	assert.Equal(t, "first", p.Info().Name)
}

func TestSelect(t *testing.T) {
	display.ClearProviders()
	defer display.ClearProviders()

	display.Register(fakeProvider("x11", 10, false))
	display.Register(fakeProvider("robot", 0, true))

	p, err := display.Select("")
	require.NoError(t, err)
	assert.Equal(t, "robot", p.Info().Name)

	p, err = display.Select("robot")
	require.NoError(t, err)
	assert.Equal(t, "robot", p.Info().Name)

	_, err = display.Select("x11")
	assert.ErrorContains(t, err, "not available")

	_, err = display.Select("wayland")
	assert.ErrorContains(t, err, "unknown display backend")
	assert.Nil(t, display.GetProvider("wayland"))
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		input    string
		expected display.MouseButton
		wantErr  bool
	}{
		{input: "", expected: display.MouseButtonLeft},
		{input: "left", expected: display.MouseButtonLeft},
		{input: "Middle", expected: display.MouseButtonMiddle},
		{input: "right", expected: display.MouseButtonRight},
		{input: "fourth", expected: display.MouseButtonLeft, wantErr: true},
	}

	for _, tt := range tests {
		button, err := display.ParseMouseButton(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
		}
		assert.Equal(t, tt.expected, button, tt.input)
	}

	assert.Equal(t, "unknown", display.MouseButton(9).String())
}

func TestParseScrollDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected display.ScrollDirection
		wantErr  bool
	}{
		{input: "", expected: display.ScrollDown},
		{input: "up", expected: display.ScrollUp},
		{input: "DOWN", expected: display.ScrollDown},
		{input: "left", expected: display.ScrollLeft},
		{input: "right", expected: display.ScrollRight},
		{input: "horizontal", expected: display.ScrollDown, wantErr: true},
	}

	for _, tt := range tests {
		direction, err := display.ParseScrollDirection(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
		}
		assert.Equal(t, tt.expected, direction, tt.input)
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, display.InRange(0, 0))
	assert.True(t, display.InRange(display.MaxCoordinate, display.MinCoordinate))
	assert.False(t, display.InRange(40000, 0))
	assert.False(t, display.InRange(0, display.MinCoordinate-1))
}
