package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementToSource(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		element  Size
		source   Size
		expected Point
	}{
		{
			name:     "Wider element - left edge of content",
			point:    Point{X: 75, Y: 0},
			element:  Size{Width: 300, Height: 300},
			source:   Size{Width: 100, Height: 200},
			expected: Point{X: 0, Y: 0},
		},
		{
			name:     "Wider element - bottom right of content",
			point:    Point{X: 225, Y: 300},
			element:  Size{Width: 300, Height: 300},
			source:   Size{Width: 100, Height: 200},
			expected: Point{X: 100, Y: 200},
		},
		{
			name:     "Taller element - top left of content",
			point:    Point{X: 0, Y: 25},
			element:  Size{Width: 100, Height: 100},
			source:   Size{Width: 200, Height: 100},
			expected: Point{X: 0, Y: 0},
		},
		{
			name:     "Taller element - bottom right of content",
			point:    Point{X: 100, Y: 75},
			element:  Size{Width: 100, Height: 100},
			source:   Size{Width: 200, Height: 100},
			expected: Point{X: 200, Y: 100},
		},
		{
			name:     "Matching aspect - pure linear scale",
			point:    Point{X: 480, Y: 270},
			element:  Size{Width: 960, Height: 540},
			source:   Size{Width: 1920, Height: 1080},
			expected: Point{X: 960, Y: 540},
		},
		{
			name:     "Matching aspect - downscale",
			point:    Point{X: 1000, Y: 300},
			element:  Size{Width: 2560, Height: 1440},
			source:   Size{Width: 1280, Height: 720},
			expected: Point{X: 500, Y: 150},
		},
		{
			name:     "Letterbox above content maps to negative row",
			point:    Point{X: 50, Y: 0},
			element:  Size{Width: 100, Height: 100},
			source:   Size{Width: 200, Height: 100},
			expected: Point{X: 100, Y: -50},
		},
		{
			name:     "Letterbox below content maps past last row",
			point:    Point{X: 50, Y: 100},
			element:  Size{Width: 100, Height: 100},
			source:   Size{Width: 200, Height: 100},
			expected: Point{X: 100, Y: 150},
		},
		{
			name:     "Letterbox left of content maps to negative column",
			point:    Point{X: 0, Y: 150},
			element:  Size{Width: 300, Height: 300},
			source:   Size{Width: 100, Height: 200},
			expected: Point{X: -50, Y: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ElementToSource(tt.point.X, tt.point.Y, tt.element.Width, tt.element.Height, tt.source.Width, tt.source.Height)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestElementToSource_CenterMapsToCenter(t *testing.T) {
	tests := []struct {
		name    string
		element Size
		source  Size
	}{
		{name: "Horizontal letterbox", element: Size{Width: 300, Height: 300}, source: Size{Width: 100, Height: 200}},
		{name: "Vertical letterbox", element: Size{Width: 100, Height: 100}, source: Size{Width: 200, Height: 100}},
		{name: "Full HD in 720p", element: Size{Width: 1280, Height: 720}, source: Size{Width: 1920, Height: 1080}},
		{name: "Full HD in portrait", element: Size{Width: 400, Height: 800}, source: Size{Width: 1920, Height: 1080}},
		{name: "Ultrawide in square", element: Size{Width: 500, Height: 500}, source: Size{Width: 3440, Height: 1440}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ElementToSource(
				tt.element.Width/2, tt.element.Height/2,
				tt.element.Width, tt.element.Height,
				tt.source.Width, tt.source.Height,
			)
			expected := Point{X: RoundHalfUp(tt.source.Width / 2), Y: RoundHalfUp(tt.source.Height / 2)}
			assert.Equal(t, expected, result)
		})
	}
}

func TestElementToSource_HalfValuesRoundUp(t *testing.T) {
	// 4x4 element over a 10x10 source scales by exactly 2.5
	tests := []struct {
		x, y     float64
		expected Point
	}{
		{x: 1, y: 3, expected: Point{X: 3, Y: 8}},
		{x: -1, y: -3, expected: Point{X: -2, Y: -7}},
		{x: 2, y: 0, expected: Point{X: 5, Y: 0}},
	}

	for _, tt := range tests {
		result := ElementToSource(tt.x, tt.y, 4, 4, 10, 10)
		assert.Equal(t, tt.expected, result, "element point (%g, %g)", tt.x, tt.y)
	}
}

func TestElementToSource_DegenerateExtents(t *testing.T) {
	t.Run("zero source height", func(t *testing.T) {
		result := ElementToSource(10, 10, 100, 100, 100, 0)
		assert.False(t, result.IsFinite())
	})

	t.Run("zero element width", func(t *testing.T) {
		result := ElementToSource(10, 10, 0, 100, 100, 100)
		assert.False(t, result.IsFinite())
	})

	t.Run("NaN input propagates", func(t *testing.T) {
		result := ElementToSource(math.NaN(), 10, 100, 100, 100, 100)
		assert.True(t, math.IsNaN(result.X))
		assert.Equal(t, 10.0, result.Y)
	})
}

func TestContainFit(t *testing.T) {
	t.Run("wider element letterboxes horizontally", func(t *testing.T) {
		fit := ContainFit(Size{Width: 300, Height: 300}, Size{Width: 100, Height: 200})
		assert.Equal(t, Fit{DisplayWidth: 150, DisplayHeight: 300, OffsetX: 75, OffsetY: 0}, fit)
	})

	t.Run("taller element letterboxes vertically", func(t *testing.T) {
		fit := ContainFit(Size{Width: 100, Height: 100}, Size{Width: 200, Height: 100})
		assert.Equal(t, Fit{DisplayWidth: 100, DisplayHeight: 50, OffsetX: 0, OffsetY: 25}, fit)
	})

	t.Run("equal aspect takes width constrained branch without padding", func(t *testing.T) {
		fit := ContainFit(Size{Width: 800, Height: 450}, Size{Width: 1920, Height: 1080})
		assert.Equal(t, 800.0, fit.DisplayWidth)
		assert.InDelta(t, 450.0, fit.DisplayHeight, 1e-9)
		assert.Equal(t, 0.0, fit.OffsetX)
		assert.InDelta(t, 0.0, fit.OffsetY, 1e-9)
	})
}

func TestFit_Contains(t *testing.T) {
	fit := ContainFit(Size{Width: 100, Height: 100}, Size{Width: 200, Height: 100})

	assert.True(t, fit.Contains(Point{X: 50, Y: 50}))
	assert.True(t, fit.Contains(Point{X: 0, Y: 25}))
	assert.True(t, fit.Contains(Point{X: 99.9, Y: 74.9}))
	assert.False(t, fit.Contains(Point{X: 100, Y: 75}), "far edges belong to the padding")
	assert.False(t, fit.Contains(Point{X: 50, Y: 10}))
	assert.False(t, fit.Contains(Point{X: 50, Y: 90}))
}

func TestInsideAgreesAcrossSpaces(t *testing.T) {
	element := Size{Width: 100, Height: 100}
	source := Size{Width: 200, Height: 100}
	fit := ContainFit(element, source)

	points := []Point{
		{X: 0, Y: 25},
		{X: 50, Y: 50},
		{X: 99, Y: 74},
		{X: 100, Y: 75},
		{X: 100, Y: 50},
		{X: 50, Y: 75},
		{X: 50, Y: 24},
		{X: -1, Y: 50},
	}

	for _, p := range points {
		mapped := ElementToSource(p.X, p.Y, element.Width, element.Height, source.Width, source.Height)
		assert.Equal(t, fit.Contains(p), source.Contains(mapped), "element %s maps to %s", p, mapped)
		assert.Equal(t, source.Contains(mapped), Clamp(mapped, source) == mapped, "element %s maps to %s", p, mapped)
	}
}

func TestSourceToElement_RoundTrip(t *testing.T) {
	source := Size{Width: 1920, Height: 1080}
	elements := []Size{
		{Width: 800, Height: 800},
		{Width: 1280, Height: 720},
		{Width: 2000, Height: 900},
	}
	points := []Point{{X: 0, Y: 0}, {X: 960, Y: 540}, {X: 1919, Y: 1079}, {X: 17, Y: 803}}

	for _, element := range elements {
		for _, p := range points {
			e := SourceToElement(p.X, p.Y, source.Width, source.Height, element.Width, element.Height)
			back := ElementToSource(e.X, e.Y, element.Width, element.Height, source.Width, source.Height)
			assert.Equal(t, p, back, "element %s, source point %s", element, p)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 0, expected: 0},
		{in: 0.49, expected: 0},
		{in: 0.5, expected: 1},
		{in: 2.5, expected: 3},
		{in: -0.5, expected: 0},
		{in: -2.5, expected: -2},
		{in: -2.51, expected: -3},
		{in: 7, expected: 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundHalfUp(tt.in), "RoundHalfUp(%g)", tt.in)
	}

	assert.True(t, math.IsNaN(RoundHalfUp(math.NaN())))
	assert.True(t, math.IsInf(RoundHalfUp(math.Inf(1)), 1))
	assert.True(t, math.IsInf(RoundHalfUp(math.Inf(-1)), -1))
}
