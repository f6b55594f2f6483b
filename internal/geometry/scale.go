package geometry

import "math"

// StretchToSource converts an element-space point to source space when the element shows
// the source force-resized to its exact dimensions (fill mode).
//
// Each axis is scaled independently, so aspect ratio mismatches are absorbed by the
// scale factors rather than by letterboxing.
//
// Example:
//
//	Element: 1024x768
//	Source: 2048x1536
//	Element point (512, 384) → Source point (1024, 768)
func StretchToSource(x, y, elementWidth, elementHeight, sourceWidth, sourceHeight float64) Point {
	xScale := sourceWidth / elementWidth
	yScale := sourceHeight / elementHeight

	return Point{
		X: RoundHalfUp(x * xScale),
		Y: RoundHalfUp(y * yScale),
	}
}

// Map converts an element-space point to source space using the given fit mode.
// Unknown modes fall back to contain fitting.
func Map(mode FitMode, p Point, element, source Size) Point {
	if mode == FitFill {
		return StretchToSource(p.X, p.Y, element.Width, element.Height, source.Width, source.Height)
	}
	return ElementToSource(p.X, p.Y, element.Width, element.Height, source.Width, source.Height)
}

// Clamp limits p to the pixel grid of source, [0, width-1] x [0, height-1]
func Clamp(p Point, source Size) Point {
	return Point{
		X: clampAxis(p.X, source.Width),
		Y: clampAxis(p.Y, source.Height),
	}
}

func clampAxis(v, extent float64) float64 {
	upper := math.Max(extent-1, 0)
	return math.Min(math.Max(v, 0), upper)
}
