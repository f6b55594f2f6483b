package geometry

import "math"

// Fit describes where source content lands inside an element under contain fitting
type Fit struct {
	DisplayWidth  float64
	DisplayHeight float64
	OffsetX       float64
	OffsetY       float64
}

// ContainFit computes the displayed size and letterbox offsets of source inside element.
// An element relatively wider than the source is letterboxed left and right; otherwise
// (taller or equal aspect) it is letterboxed top and bottom.
func ContainFit(element, source Size) Fit {
	sourceAspect := source.Aspect()
	elementAspect := element.Aspect()

	if elementAspect > sourceAspect {
		displayHeight := element.Height
		displayWidth := displayHeight * sourceAspect
		return Fit{
			DisplayWidth:  displayWidth,
			DisplayHeight: displayHeight,
			OffsetX:       (element.Width - displayWidth) / 2,
			OffsetY:       0,
		}
	}

	displayWidth := element.Width
	displayHeight := displayWidth / sourceAspect
	return Fit{
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
		OffsetX:       0,
		OffsetY:       (element.Height - displayHeight) / 2,
	}
}

// Contains reports whether an element-space point lies on the displayed content.
// Like Size.Contains the box is half-open: the far edges belong to the padding.
func (f Fit) Contains(p Point) bool {
	return p.X >= f.OffsetX && p.X < f.OffsetX+f.DisplayWidth &&
		p.Y >= f.OffsetY && p.Y < f.OffsetY+f.DisplayHeight
}

// ElementToSource converts a point in the coordinate space of an element that displays
// the source with contain fitting into the corresponding point in source space.
//
// The letterbox offsets are removed first, then each axis is scaled from displayed size
// to source size and rounded half up. No clamping is performed: a point inside the
// letterbox padding maps outside [0, sourceWidth) x [0, sourceHeight). Zero or negative
// extents are not guarded and yield non-finite or meaningless results.
//
// Parameters:
//   - x, y: Point in element space (e.g. a click inside the viewer)
//   - elementWidth, elementHeight: Rendered size of the element
//   - sourceWidth, sourceHeight: Size of the original content
//
// Example:
//
//	Source 100x200 shown in a 300x300 element: content is 150x300 at offset (75, 0)
//	Element point (75, 0)    → Source point (0, 0)
//	Element point (225, 300) → Source point (100, 200)
func ElementToSource(x, y, elementWidth, elementHeight, sourceWidth, sourceHeight float64) Point {
	fit := ContainFit(
		Size{Width: elementWidth, Height: elementHeight},
		Size{Width: sourceWidth, Height: sourceHeight},
	)

	adjustedX := x - fit.OffsetX
	adjustedY := y - fit.OffsetY

	scaleX := sourceWidth / fit.DisplayWidth
	scaleY := sourceHeight / fit.DisplayHeight

	return Point{
		X: RoundHalfUp(adjustedX * scaleX),
		Y: RoundHalfUp(adjustedY * scaleY),
	}
}

// SourceToElement is the forward transform of ElementToSource. The result is not rounded.
func SourceToElement(x, y, sourceWidth, sourceHeight, elementWidth, elementHeight float64) Point {
	fit := ContainFit(
		Size{Width: elementWidth, Height: elementHeight},
		Size{Width: sourceWidth, Height: sourceHeight},
	)

	return Point{
		X: x*fit.DisplayWidth/sourceWidth + fit.OffsetX,
		Y: y*fit.DisplayHeight/sourceHeight + fit.OffsetY,
	}
}

// RoundHalfUp rounds to the nearest integer with ties toward positive infinity,
// so 2.5 becomes 3 and -2.5 becomes -2. NaN and infinities are returned unchanged.
func RoundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}
