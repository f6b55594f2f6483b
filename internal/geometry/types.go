package geometry

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// Point is a location in either element space or source space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Image converts the point to an image.Point.
// Callers check IsFinite and the target coordinate range first; converting NaN, Inf or a
// value outside the int range is implementation defined.
func (p Point) Image() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is the width and height of an element or of the source content
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Aspect returns width divided by height
func (s Size) Aspect() float64 {
	return s.Width / s.Height
}

// Contains reports whether a source-space point lies on the pixel grid of s.
// Inside means the half-open box [0, width) x [0, height), so an integral point is
// inside exactly when Clamp leaves it unchanged.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// IsValid reports whether both extents are finite and strictly positive
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0 && !math.IsInf(s.Width, 1) && !math.IsInf(s.Height, 1)
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// ParseSize parses a "WIDTHxHEIGHT" string such as "1920x1080"
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}

	size := Size{Width: w, Height: h}
	if !size.IsValid() {
		return Size{}, fmt.Errorf("invalid size %q: width and height must be positive", s)
	}
	return size, nil
}

// FitMode selects how source content is laid out inside an element
type FitMode string

const (
	// FitContain scales uniformly and letterboxes the constrained axis
	FitContain FitMode = "contain"
	// FitFill stretches each axis independently, no letterbox
	FitFill FitMode = "fill"
)

// ParseFitMode parses a fit mode name, defaulting to contain for an empty string
func ParseFitMode(s string) (FitMode, error) {
	switch FitMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FitContain:
		return FitContain, nil
	case FitFill:
		return FitFill, nil
	default:
		return "", fmt.Errorf("unknown fit mode %q (must be 'contain' or 'fill')", s)
	}
}
