package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	"golang.org/x/image/draw"
)

// snapEpsilon absorbs float error in the fit before snapping to whole pixels
const snapEpsilon = 1e-9

// Letterbox renders src contain-fitted and centered into a new elementWidth x elementHeight
// canvas. Padding is filled with background.
func Letterbox(src image.Image, elementWidth, elementHeight int, background color.Color) (*image.RGBA, error) {
	if elementWidth <= 0 || elementHeight <= 0 {
		return nil, fmt.Errorf("invalid element size %dx%d", elementWidth, elementHeight)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("source image is empty")
	}

	dst := image.NewRGBA(image.Rect(0, 0, elementWidth, elementHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	draw.ApproxBiLinear.Scale(dst, ContentRect(bounds.Dx(), bounds.Dy(), elementWidth, elementHeight), src, bounds, draw.Over, nil)

	return dst, nil
}

// ContentRect returns the pixel rectangle the source occupies inside the element.
// The float layout from geometry.ContainFit is rounded inward so the rectangle never
// spills into the padding.
func ContentRect(sourceWidth, sourceHeight, elementWidth, elementHeight int) image.Rectangle {
	fit := geometry.ContainFit(
		geometry.Size{Width: float64(elementWidth), Height: float64(elementHeight)},
		geometry.Size{Width: float64(sourceWidth), Height: float64(sourceHeight)},
	)

	minX := int(math.Ceil(fit.OffsetX - snapEpsilon))
	minY := int(math.Ceil(fit.OffsetY - snapEpsilon))
	maxX := int(math.Floor(fit.OffsetX + fit.DisplayWidth + snapEpsilon))
	maxY := int(math.Floor(fit.OffsetY + fit.DisplayHeight + snapEpsilon))

	return image.Rect(minX, minY, maxX, maxY).Intersect(image.Rect(0, 0, elementWidth, elementHeight))
}

// EncodePNG encodes img as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
