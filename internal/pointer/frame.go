package pointer

import (
	"context"
	"fmt"
	"image/color"

	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	imaging "github.com/inference-gateway/deskcast/internal/imaging"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	zap "go.uber.org/zap"
)

// MaxFrameSide bounds each side of a letterboxed frame
const MaxFrameSide = 8192

// Frame is one PNG-encoded capture of the host screen
type Frame struct {
	PNG []byte
	// Width and Height are the encoded image size
	Width  int
	Height int
	// SourceWidth and SourceHeight are the captured screen size viewers map against
	SourceWidth  int
	SourceHeight int
}

// Capture grabs the host screen. When element is set the capture is letterboxed
// into an element-sized canvas exactly as a contain-fitted viewer would show it;
// a zero element returns the capture at source size.
func (s *Service) Capture(ctx context.Context, element geometry.Size) (*Frame, error) {
	letterbox := element != geometry.Size{}
	if letterbox && (!element.IsValid() || element.Width < 1 || element.Height < 1 ||
		element.Width > MaxFrameSide || element.Height > MaxFrameSide) {
		return nil, fmt.Errorf("%w: frame size %s must be between 1x1 and %dx%d", ErrInvalidSize, element, MaxFrameSide, MaxFrameSide)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		return nil, ErrNoController
	}

	img, err := s.controller.CaptureScreen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screen: %w", err)
	}

	bounds := img.Bounds()
	frame := &Frame{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
	}

	out := img
	if letterbox {
		boxed, err := imaging.Letterbox(img, int(element.Width), int(element.Height), color.Black)
		if err != nil {
			return nil, fmt.Errorf("failed to letterbox capture: %w", err)
		}
		out = boxed
		frame.Width = boxed.Bounds().Dx()
		frame.Height = boxed.Bounds().Dy()
	}

	frame.PNG, err = imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}

	logger.L(ctx).Debug("Screen frame captured",
		zap.Int("source_width", frame.SourceWidth),
		zap.Int("source_height", frame.SourceHeight),
		zap.Int("width", frame.Width),
		zap.Int("height", frame.Height),
		zap.Int("bytes", len(frame.PNG)),
	)

	return frame, nil
}
