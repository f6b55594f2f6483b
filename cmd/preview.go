package cmd

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	imaging "github.com/inference-gateway/deskcast/internal/imaging"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	cobra "github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a source image letterboxed into an element",
	Long: `Render a PNG or JPEG screenshot contain-fitted into an element of the given size,
the way a viewer displays the stream. The output is always PNG.

Example:
  deskcast preview --in screen.png --out view.png --element 800x800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		elementFlag, _ := cmd.Flags().GetString("element")
		backgroundFlag, _ := cmd.Flags().GetString("background")

		element, err := geometry.ParseSize(elementFlag)
		if err != nil {
			return fmt.Errorf("invalid --element: %w", err)
		}

		background, err := parseHexColor(backgroundFlag)
		if err != nil {
			return fmt.Errorf("invalid --background: %w", err)
		}

		if err := renderPreview(in, out, int(element.Width), int(element.Height), background); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", out, element)
		return nil
	},
}

func init() {
	previewCmd.Flags().String("in", "", "source image (PNG or JPEG)")
	previewCmd.Flags().String("out", "", "output PNG path")
	previewCmd.Flags().String("element", "", "element size as WxH")
	previewCmd.Flags().String("background", "#000000", "padding colour as #RRGGBB")
	_ = previewCmd.MarkFlagRequired("in")
	_ = previewCmd.MarkFlagRequired("out")
	_ = previewCmd.MarkFlagRequired("element")

	rootCmd.AddCommand(previewCmd)
}

func renderPreview(inPath, outPath string, elementWidth, elementHeight int, background color.Color) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode source image: %w", err)
	}

	dst, err := imaging.Letterbox(src, elementWidth, elementHeight, background)
	if err != nil {
		return err
	}

	data, err := imaging.EncodePNG(dst)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	bounds := src.Bounds()
	logger.Debug("Rendered preview",
		"format", format,
		"source", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"content", imaging.ContentRect(bounds.Dx(), bounds.Dy(), elementWidth, elementHeight).String(),
	)

	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
