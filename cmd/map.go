package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	display "github.com/inference-gateway/deskcast/internal/display"
	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	cobra "github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map an element point to source coordinates",
	Long: `Map a point captured on a letterboxed element back onto the source it displays.

The source size defaults to the host screen size reported by the display backend.

Examples:
  deskcast map --x 75 --y 0 --element 300x300 --source 100x200
  deskcast map --x 400 --y 400 --element 800x800 --clamp -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		x, _ := cmd.Flags().GetFloat64("x")
		y, _ := cmd.Flags().GetFloat64("y")
		elementFlag, _ := cmd.Flags().GetString("element")
		sourceFlag, _ := cmd.Flags().GetString("source")
		modeFlag, _ := cmd.Flags().GetString("mode")
		clamp, _ := cmd.Flags().GetBool("clamp")
		output, _ := cmd.Flags().GetString("output")

		if modeFlag == "" {
			modeFlag = cfg.Pointer.FitMode
		}

		opts, err := parseMapOptions(x, y, elementFlag, sourceFlag, modeFlag, clamp, output)
		if err != nil {
			return err
		}

		if sourceFlag == "" {
			source, err := screenSize(cmd.Context(), cfg.Pointer.Backend, cfg.Pointer.Display)
			if err != nil {
				return fmt.Errorf("no --source given and screen size unavailable: %w", err)
			}
			opts.Source = source
		}

		return runMap(cmd.OutOrStdout(), opts)
	},
}

func init() {
	mapCmd.Flags().Float64("x", 0, "element x coordinate")
	mapCmd.Flags().Float64("y", 0, "element y coordinate")
	mapCmd.Flags().String("element", "", "element size as WxH")
	mapCmd.Flags().String("source", "", "source size as WxH (default: host screen size)")
	mapCmd.Flags().String("mode", "", "fit mode: contain or fill (default from config)")
	mapCmd.Flags().Bool("clamp", false, "clamp the result onto the source")
	mapCmd.Flags().StringP("output", "o", "text", "output format: text or json")
	_ = mapCmd.MarkFlagRequired("element")

	rootCmd.AddCommand(mapCmd)
}

type mapOptions struct {
	Point   geometry.Point
	Element geometry.Size
	Source  geometry.Size
	Mode    geometry.FitMode
	Clamp   bool
	Output  string
}

type mapResult struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Mode    string  `json:"mode"`
	Inside  bool    `json:"inside"`
	Clamped bool    `json:"clamped"`
}

func parseMapOptions(x, y float64, element, source, mode string, clamp bool, output string) (mapOptions, error) {
	opts := mapOptions{
		Point:  geometry.Point{X: x, Y: y},
		Clamp:  clamp,
		Output: output,
	}

	size, err := geometry.ParseSize(element)
	if err != nil {
		return opts, fmt.Errorf("invalid --element: %w", err)
	}
	opts.Element = size

	if source != "" {
		size, err := geometry.ParseSize(source)
		if err != nil {
			return opts, fmt.Errorf("invalid --source: %w", err)
		}
		opts.Source = size
	}

	opts.Mode, err = geometry.ParseFitMode(mode)
	if err != nil {
		return opts, fmt.Errorf("invalid --mode: %w", err)
	}

	switch output {
	case "text", "json":
	default:
		return opts, fmt.Errorf("invalid --output %q: must be text or json", output)
	}

	return opts, nil
}

func runMap(out io.Writer, opts mapOptions) error {
	mapped := geometry.Map(opts.Mode, opts.Point, opts.Element, opts.Source)
	if !mapped.IsFinite() {
		return fmt.Errorf("mapping %s from element %s to source %s is not finite", opts.Point, opts.Element, opts.Source)
	}

	target := mapped
	if opts.Clamp {
		target = geometry.Clamp(mapped, opts.Source)
	}

	result := mapResult{
		X:       target.X,
		Y:       target.Y,
		Mode:    string(opts.Mode),
		Inside:  opts.Source.Contains(mapped),
		Clamped: target != mapped,
	}

	if opts.Output == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	_, err := fmt.Fprintln(out, target)
	return err
}

func screenSize(ctx context.Context, backend, displayName string) (geometry.Size, error) {
	provider, err := display.Select(backend)
	if err != nil {
		return geometry.Size{}, err
	}

	controller, err := provider.GetController(displayName)
	if err != nil {
		return geometry.Size{}, err
	}
	defer func() { _ = controller.Close() }()

	w, h, err := controller.ScreenSize(ctx)
	if err != nil {
		return geometry.Size{}, err
	}
	return geometry.Size{Width: float64(w), Height: float64(h)}, nil
}
