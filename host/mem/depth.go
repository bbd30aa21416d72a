package mem

import (
	"context"
	"fmt"
	"math"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// point implements the depth-conversion subset of resize.Point: the
// target format must keep the geometry and color family and stay in the
// integer 8..16 bit window. Samples are rescaled peak-to-peak.
func (c *Core) point(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	formatValue, ok := args.Get("format")
	if !ok {
		return nil, ErrMissingArgument{Key: "format"}
	}
	format, ok := formatValue.(types.VideoFormat)
	if !ok {
		return nil, fmt.Errorf("'format' must be a video format, got %T", formatValue)
	}
	if err := validateSourceFormat(format); err != nil {
		return nil, fmt.Errorf("unable to convert to '%s': %w", format, err)
	}
	current := src.VideoFormat
	if format.WithDepth(current.BitsPerSample, current.SampleType) != current {
		return nil, fmt.Errorf("only depth conversion is supported, not '%s' to '%s'", current, format)
	}

	result, err := c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
		converted, err := NewPlane(format.BitsPerSample, plane.Bounds().Dx(), plane.Bounds().Dy())
		if err != nil {
			return nil, err
		}
		ratio := float64(converted.Peak()) / float64(plane.Peak())
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				converted.SetSample(x, y, int(math.Round(float64(plane.Sample(x, y))*ratio)))
			}
		}
		return converted, nil
	})
	if err != nil {
		return nil, err
	}
	result.VideoFormat = format
	return result, nil
}
