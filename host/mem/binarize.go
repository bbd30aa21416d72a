package mem

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// binarize maps every sample at or above the threshold to the plane's
// peak and everything below to zero.
func (c *Core) binarize(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	threshold, ok := args.GetFloat("threshold")
	if !ok {
		return nil, ErrMissingArgument{Key: "threshold"}
	}

	return c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
		result := plane.CloneEmpty()
		peak := plane.Peak()
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if float64(plane.Sample(x, y)) >= threshold {
					result.SetSample(x, y, peak)
				}
			}
		}
		return result, nil
	})
}
