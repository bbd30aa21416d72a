package mem

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// rangeMask computes the local luminance range: the difference between
// the 3x3 dilation and erosion, each applied radius times. The chroma
// radius applies to planes 1 and 2; a radius of zero leaves the plane
// untouched.
func (c *Core) rangeMask(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	radius, ok := args.GetInt("rad")
	if !ok {
		return nil, ErrMissingArgument{Key: "rad"}
	}
	if radius < 1 {
		return nil, fmt.Errorf("the radius must be at least 1, got %d", radius)
	}
	radiusChroma, _ := args.GetInt("radc")

	return c.mapPlanes(src, func(_, planeIdx int, plane Plane) (Plane, error) {
		planeRadius := radius
		if planeIdx > 0 {
			planeRadius = radiusChroma
		}
		if planeRadius < 1 {
			return plane.Clone(), nil
		}

		dilated, eroded := plane, plane
		for i := int64(0); i < planeRadius; i++ {
			dilated = morph(dilated, func(a, b int) bool { return b > a })
			eroded = morph(eroded, func(a, b int) bool { return b < a })
		}

		result := plane.CloneEmpty()
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				result.SetSample(x, y, dilated.Sample(x, y)-eroded.Sample(x, y))
			}
		}
		return result, nil
	})
}

// morph applies one 3x3 min/max pass; better decides whether a neighbor
// replaces the current extreme.
func morph(plane Plane, better func(a, b int) bool) Plane {
	result := plane.CloneEmpty()
	bounds := plane.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			extreme := plane.Sample(x, y)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := sampleClamped(plane, x+dx, y+dy)
					if better(extreme, v) {
						extreme = v
					}
				}
			}
			result.SetSample(x, y, extreme)
		}
	}
	return result
}
