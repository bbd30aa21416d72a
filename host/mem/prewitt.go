package mem

import (
	"context"
	"math"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// prewitt computes the Prewitt gradient magnitude per sample, clamped to
// the plane's peak. Edges sample the nearest pixel.
func (c *Core) prewitt(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}

	return c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
		result := plane.CloneEmpty()
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				var gx, gy int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						v := sampleClamped(plane, x+dx, y+dy)
						gx += dx * v
						gy += dy * v
					}
				}
				magnitude := int(math.Round(math.Sqrt(float64(gx*gx + gy*gy))))
				result.SetSample(x, y, magnitude)
			}
		}
		return result, nil
	})
}

// sampleClamped reads a sample with nearest-edge extension.
func sampleClamped(p Plane, x, y int) int {
	bounds := p.Bounds()
	return p.Sample(
		clamp(x, bounds.Min.X, bounds.Max.X-1),
		clamp(y, bounds.Min.Y, bounds.Max.Y-1),
	)
}
