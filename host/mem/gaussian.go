package mem

import (
	"context"
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// gaussianBlur blurs each plane with a Gaussian kernel. 8-bit planes go
// through bild's blur; deeper planes get a separable pass of our own,
// since bild's pipeline is 8-bit per channel.
func (c *Core) gaussianBlur(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	sigma, ok := args.GetFloat("sigma")
	if !ok {
		return nil, ErrMissingArgument{Key: "sigma"}
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("the sigma must be positive, got %v", sigma)
	}

	return c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
		if gray, ok := plane.(*gray8Plane); ok {
			blurred := blur.Gaussian(gray.Gray, sigma)
			result := plane.CloneEmpty()
			bounds := plane.Bounds()
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					result.SetSample(x, y, int(blurred.Pix[blurred.PixOffset(x, y)]))
				}
			}
			return result, nil
		}
		weights := gaussianWeights(sigma)
		return convolve(convolve(plane, weights, 1, 0), weights, 0, 1), nil
	})
}

func gaussianWeights(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range weights {
		d := float64(i - radius)
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// convolve runs one 1-d pass along (dx, dy) with nearest-edge extension.
func convolve(plane Plane, weights []float64, dx, dy int) Plane {
	radius := len(weights) / 2
	result := plane.CloneEmpty()
	bounds := plane.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			acc := 0.0
			for i, w := range weights {
				offset := i - radius
				acc += w * float64(sampleClamped(plane, x+offset*dx, y+offset*dy))
			}
			result.SetSample(x, y, int(math.Round(acc)))
		}
	}
	return result
}
