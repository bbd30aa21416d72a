package mem

import (
	"context"
	"fmt"
	"sort"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// removeGrain implements the RemoveGrain modes the mask pipelines use:
// the 3x3 median (4), the binomial smoothers (11, 12), the neighborhood
// averages (19, 20) and the opposing-pair clippers (21, 22). Mode 0 is a
// passthrough.
func (c *Core) removeGrain(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	mode, ok := args.GetInt("mode")
	if !ok {
		return nil, ErrMissingArgument{Key: "mode"}
	}

	var kernel func(plane Plane, x, y int) int
	switch mode {
	case 0:
		return c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
			return plane.Clone(), nil
		})
	case 4:
		kernel = medianKernel
	case 11, 12:
		kernel = binomialKernel
	case 19:
		kernel = neighborAverageKernel
	case 20:
		kernel = fullAverageKernel
	case 21, 22:
		kernel = pairClipKernel
	default:
		return nil, fmt.Errorf("mode %d is not implemented", mode)
	}

	return c.mapPlanes(src, func(_, _ int, plane Plane) (Plane, error) {
		result := plane.CloneEmpty()
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				result.SetSample(x, y, kernel(plane, x, y))
			}
		}
		return result, nil
	})
}

func medianKernel(plane Plane, x, y int) int {
	window := make([]int, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			window = append(window, sampleClamped(plane, x+dx, y+dy))
		}
	}
	sort.Ints(window)
	return window[4]
}

// binomialKernel is the [1 2 1; 2 4 2; 1 2 1]/16 smoother.
func binomialKernel(plane Plane, x, y int) int {
	weights := [3][3]int{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}}
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			sum += weights[dy+1][dx+1] * sampleClamped(plane, x+dx, y+dy)
		}
	}
	return (sum + 8) / 16
}

func neighborAverageKernel(plane Plane, x, y int) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			sum += sampleClamped(plane, x+dx, y+dy)
		}
	}
	return (sum + 4) / 8
}

func fullAverageKernel(plane Plane, x, y int) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			sum += sampleClamped(plane, x+dx, y+dy)
		}
	}
	return (sum + 4) / 9
}

// pairClipKernel clamps the center sample into the range spanned by the
// averages of the four opposing neighbor pairs.
func pairClipKernel(plane Plane, x, y int) int {
	pairs := [4][2][2]int{
		{{0, -1}, {0, 1}},
		{{-1, 0}, {1, 0}},
		{{-1, -1}, {1, 1}},
		{{1, -1}, {-1, 1}},
	}
	lo, hi := plane.Peak(), 0
	for _, pair := range pairs {
		a := sampleClamped(plane, x+pair[0][0], y+pair[0][1])
		b := sampleClamped(plane, x+pair[1][0], y+pair[1][1])
		avg := (a + b + 1) / 2
		if avg < lo {
			lo = avg
		}
		if avg > hi {
			hi = avg
		}
	}
	return clamp(plane.Sample(x, y), lo, hi)
}
