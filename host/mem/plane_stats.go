package mem

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// planeStats attaches the first-plane statistics to every frame. The
// average is normalized to 0..1 so downstream consumers are depth
// agnostic.
func (c *Core) planeStats(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, len(src.Frames))
	for frameIdx, frame := range src.Frames {
		result := frame.clone()
		result.Stats = measurePlane(frame.Planes[0])
		frames[frameIdx] = result
	}
	return c.newClip(src.VideoFormat, frames), nil
}

func measurePlane(plane Plane) *PlaneStatistics {
	bounds := plane.Bounds()
	stats := &PlaneStatistics{Minimum: plane.Peak()}
	var sum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := plane.Sample(x, y)
			sum += uint64(v)
			if v < stats.Minimum {
				stats.Minimum = v
			}
			if v > stats.Maximum {
				stats.Maximum = v
			}
		}
	}
	numSamples := bounds.Dx() * bounds.Dy()
	if numSamples > 0 {
		stats.Average = float64(sum) / float64(numSamples) / float64(plane.Peak())
	}
	return stats
}
