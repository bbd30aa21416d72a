package lavfi

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// planeStats translates std.PlaneStats onto 'signalstats', which attaches
// the per-frame statistics as frame metadata for downstream filters.
func (c *Core) planeStats(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	return c.newNodeClip(src.VideoFormat, src.FrameCount, "signalstats", src), nil
}
