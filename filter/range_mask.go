package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// RangeMask builds a local min/max range mask over the clip. The radii
// control the luma and chroma neighborhood sizes.
func RangeMask(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	radius int,
	radiusChroma int,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceRangeMask, plugin.FuncRangeMask, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "rad", Value: radius},
		{Key: "radc", Value: radiusChroma},
	})
}
