package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// AdaptiveGrainMask builds a luma-adaptive weighting mask from a clip that
// already carries plane statistics (see PlaneStats). Higher luma scaling
// pushes the mask harder towards the dark areas.
func AdaptiveGrainMask(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	lumaScaling float64,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceAdaptiveGrain, plugin.FuncMask, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "luma_scaling", Value: lumaScaling},
	})
}
