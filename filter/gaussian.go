package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Gaussian blurs the clip with a Gaussian kernel of the given sigma.
func Gaussian(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	sigma float64,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceBilateral, plugin.FuncGaussian, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "sigma", Value: sigma},
	})
}
