package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// BM3DParams configures a BM3D invocation. PSample selects the working
// sample precision of the wrapper, Radius1 the temporal radius of the basic
// estimate. Ref, when set, replaces the basic estimate entirely.
type BM3DParams struct {
	Sigma   float64
	PSample int
	Radius1 int
	Ref     plugin.Clip
}

// BM3D denoises the clip with block-matching and 3D filtering.
func BM3D(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params BM3DParams,
) (plugin.Clip, error) {
	args := types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "sigma", Value: params.Sigma},
		{Key: "psample", Value: params.PSample},
		{Key: "radius1", Value: params.Radius1},
	}
	if params.Ref != nil {
		args = args.With(plugin.KeyRef, params.Ref)
	}
	return invoke(ctx, core, plugin.NamespaceBM3D, plugin.FuncBM3D, args)
}
