package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// SMDegrainParams is the tunable part of an SMDegrain invocation. Extra
// options are forwarded verbatim; the fixed prefilter wins on conflict.
type SMDegrainParams struct {
	Prefilter int
	Options   types.FilterOptions
}

// SMDegrain denoises the clip with the motion-compensated degrain wrapper.
func SMDegrain(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params SMDegrainParams,
) (plugin.Clip, error) {
	args := params.Options.Join(types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "prefilter", Value: params.Prefilter},
	})
	return invoke(ctx, core, plugin.NamespaceSMDegrain, plugin.FuncSMDegrain, args)
}
