package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// TNLMeansParams is the tunable part of a TNLMeans invocation. Extra
// options are forwarded verbatim; the fixed window radii win on conflict.
type TNLMeansParams struct {
	SearchRadiusX  int
	SearchRadiusY  int
	TemporalRadius int
	Options        types.FilterOptions
}

// TNLMeans denoises the clip with the CPU non-local means filter.
func TNLMeans(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params TNLMeansParams,
) (plugin.Clip, error) {
	args := params.Options.Join(types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "ax", Value: params.SearchRadiusX},
		{Key: "ay", Value: params.SearchRadiusY},
		{Key: "az", Value: params.TemporalRadius},
	})
	return invoke(ctx, core, plugin.NamespaceTNLMeans, plugin.FuncTNLMeans, args)
}
