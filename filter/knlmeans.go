package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// KNLMeansCLParams is the tunable part of a KNLMeansCL invocation. Any
// extra options are forwarded to the plugin verbatim (after the fixed keys,
// so they cannot silently override the window geometry).
type KNLMeansCLParams struct {
	TemporalRadius int
	SearchRadius   int
	Options        types.FilterOptions
}

// KNLMeansCL denoises the clip with the OpenCL non-local means filter.
func KNLMeansCL(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params KNLMeansCLParams,
) (plugin.Clip, error) {
	args := params.Options.Join(types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "d", Value: params.TemporalRadius},
		{Key: "a", Value: params.SearchRadius},
	})
	return invoke(ctx, core, plugin.NamespaceKNLMeans, plugin.FuncKNLMeansCL, args)
}
