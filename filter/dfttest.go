package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// DFTTestParams is the tunable part of a DFTTest invocation. The overlap
// size is derived from the block size by the caller and wins on conflict
// with the forwarded options.
type DFTTestParams struct {
	OverlapSize int
	Options     types.FilterOptions
}

// DFTTest denoises the clip in the frequency domain.
func DFTTest(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params DFTTestParams,
) (plugin.Clip, error) {
	args := params.Options.Join(types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "sosize", Value: params.OverlapSize},
	})
	return invoke(ctx, core, plugin.NamespaceDFTTest, plugin.FuncDFTTest, args)
}
