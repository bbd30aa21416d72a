package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/scale"
	"github.com/xaionaro-go/avdenoise/types"
)

// Binarize turns the clip into a hard mask: every sample at or above the
// threshold becomes the peak value, everything below becomes zero. The
// threshold is resolved against the clip's own format.
func Binarize(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	threshold scale.Threshold,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceStd, plugin.FuncBinarize, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "threshold", Value: threshold.For(clip.Format())},
	})
}
