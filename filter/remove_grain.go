package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// PickRemoveGrainNamespace returns the RemoveGrain flavor matching the
// format's sample type: the single-precision implementation for float
// clips, the integer one otherwise.
func PickRemoveGrainNamespace(format types.VideoFormat) plugin.Namespace {
	if format.IsFloat() {
		return plugin.NamespaceRemoveGrainS
	}
	return plugin.NamespaceRemoveGrain
}

// RemoveGrain runs the spatial RemoveGrain cleaner with the given mode on
// the clip, choosing the implementation that matches the clip's sample type.
func RemoveGrain(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	mode int,
) (plugin.Clip, error) {
	return invoke(ctx, core, PickRemoveGrainNamespace(clip.Format()), plugin.FuncRemoveGrain, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "mode", Value: mode},
	})
}
