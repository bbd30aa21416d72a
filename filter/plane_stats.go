package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// PlaneStats attaches per-frame statistics (average, minimum, maximum) to
// the clip. Downstream filters read them as frame properties.
func PlaneStats(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceStd, plugin.FuncPlaneStats, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
	})
}
