package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Prewitt runs the Prewitt edge detection operator over the clip.
func Prewitt(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
) (plugin.Clip, error) {
	return invoke(ctx, core, plugin.NamespaceStd, plugin.FuncPrewitt, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
	})
}
