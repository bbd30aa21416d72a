package filter

import (
	"context"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Depth converts the clip to the given bit depth and sample type using a
// point resize. A conversion to the clip's current depth and sample type is
// an identity and returns the clip as is, without touching the core.
func Depth(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	bitsPerSample int,
	sampleType types.SampleType,
) (plugin.Clip, error) {
	format := clip.Format()
	if !format.IsZero() && format.BitsPerSample == bitsPerSample && format.SampleType == sampleType {
		return clip, nil
	}
	return invoke(ctx, core, plugin.NamespaceResize, plugin.FuncPoint, types.FilterOptions{
		{Key: plugin.KeyClip, Value: clip},
		{Key: "format", Value: format.WithDepth(bitsPerSample, sampleType)},
	})
}
