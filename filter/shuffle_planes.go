package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// ShufflePlanes rearranges planes of the given clips into a new clip of the
// requested color family. A plane index selects the source plane within the
// clip at the same position (the last clip repeats when fewer clips than
// planes are given, which mirrors the usual single-source shorthand).
func ShufflePlanes(
	ctx context.Context,
	core plugin.Core,
	clips []plugin.Clip,
	planes []int,
	colorFamily types.ColorFamily,
) (plugin.Clip, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("no clips given")
	}
	return invoke(ctx, core, plugin.NamespaceStd, plugin.FuncShufflePlanes, types.FilterOptions{
		{Key: plugin.KeyClips, Value: clips},
		{Key: "planes", Value: planes},
		{Key: "colorfamily", Value: colorFamily},
	})
}

// ExtractPlane returns the given plane of the clip as a grayscale clip.
func ExtractPlane(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	plane int,
) (plugin.Clip, error) {
	return ShufflePlanes(ctx, core, []plugin.Clip{clip}, []int{plane}, types.ColorFamilyGray)
}

// ExtractLuma returns the first plane of the clip as a grayscale clip.
func ExtractLuma(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
) (plugin.Clip, error) {
	return ExtractPlane(ctx, core, clip, 0)
}

// SplitPlanes returns each plane of the clip as a separate grayscale clip.
func SplitPlanes(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
) ([]plugin.Clip, error) {
	numPlanes := clip.Format().NumPlanes()
	if numPlanes == 0 {
		return nil, fmt.Errorf("unable to split '%s': the plane count is not determinable", clip)
	}
	result := make([]plugin.Clip, 0, numPlanes)
	for plane := 0; plane < numPlanes; plane++ {
		planeClip, err := ExtractPlane(ctx, core, clip, plane)
		if err != nil {
			return nil, fmt.Errorf("unable to extract plane %d: %w", plane, err)
		}
		result = append(result, planeClip)
	}
	return result, nil
}

// JoinPlanes assembles per-plane grayscale clips into a single clip of the
// requested color family. Plane index zero is taken from each source.
func JoinPlanes(
	ctx context.Context,
	core plugin.Core,
	planes []plugin.Clip,
	colorFamily types.ColorFamily,
) (plugin.Clip, error) {
	if len(planes) != colorFamily.NumPlanes() {
		return nil, fmt.Errorf("expected %d planes for %s, got %d", colorFamily.NumPlanes(), colorFamily, len(planes))
	}
	planeIndexes := make([]int, len(planes))
	return ShufflePlanes(ctx, core, planes, planeIndexes, colorFamily)
}
