package lavfi

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// rangeMask builds the local min/max range mask from morphology filters:
// the clip is split, dilated and eroded radius times, and the two
// extremes are differenced.
func (c *Core) rangeMask(
	ctx context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	radius, ok := args.GetInt("rad")
	if !ok {
		return nil, ErrMissingArgument{Key: "rad"}
	}
	if radius < 1 {
		return nil, fmt.Errorf("the radius must be at least 1, got %d", radius)
	}
	if radiusChroma, ok := args.GetInt("radc"); ok &&
		radiusChroma != radius && src.VideoFormat.ColorFamily != types.ColorFamilyGray {
		logger.Debugf(ctx, "the chroma planes reuse the luma radius %d (requested %d)", radius, radiusChroma)
	}

	repeat := func(filter string) string {
		chain := make([]string, radius)
		for i := range chain {
			chain[i] = filter
		}
		return strings.Join(chain, ",")
	}
	template := fmt.Sprintf(
		"[{in0}]split[{id}hi][{id}lo];"+
			"[{id}hi]%s[{id}max];"+
			"[{id}lo]%s[{id}min];"+
			"[{id}max][{id}min]blend=all_mode=difference[{out}]",
		repeat("dilation"), repeat("erosion"),
	)
	return c.newCompositeClip(src.VideoFormat, src.FrameCount, template, src), nil
}
