package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// point translates resize.Point format conversions into a 'format'
// constraint; libavfilter inserts the actual conversion on configure.
func (c *Core) point(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	formatValue, ok := args.Get("format")
	if !ok {
		return nil, ErrMissingArgument{Key: "format"}
	}
	format, ok := formatValue.(types.VideoFormat)
	if !ok {
		return nil, fmt.Errorf("'format' must be a video format, got %T", formatValue)
	}
	name, err := PixelFormatName(format)
	if err != nil {
		return nil, fmt.Errorf("unable to convert to '%s': %w", format, err)
	}
	return c.newNodeClip(
		format,
		src.FrameCount,
		fmt.Sprintf("format=pix_fmts=%s", name),
		src,
	), nil
}
