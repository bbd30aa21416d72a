package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

func (c *Core) gaussianBlur(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	sigma, ok := args.GetFloat("sigma")
	if !ok {
		return nil, ErrMissingArgument{Key: "sigma"}
	}
	return c.newNodeClip(
		src.VideoFormat,
		src.FrameCount,
		fmt.Sprintf("gblur=sigma=%s", formatFloat(sigma)),
		src,
	), nil
}
