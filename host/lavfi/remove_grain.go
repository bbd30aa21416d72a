package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

func (c *Core) removeGrain(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	mode, ok := args.GetInt("mode")
	if !ok {
		return nil, ErrMissingArgument{Key: "mode"}
	}
	return c.newNodeClip(
		src.VideoFormat,
		src.FrameCount,
		fmt.Sprintf("removegrain=m0=%d:m1=%d:m2=%d", mode, mode, mode),
		src,
	), nil
}
