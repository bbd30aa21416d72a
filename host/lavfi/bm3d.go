package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// bm3d translates the block-matching denoiser onto 'bm3d'. When a
// reference clip is given, it drives the final estimate directly; without
// one the basic estimate is computed first and fed back as the reference,
// which is what a full two-step run does.
func (c *Core) bm3d(
	ctx context.Context,
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
	if radius, ok := args.GetInt("radius1"); ok && radius > 0 {
		logger.Debugf(ctx, "bm3d is spatial-only here, dropping the temporal radius %d", radius)
	}

	if refValue, ok := args.Get(plugin.KeyRef); ok {
		ref, ok := refValue.(*Clip)
		if !ok {
			return nil, ErrForeignClip{Value: refValue}
		}
		return c.newNodeClip(
			src.VideoFormat,
			src.FrameCount,
			fmt.Sprintf("bm3d=sigma=%s:estim=final:ref=1", formatFloat(sigma)),
			src, ref,
		), nil
	}

	template := fmt.Sprintf(
		"[{in0}]split[{id}a][{id}b];"+
			"[{id}a]bm3d=sigma=%s:estim=basic[{id}basic];"+
			"[{id}b][{id}basic]bm3d=sigma=%s:estim=final:ref=1[{out}]",
		formatFloat(sigma), formatFloat(sigma),
	)
	return c.newCompositeClip(src.VideoFormat, src.FrameCount, template, src), nil
}
