package lavfi

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// nlMeans translates the OpenCL non-local-means denoiser onto 'nlmeans'.
// The spatial window maps directly (research radius a becomes r=2a+1);
// the temporal radius d has no 'nlmeans' counterpart and is dropped.
func (c *Core) nlMeans(
	ctx context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}

	values := []string{}
	if h, ok := args.GetFloat("h"); ok {
		values = append(values, "s="+formatFloat(h))
	}
	if a, ok := args.GetInt("a"); ok {
		values = append(values, fmt.Sprintf("r=%d", 2*a+1))
	}
	if d, ok := args.GetInt("d"); ok && d > 0 {
		logger.Debugf(ctx, "nlmeans has no temporal window, dropping d=%d", d)
	}

	expr := "nlmeans"
	if len(values) > 0 {
		expr += "=" + strings.Join(values, ":")
	}
	return c.newNodeClip(src.VideoFormat, src.FrameCount, expr, src), nil
}
