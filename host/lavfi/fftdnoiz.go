package lavfi

import (
	"context"
	"strconv"
	"strings"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// fftDenoise translates the DFT-domain denoiser onto 'fftdnoiz'. The
// processing block size carries over as 'block' and the overlap size
// becomes the fractional 'overlap'.
func (c *Core) fftDenoise(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}

	values := []string{}
	if sigma, ok := args.GetFloat("sigma"); ok {
		values = append(values, "sigma="+formatFloat(sigma))
	}
	if blockSize, ok := args.GetInt("sbsize"); ok && blockSize > 0 {
		values = append(values, "block="+strconv.FormatInt(blockSize, 10))
		if overlapSize, ok := args.GetInt("sosize"); ok {
			values = append(values, "overlap="+formatFloat(float64(overlapSize)/float64(blockSize)))
		}
	}

	expr := "fftdnoiz"
	if len(values) > 0 {
		expr += "=" + strings.Join(values, ":")
	}
	return c.newNodeClip(src.VideoFormat, src.FrameCount, expr, src), nil
}
