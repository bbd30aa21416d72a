package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// binarize translates std.Binarize into a hard-threshold lookup. Integer
// depths go through 'lut'; float clips go through 'geq' (lut tables are
// integer-only).
func (c *Core) binarize(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	threshold, ok := args.GetFloat("threshold")
	if !ok {
		return nil, ErrMissingArgument{Key: "threshold"}
	}

	var expr string
	if src.VideoFormat.IsFloat() {
		expr = fmt.Sprintf("geq=lum='gte(lum(X,Y),%s)'", formatFloat(threshold))
	} else {
		expr = fmt.Sprintf("lut=y='gte(val,%s)*maxval'", formatFloat(threshold))
	}
	return c.newNodeClip(src.VideoFormat, src.FrameCount, expr, src), nil
}
