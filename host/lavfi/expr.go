package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// expr translates std.Expr. Only the per-sample two-clip maximum (the one
// expression the composition layer emits) has a libavfilter rendition,
// as 'blend' in lighten mode.
func (c *Core) expr(
	_ context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	clips, err := clipsArg(args, plugin.KeyClips)
	if err != nil {
		return nil, err
	}
	expressionValue, ok := args.Get("expr")
	if !ok {
		return nil, ErrMissingArgument{Key: "expr"}
	}
	expression, ok := expressionValue.(string)
	if !ok {
		return nil, fmt.Errorf("'expr' must be a string, got %T", expressionValue)
	}

	if expression != "x y max" {
		return nil, ErrUnsupportedExpression{Expression: expression}
	}
	if len(clips) != 2 {
		return nil, fmt.Errorf("the expression references 2 clips, got %d", len(clips))
	}
	return c.newNodeClip(
		clips[0].VideoFormat,
		clips[0].FrameCount,
		"blend=all_mode=lighten",
		clips[0], clips[1],
	), nil
}
