package mem

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// expr evaluates the per-sample two-clip maximum (the one expression the
// composition layer emits).
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
	a, b := clips[0], clips[1]
	if a.VideoFormat != b.VideoFormat {
		return nil, fmt.Errorf("the inputs disagree on the format: '%s' vs '%s'", a.VideoFormat, b.VideoFormat)
	}
	if a.NumFrames() != b.NumFrames() {
		return nil, fmt.Errorf("the inputs disagree on the frame count: %d vs %d", a.NumFrames(), b.NumFrames())
	}

	return c.mapPlanes(a, func(frameIdx, planeIdx int, plane Plane) (Plane, error) {
		other := b.Frames[frameIdx].Planes[planeIdx]
		result := plane.CloneEmpty()
		bounds := plane.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				va, vb := plane.Sample(x, y), other.Sample(x, y)
				if vb > va {
					va = vb
				}
				result.SetSample(x, y, va)
			}
		}
		return result, nil
	})
}
