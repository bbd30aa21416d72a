package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// ExprMax is the per-sample maximum of two clips in RPN form.
const ExprMax = "x y max"

// Expr evaluates a per-sample RPN expression over the given clips.
func Expr(
	ctx context.Context,
	core plugin.Core,
	clips []plugin.Clip,
	expression string,
) (plugin.Clip, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("no clips given")
	}
	return invoke(ctx, core, plugin.NamespaceStd, plugin.FuncExpr, types.FilterOptions{
		{Key: plugin.KeyClips, Value: clips},
		{Key: "expr", Value: expression},
	})
}

// MaxMerge combines two mask clips by taking the brighter sample of the two.
func MaxMerge(
	ctx context.Context,
	core plugin.Core,
	a plugin.Clip,
	b plugin.Clip,
) (plugin.Clip, error) {
	return Expr(ctx, core, []plugin.Clip{a, b}, ExprMax)
}
