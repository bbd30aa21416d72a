// Package filter provides typed builders for single invocations of the
// external filter plugins (see the plugin package). Each builder resolves
// the plugin namespace on the given core, assembles the argument set and
// returns the derived clip handle.
package filter

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

func invoke(
	ctx context.Context,
	core plugin.Core,
	namespace plugin.Namespace,
	function plugin.Function,
	args types.FilterOptions,
) (plugin.Clip, error) {
	p, err := core.Plugin(ctx, namespace)
	if err != nil {
		return nil, err
	}
	clip, err := p.Invoke(ctx, function, args)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke %s.%s: %w", namespace, function, err)
	}
	return clip, nil
}
