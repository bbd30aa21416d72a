//go:build with_cv
// +build with_cv

package cv

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/host/mem"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Plugin implements the OpenCV-backed namespaces.
type Plugin struct {
	Core            *Core
	PluginNamespace plugin.Namespace
}

var _ plugin.Plugin = (*Plugin)(nil)

func (p *Plugin) String() string {
	return fmt.Sprintf("CV(%s)", p.PluginNamespace)
}

func (p *Plugin) Namespace() plugin.Namespace {
	return p.PluginNamespace
}

func (p *Plugin) Invoke(
	ctx context.Context,
	function plugin.Function,
	args types.FilterOptions,
) (_ret plugin.Clip, _err error) {
	logger.Debugf(ctx, "Invoke(ctx, %s.%s, {%s})", p.PluginNamespace, function, args)
	defer func() {
		logger.Debugf(ctx, "/Invoke(ctx, %s.%s): %v %v", p.PluginNamespace, function, _ret, _err)
	}()
	switch p.PluginNamespace {
	case plugin.NamespaceKNLMeans:
		if function == plugin.FuncKNLMeansCL {
			return p.Core.nlMeans(ctx, args)
		}
	case plugin.NamespaceTNLMeans:
		if function == plugin.FuncTNLMeans {
			return p.Core.nlMeans(ctx, args)
		}
	}
	return nil, mem.ErrUnknownFunction{Namespace: p.PluginNamespace, Function: function}
}

func clipArg(args types.FilterOptions, key string) (*mem.Clip, error) {
	v, ok := args.Get(key)
	if !ok {
		return nil, mem.ErrMissingArgument{Key: key}
	}
	c, ok := v.(*mem.Clip)
	if !ok {
		return nil, mem.ErrForeignClip{Value: v}
	}
	return c, nil
}
