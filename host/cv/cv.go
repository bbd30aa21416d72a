//go:build with_cv
// +build with_cv

// Package cv extends the in-memory host with OpenCV-backed denoisers:
// the non-local-means namespaces run through gocv's fastNlMeans, every
// other namespace is served by the mem host underneath. Build with the
// with_cv tag (and OpenCV installed) to get it.
package cv

import (
	"context"

	"github.com/xaionaro-go/avdenoise/host/mem"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
)

// Core is the OpenCV-extended in-memory host. Clips are regular mem
// clips, the Mats live only for the duration of one invocation.
type Core struct {
	*mem.Core
}

var _ plugin.Core = (*Core)(nil)

func NewCore() *Core {
	return &Core{Core: mem.NewCore()}
}

func (c *Core) String() string {
	return "CV"
}

var denoiserNamespaces = map[plugin.Namespace]struct{}{
	plugin.NamespaceKNLMeans: {},
	plugin.NamespaceTNLMeans: {},
}

func (c *Core) Plugin(
	ctx context.Context,
	namespace plugin.Namespace,
) (plugin.Plugin, error) {
	logger.Tracef(ctx, "Plugin(ctx, '%s')", namespace)
	if _, ok := denoiserNamespaces[namespace]; ok {
		return &Plugin{
			Core:            c,
			PluginNamespace: namespace,
		}, nil
	}
	return c.Core.Plugin(ctx, namespace)
}
