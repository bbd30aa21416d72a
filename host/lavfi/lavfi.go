// Package lavfi hosts the filter chains on libavfilter (via the astiav
// bindings). Every plugin invocation is translated into a libavfilter
// filter expression and recorded as a node of a lazy graph; Compile
// flattens a finished chain into a filtergraph description and Runner
// executes it on real frames.
//
// The translation is necessarily approximate for a few denoisers (see the
// per-filter notes); the std/resize/mask operations map one-to-one.
package lavfi

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
	"go.uber.org/atomic"
)

// Core is the libavfilter-backed plugin host. It is stateless apart from
// label allocation, so one Core may serve multiple independent chains.
type Core struct {
	NodeCount   atomic.Uint64
	SourceCount atomic.Uint64
}

var _ plugin.Core = (*Core)(nil)

func NewCore() *Core {
	return &Core{}
}

func (c *Core) String() string {
	return "LAVFI"
}

// NewSourceClip registers an input stream of the given format. The clip
// becomes a buffer source of every graph compiled from its descendants.
func (c *Core) NewSourceClip(
	ctx context.Context,
	format types.VideoFormat,
	numFrames int,
) (_ret *Clip, _err error) {
	logger.Tracef(ctx, "NewSourceClip(ctx, %s, %d)", format, numFrames)
	defer func() { logger.Tracef(ctx, "/NewSourceClip(ctx, %s, %d): %v %v", format, numFrames, _ret, _err) }()
	if _, err := PixelFormatName(format); err != nil {
		return nil, fmt.Errorf("unable to use '%s' as a source format: %w", format, err)
	}
	return &Clip{
		Label:       fmt.Sprintf("in%d", c.SourceCount.Add(1)-1),
		VideoFormat: format,
		FrameCount:  numFrames,
	}, nil
}

func (c *Core) newNodeClip(
	format types.VideoFormat,
	numFrames int,
	expr string,
	inputs ...*Clip,
) *Clip {
	return &Clip{
		Label:       fmt.Sprintf("n%d", c.NodeCount.Add(1)),
		VideoFormat: format,
		FrameCount:  numFrames,
		Expr:        expr,
		Inputs:      inputs,
	}
}

func (c *Core) newCompositeClip(
	format types.VideoFormat,
	numFrames int,
	template string,
	inputs ...*Clip,
) *Clip {
	return &Clip{
		Label:       fmt.Sprintf("n%d", c.NodeCount.Add(1)),
		VideoFormat: format,
		FrameCount:  numFrames,
		Template:    template,
		Inputs:      inputs,
	}
}

// translatableNamespaces is the set of plugin namespaces this host has a
// libavfilter rendition for. The remaining namespaces report
// ErrMissingDependency, the same way a script host without the plugin
// installed would.
var translatableNamespaces = map[plugin.Namespace]struct{}{
	plugin.NamespaceStd:         {},
	plugin.NamespaceResize:      {},
	plugin.NamespaceKNLMeans:    {},
	plugin.NamespaceDFTTest:     {},
	plugin.NamespaceBM3D:        {},
	plugin.NamespaceRemoveGrain: {},
	plugin.NamespaceBilateral:   {},
	plugin.NamespaceRangeMask:   {},
}

func (c *Core) Plugin(
	ctx context.Context,
	namespace plugin.Namespace,
) (plugin.Plugin, error) {
	logger.Tracef(ctx, "Plugin(ctx, '%s')", namespace)
	if _, ok := translatableNamespaces[namespace]; !ok {
		return nil, plugin.ErrMissingDependency{
			Namespace: namespace,
			Err:       fmt.Errorf("no libavfilter translation"),
		}
	}
	return &Plugin{
		Core:            c,
		PluginNamespace: namespace,
	}, nil
}
