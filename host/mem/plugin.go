package mem

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Plugin implements the functions of one plugin namespace on in-memory
// planes.
type Plugin struct {
	Core            *Core
	PluginNamespace plugin.Namespace
}

var _ plugin.Plugin = (*Plugin)(nil)

func (p *Plugin) String() string {
	return fmt.Sprintf("MEM(%s)", p.PluginNamespace)
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
	case plugin.NamespaceStd:
		switch function {
		case plugin.FuncShufflePlanes:
			return p.Core.shufflePlanes(ctx, args)
		case plugin.FuncBinarize:
			return p.Core.binarize(ctx, args)
		case plugin.FuncExpr:
			return p.Core.expr(ctx, args)
		case plugin.FuncPrewitt:
			return p.Core.prewitt(ctx, args)
		case plugin.FuncPlaneStats:
			return p.Core.planeStats(ctx, args)
		}
	case plugin.NamespaceResize:
		if function == plugin.FuncPoint {
			return p.Core.point(ctx, args)
		}
	case plugin.NamespaceBilateral:
		if function == plugin.FuncGaussian {
			return p.Core.gaussianBlur(ctx, args)
		}
	case plugin.NamespaceRemoveGrain:
		if function == plugin.FuncRemoveGrain {
			return p.Core.removeGrain(ctx, args)
		}
	case plugin.NamespaceRangeMask:
		if function == plugin.FuncRangeMask {
			return p.Core.rangeMask(ctx, args)
		}
	}
	return nil, ErrUnknownFunction{Namespace: p.PluginNamespace, Function: function}
}

func clipArg(args types.FilterOptions, key string) (*Clip, error) {
	v, ok := args.Get(key)
	if !ok {
		return nil, ErrMissingArgument{Key: key}
	}
	c, ok := v.(*Clip)
	if !ok {
		return nil, ErrForeignClip{Value: v}
	}
	return c, nil
}

func clipsArg(args types.FilterOptions, key string) ([]*Clip, error) {
	v, ok := args.Get(key)
	if !ok {
		return nil, ErrMissingArgument{Key: key}
	}
	generic, ok := plugin.ClipsValue(v)
	if !ok {
		return nil, ErrForeignClip{Value: v}
	}
	result := make([]*Clip, 0, len(generic))
	for _, clip := range generic {
		c, ok := clip.(*Clip)
		if !ok {
			return nil, ErrForeignClip{Value: clip}
		}
		result = append(result, c)
	}
	return result, nil
}

// mapPlanes applies fn to every plane of every frame of the clip and
// assembles the results into a clip of the same format.
func (c *Core) mapPlanes(
	src *Clip,
	fn func(frameIdx, planeIdx int, plane Plane) (Plane, error),
) (*Clip, error) {
	frames := make([]Frame, len(src.Frames))
	for frameIdx, frame := range src.Frames {
		planes := make([]Plane, len(frame.Planes))
		for planeIdx, plane := range frame.Planes {
			result, err := fn(frameIdx, planeIdx, plane)
			if err != nil {
				return nil, fmt.Errorf("unable to process frame #%d plane #%d: %w", frameIdx, planeIdx, err)
			}
			planes[planeIdx] = result
		}
		frames[frameIdx] = Frame{Planes: planes, Stats: frame.Stats}
	}
	return c.newClip(src.VideoFormat, frames), nil
}
