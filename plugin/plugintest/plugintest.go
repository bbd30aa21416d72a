// Package plugintest provides a recording in-memory implementation of the
// plugin interfaces for tests. It performs no pixel work: every invocation
// is logged and yields a derived clip whose format follows the propagation
// rules of the corresponding real filter.
package plugintest

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Clip is a fake clip handle. Origin points at the invocation that produced
// it (nil for source clips), so a test can walk the whole derivation graph
// through the clip-valued arguments.
type Clip struct {
	Name        string
	VideoFormat types.VideoFormat
	FrameCount  int
	Origin      *Invocation
}

var _ plugin.Clip = (*Clip)(nil)

// NewClip returns a source clip with the given format.
func NewClip(name string, format types.VideoFormat, numFrames int) *Clip {
	return &Clip{Name: name, VideoFormat: format, FrameCount: numFrames}
}

func (c *Clip) String() string {
	return c.Name
}

func (c *Clip) Format() types.VideoFormat {
	return c.VideoFormat
}

func (c *Clip) NumFrames() int {
	return c.FrameCount
}

// Invocation is one recorded Plugin.Invoke call.
type Invocation struct {
	Namespace plugin.Namespace
	Function  plugin.Function
	Args      types.FilterOptions
	Result    *Clip
}

// InputClips returns the clip-valued arguments of the invocation, in the
// conventional key order.
func (inv *Invocation) InputClips() []plugin.Clip {
	var result []plugin.Clip
	for _, key := range []string{plugin.KeyClip, plugin.KeyClips, plugin.KeyRef} {
		v, ok := inv.Args.Get(key)
		if !ok {
			continue
		}
		if clips, ok := plugin.ClipsValue(v); ok {
			result = append(result, clips...)
		}
	}
	return result
}

func (inv *Invocation) String() string {
	return fmt.Sprintf("%s.%s(%s)", inv.Namespace, inv.Function, inv.Args)
}

// Core is a fake plugin registry. With an empty Installed list every
// namespace resolves; otherwise only the listed ones do, and the rest fail
// with ErrMissingDependency.
type Core struct {
	Installed   []plugin.Namespace
	Invocations []*Invocation

	InvokeFn func(
		ctx context.Context,
		namespace plugin.Namespace,
		function plugin.Function,
		args types.FilterOptions,
	) (plugin.Clip, error)
	InvokeCallCount int
}

var _ plugin.Core = (*Core)(nil)

// NewCore returns a recording core that reports the given namespaces as
// installed. With no arguments everything is installed.
func NewCore(installed ...plugin.Namespace) *Core {
	return &Core{Installed: installed}
}

func (c *Core) String() string {
	return "TestCore"
}

func (c *Core) IsInstalled(namespace plugin.Namespace) bool {
	if len(c.Installed) == 0 {
		return true
	}
	for _, ns := range c.Installed {
		if ns == namespace {
			return true
		}
	}
	return false
}

func (c *Core) Plugin(
	ctx context.Context,
	namespace plugin.Namespace,
) (plugin.Plugin, error) {
	if !c.IsInstalled(namespace) {
		return nil, plugin.ErrMissingDependency{Namespace: namespace}
	}
	return &Plugin{Core: c, PluginNamespace: namespace}, nil
}

// InvocationsOf returns the recorded invocations of one function, in order.
func (c *Core) InvocationsOf(
	namespace plugin.Namespace,
	function plugin.Function,
) []*Invocation {
	var result []*Invocation
	for _, inv := range c.Invocations {
		if inv.Namespace == namespace && inv.Function == function {
			result = append(result, inv)
		}
	}
	return result
}

// LastInvocation returns the most recent invocation, or nil.
func (c *Core) LastInvocation() *Invocation {
	if len(c.Invocations) == 0 {
		return nil
	}
	return c.Invocations[len(c.Invocations)-1]
}

// Plugin is a fake plugin bound to a namespace of its Core.
type Plugin struct {
	Core            *Core
	PluginNamespace plugin.Namespace
}

var _ plugin.Plugin = (*Plugin)(nil)

func (p *Plugin) String() string {
	return fmt.Sprintf("TestPlugin(%s)", p.PluginNamespace)
}

func (p *Plugin) Namespace() plugin.Namespace {
	return p.PluginNamespace
}

func (p *Plugin) Invoke(
	ctx context.Context,
	function plugin.Function,
	args types.FilterOptions,
) (plugin.Clip, error) {
	p.Core.InvokeCallCount++
	inv := &Invocation{Namespace: p.PluginNamespace, Function: function, Args: args}
	p.Core.Invocations = append(p.Core.Invocations, inv)
	if p.Core.InvokeFn != nil {
		return p.Core.InvokeFn(ctx, p.PluginNamespace, function, args)
	}
	result, err := p.Core.derive(inv)
	if err != nil {
		return nil, err
	}
	inv.Result = result
	return result, nil
}

func (c *Core) derive(inv *Invocation) (*Clip, error) {
	inputs := inv.InputClips()
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input clip in the arguments of %s.%s", inv.Namespace, inv.Function)
	}
	format := inputs[0].Format()
	switch {
	case inv.Namespace == plugin.NamespaceStd && inv.Function == plugin.FuncShufflePlanes:
		format = shufflePlanesFormat(inv, inputs)
	case inv.Namespace == plugin.NamespaceResize && inv.Function == plugin.FuncPoint:
		if v, ok := inv.Args.Get("format"); ok {
			if f, ok := v.(types.VideoFormat); ok {
				format = f
			}
		}
	}
	return &Clip{
		Name:        fmt.Sprintf("%s.%s#%d", inv.Namespace, inv.Function, len(c.Invocations)),
		VideoFormat: format,
		FrameCount:  inputs[0].NumFrames(),
		Origin:      inv,
	}, nil
}

func shufflePlanesFormat(inv *Invocation, inputs []plugin.Clip) types.VideoFormat {
	first := inputs[0].Format()
	family := types.ColorFamilyUndefined
	if v, ok := inv.Args.Get("colorfamily"); ok {
		if f, ok := v.(types.ColorFamily); ok {
			family = f
		}
	}
	var planes []int
	if v, ok := inv.Args.Get("planes"); ok {
		if p, ok := v.([]int); ok {
			planes = p
		}
	}
	if family == types.ColorFamilyGray {
		plane := 0
		if len(planes) > 0 {
			plane = planes[0]
		}
		return first.PlaneFormat(plane)
	}
	result := first
	result.ColorFamily = family
	result.SubSamplingW = 0
	result.SubSamplingH = 0
	if family.NumPlanes() > 1 && len(inputs) > 1 {
		second := inputs[1].Format()
		result.SubSamplingW = subSamplingShift(first.Width, second.Width)
		result.SubSamplingH = subSamplingShift(first.Height, second.Height)
	}
	return result
}

func subSamplingShift(full, sub int) int {
	shift := 0
	for sub > 0 && sub < full {
		sub <<= 1
		shift++
	}
	return shift
}
