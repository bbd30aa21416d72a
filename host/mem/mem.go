// Package mem hosts the filter chains on in-memory images: clips are
// materialized as Go image planes and every invocation computes its
// pixels immediately. Only the mask-building primitives are implemented
// (the heavy denoisers report ErrMissingDependency), which is enough to
// run and inspect the mask pipelines without any external engine.
//
// The host is integer-only, 8 to 16 bits per sample.
package mem

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
	"go.uber.org/atomic"
)

// Core is the in-memory plugin host.
type Core struct {
	ClipCount atomic.Uint64
}

var _ plugin.Core = (*Core)(nil)

func NewCore() *Core {
	return &Core{}
}

func (c *Core) String() string {
	return "MEM"
}

// NewSourceClip wraps already-materialized frames into a clip. The frames
// must match the format's plane count, dimensions and bit depth.
func (c *Core) NewSourceClip(
	ctx context.Context,
	format types.VideoFormat,
	frames []Frame,
) (_ret *Clip, _err error) {
	logger.Tracef(ctx, "NewSourceClip(ctx, %s, %d frames)", format, len(frames))
	defer func() { logger.Tracef(ctx, "/NewSourceClip(ctx, %s): %v %v", format, _ret, _err) }()
	if err := validateSourceFormat(format); err != nil {
		return nil, err
	}
	for frameIdx, frame := range frames {
		if len(frame.Planes) != format.NumPlanes() {
			return nil, fmt.Errorf("frame #%d has %d planes, the format needs %d", frameIdx, len(frame.Planes), format.NumPlanes())
		}
		for planeIdx, plane := range frame.Planes {
			wantW, wantH := format.PlaneDimensions(planeIdx)
			bounds := plane.Bounds()
			if bounds.Dx() != wantW || bounds.Dy() != wantH {
				return nil, fmt.Errorf("frame #%d plane #%d is %dx%d, the format needs %dx%d",
					frameIdx, planeIdx, bounds.Dx(), bounds.Dy(), wantW, wantH)
			}
			if plane.Bits() != format.BitsPerSample {
				return nil, fmt.Errorf("frame #%d plane #%d is %d-bit, the format needs %d",
					frameIdx, planeIdx, plane.Bits(), format.BitsPerSample)
			}
		}
	}
	return c.newClip(format, frames), nil
}

// NewUniformSourceClip materializes numFrames frames filled with the
// given per-plane values. Mostly a convenience for tests and probing.
func (c *Core) NewUniformSourceClip(
	ctx context.Context,
	format types.VideoFormat,
	numFrames int,
	planeValues ...int,
) (*Clip, error) {
	if err := validateSourceFormat(format); err != nil {
		return nil, err
	}
	if len(planeValues) != format.NumPlanes() {
		return nil, fmt.Errorf("got %d plane values, the format needs %d", len(planeValues), format.NumPlanes())
	}
	frames := make([]Frame, numFrames)
	for frameIdx := range frames {
		planes := make([]Plane, format.NumPlanes())
		for planeIdx := range planes {
			w, h := format.PlaneDimensions(planeIdx)
			plane, err := NewPlane(format.BitsPerSample, w, h)
			if err != nil {
				return nil, err
			}
			fillPlane(plane, planeValues[planeIdx])
			planes[planeIdx] = plane
		}
		frames[frameIdx] = Frame{Planes: planes}
	}
	return c.NewSourceClip(ctx, format, frames)
}

func validateSourceFormat(format types.VideoFormat) error {
	switch {
	case format.IsZero():
		return fmt.Errorf("the source format is not determinate")
	case format.SampleType != types.SampleTypeInteger:
		return fmt.Errorf("only integer formats are supported, got '%s'", format)
	case format.BitsPerSample < 8 || format.BitsPerSample > 16:
		return fmt.Errorf("only 8..16 bit formats are supported, got '%s'", format)
	case format.NumPlanes() == 0:
		return fmt.Errorf("the color family '%s' is not supported", format.ColorFamily)
	}
	return nil
}

func fillPlane(plane Plane, value int) {
	bounds := plane.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			plane.SetSample(x, y, value)
		}
	}
}

func (c *Core) newClip(format types.VideoFormat, frames []Frame) *Clip {
	return &Clip{
		Label:       fmt.Sprintf("mem%d", c.ClipCount.Add(1)),
		VideoFormat: format,
		Frames:      frames,
	}
}

var implementedNamespaces = map[plugin.Namespace]struct{}{
	plugin.NamespaceStd:         {},
	plugin.NamespaceResize:      {},
	plugin.NamespaceBilateral:   {},
	plugin.NamespaceRemoveGrain: {},
	plugin.NamespaceRangeMask:   {},
}

func (c *Core) Plugin(
	ctx context.Context,
	namespace plugin.Namespace,
) (plugin.Plugin, error) {
	logger.Tracef(ctx, "Plugin(ctx, '%s')", namespace)
	if _, ok := implementedNamespaces[namespace]; !ok {
		return nil, plugin.ErrMissingDependency{
			Namespace: namespace,
			Err:       fmt.Errorf("not implemented by the in-memory host"),
		}
	}
	return &Plugin{
		Core:            c,
		PluginNamespace: namespace,
	}, nil
}
