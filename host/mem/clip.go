package mem

import (
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// PlaneStatistics are the per-frame statistics attached by PlaneStats.
// The average is normalized to 0..1, the extremes stay in native range.
type PlaneStatistics struct {
	Average float64
	Minimum int
	Maximum int
}

// Frame is one frame of an in-memory clip: one plane per color component
// plus the statistics of the frame it was derived from, if any.
type Frame struct {
	Planes []Plane
	Stats  *PlaneStatistics
}

func (f Frame) clone() Frame {
	planes := make([]Plane, len(f.Planes))
	for i, p := range f.Planes {
		planes[i] = p.Clone()
	}
	return Frame{Planes: planes, Stats: f.Stats}
}

// Clip is a fully materialized in-memory clip. Unlike the lazy hosts,
// every invocation computes its pixels immediately.
type Clip struct {
	Label       string
	VideoFormat types.VideoFormat
	Frames      []Frame
}

var _ plugin.Clip = (*Clip)(nil)

func (c *Clip) String() string {
	return c.Label
}

func (c *Clip) Format() types.VideoFormat {
	return c.VideoFormat
}

func (c *Clip) NumFrames() int {
	return len(c.Frames)
}

// Plane returns the given plane of the given frame.
func (c *Clip) Plane(frame, plane int) Plane {
	return c.Frames[frame].Planes[plane]
}
