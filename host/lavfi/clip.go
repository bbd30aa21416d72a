package lavfi

import (
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// Clip is one node of a lazily built libavfilter graph. A source clip has
// no inputs and corresponds to a buffer source; a derived clip carries
// either a single filter expression (Expr) or a multi-statement template
// (Template) over its inputs. Nothing is executed until the chain is
// compiled and run.
type Clip struct {
	Label       string
	VideoFormat types.VideoFormat
	FrameCount  int

	// Expr is a single filter expression, e.g. "gblur=sigma=1.5". The
	// compiler wires the input and output pads itself.
	Expr string

	// Template is a multi-statement filtergraph fragment with {inN},
	// {out} and {id} placeholders, for translations that need internal
	// pads. Mutually exclusive with Expr.
	Template string

	Inputs []*Clip
}

var _ plugin.Clip = (*Clip)(nil)

func (c *Clip) String() string {
	return c.Label
}

func (c *Clip) Format() types.VideoFormat {
	return c.VideoFormat
}

func (c *Clip) NumFrames() int {
	return c.FrameCount
}

// IsSource reports whether the clip is a graph input rather than a
// derived node.
func (c *Clip) IsSource() bool {
	return len(c.Inputs) == 0
}
