package avdenoise

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// ClipFunc transforms a clip into a derived clip.
type ClipFunc func(ctx context.Context, core plugin.Core, clip plugin.Clip) (plugin.Clip, error)

// QuickResample converts the clip to 16-bit integer, applies fn, and
// converts the result back to the clip's original depth and sample type.
// For filters that only accept specific depths.
func QuickResample(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	fn ClipFunc,
) (_ret plugin.Clip, _err error) {
	logger.Tracef(ctx, "QuickResample(ctx, %s)", clip)
	defer func() { logger.Tracef(ctx, "/QuickResample(ctx, %s): %v %v", clip, _ret, _err) }()

	format := clip.Format()
	if format.IsZero() {
		return nil, ErrIndeterminateFormat{}
	}

	work, err := filter.Depth(ctx, core, clip, 16, types.SampleTypeInteger)
	if err != nil {
		return nil, fmt.Errorf("unable to convert '%s' to 16-bit: %w", clip, err)
	}
	filtered, err := fn(ctx, core, work)
	if err != nil {
		return nil, err
	}
	return filter.Depth(ctx, core, filtered, format.BitsPerSample, format.SampleType)
}
