package avdenoise

import (
	"context"

	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
)

// DefaultLumaScaling is the default luma scaling factor of AdaptiveMask.
const DefaultLumaScaling = 8.0

// MaskSource derives a weighting mask from a clip. Masked filters accept
// it as a parameter, so tuned mask generators can be passed around as
// values (see AdaptiveMasker and DetailMasker).
type MaskSource func(ctx context.Context, core plugin.Core, clip plugin.Clip) (plugin.Clip, error)

// AdaptiveMask builds a luma-adaptive mask for masked denoising or
// debanding: the darker the area, the stronger the mask. Zero lumaScaling
// means the default of 8.
func AdaptiveMask(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	lumaScaling float64,
) (_ret plugin.Clip, _err error) {
	logger.Tracef(ctx, "AdaptiveMask(ctx, %s, %v)", clip, lumaScaling)
	defer func() { logger.Tracef(ctx, "/AdaptiveMask(ctx, %s, %v): %v %v", clip, lumaScaling, _ret, _err) }()

	if lumaScaling == 0 {
		lumaScaling = DefaultLumaScaling
	}

	stats, err := filter.PlaneStats(ctx, core, clip)
	if err != nil {
		return nil, err
	}
	return filter.AdaptiveGrainMask(ctx, core, stats, lumaScaling)
}

// AdaptiveMasker binds AdaptiveMask to a luma scaling factor.
func AdaptiveMasker(lumaScaling float64) MaskSource {
	return func(ctx context.Context, core plugin.Core, clip plugin.Clip) (plugin.Clip, error) {
		return AdaptiveMask(ctx, core, clip, lumaScaling)
	}
}
