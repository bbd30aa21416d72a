package avdenoise

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/scale"
	"github.com/xaionaro-go/typing"
)

// Range mask and binarize defaults of DetailMask.
const (
	DefaultDetailRadius       = 3
	DefaultDetailRadiusChroma = 2
	DefaultDetailThreshold    = 0.005
)

// DetailMaskParams configures DetailMask. Zero values select the defaults.
type DetailMaskParams struct {
	// Sigma, when set, enables a Gaussian pre-blur of the analyzed clip.
	Sigma typing.Optional[float64]

	// Radius and RadiusChroma control the range mask neighborhood (the
	// luma and chroma equivalents of gradfun3's mask parameter). Zero
	// means 3 and 2.
	Radius       int
	RadiusChroma int

	// BinarizeDetail is the threshold of the range-mask detector and
	// BinarizeEdges the threshold of the edge detector; both are resolved
	// against the clip's depth. Unset means a fraction of 0.005 each.
	BinarizeDetail scale.Threshold
	BinarizeEdges  scale.Threshold
}

func (p DetailMaskParams) withDefaults() DetailMaskParams {
	if p.Radius == 0 {
		p.Radius = DefaultDetailRadius
	}
	if p.RadiusChroma == 0 {
		p.RadiusChroma = DefaultDetailRadiusChroma
	}
	if p.BinarizeDetail.IsZero() {
		p.BinarizeDetail = scale.Fraction(DefaultDetailThreshold)
	}
	if p.BinarizeEdges.IsZero() {
		p.BinarizeEdges = scale.Fraction(DefaultDetailThreshold)
	}
	return p
}

// DetailMask builds a mask protecting detailed areas during denoising or
// debanding. A range mask catches the textured regions, a Prewitt edge
// mask catches the lines it misses, and the merged result is despeckled.
func DetailMask(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params DetailMaskParams,
) (_ret plugin.Clip, _err error) {
	logger.Tracef(ctx, "DetailMask(ctx, %s, %#+v)", clip, params)
	defer func() { logger.Tracef(ctx, "/DetailMask(ctx, %s): %v %v", clip, _ret, _err) }()

	format := clip.Format()
	if format.IsZero() {
		return nil, ErrIndeterminateFormat{}
	}
	if _, err := core.Plugin(ctx, plugin.NamespaceRangeMask); err != nil {
		return nil, err
	}
	params = params.withDefaults()

	// two independent pre-blur chains feed the two detectors
	denA, denB := clip, clip
	if params.Sigma.IsSet() {
		sigma := params.Sigma.Get()
		blur := func(ctx context.Context, core plugin.Core, c plugin.Clip) (plugin.Clip, error) {
			return filter.Gaussian(ctx, core, c, sigma)
		}
		var err error
		denA, err = QuickResample(ctx, core, clip, blur)
		if err != nil {
			return nil, fmt.Errorf("unable to pre-blur: %w", err)
		}
		denB, err = QuickResample(ctx, core, clip, blur)
		if err != nil {
			return nil, fmt.Errorf("unable to pre-blur: %w", err)
		}
	}

	maskA, err := filter.ExtractLuma(ctx, core, denA)
	if err != nil {
		return nil, fmt.Errorf("unable to extract the luma: %w", err)
	}
	if format.BitsPerSample < 32 {
		maskA, err = filter.Depth(ctx, core, maskA, 16, format.SampleType)
		if err != nil {
			return nil, fmt.Errorf("unable to convert the luma to 16-bit: %w", err)
		}
	}
	maskA, err = filter.RangeMask(ctx, core, maskA, params.Radius, params.RadiusChroma)
	if err != nil {
		return nil, fmt.Errorf("unable to build the range mask: %w", err)
	}
	maskA, err = filter.Depth(ctx, core, maskA, format.BitsPerSample, format.SampleType)
	if err != nil {
		return nil, fmt.Errorf("unable to convert the range mask back to %d-bit: %w", format.BitsPerSample, err)
	}
	maskA, err = filter.Binarize(ctx, core, maskA, params.BinarizeDetail)
	if err != nil {
		return nil, fmt.Errorf("unable to binarize the range mask: %w", err)
	}

	maskB, err := filter.ExtractLuma(ctx, core, denB)
	if err != nil {
		return nil, fmt.Errorf("unable to extract the luma: %w", err)
	}
	maskB, err = filter.Prewitt(ctx, core, maskB)
	if err != nil {
		return nil, fmt.Errorf("unable to build the edge mask: %w", err)
	}
	maskB, err = filter.Binarize(ctx, core, maskB, params.BinarizeEdges)
	if err != nil {
		return nil, fmt.Errorf("unable to binarize the edge mask: %w", err)
	}

	mask, err := filter.MaxMerge(ctx, core, maskA, maskB)
	if err != nil {
		return nil, fmt.Errorf("unable to merge the masks: %w", err)
	}
	mask, err = filter.RemoveGrain(ctx, core, mask, 22)
	if err != nil {
		return nil, fmt.Errorf("unable to despeckle the mask: %w", err)
	}
	return filter.RemoveGrain(ctx, core, mask, 11)
}

// DetailMasker binds DetailMask to its parameters.
func DetailMasker(params DetailMaskParams) MaskSource {
	return func(ctx context.Context, core plugin.Core, clip plugin.Clip) (plugin.Clip, error) {
		return DetailMask(ctx, core, clip, params)
	}
}
