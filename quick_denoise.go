package avdenoise

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// DefaultSigma is the default BM3D denoising strength.
const DefaultSigma = 2.0

// QuickDenoiseParams configures QuickDenoise. The zero value selects the
// defaults: KNLMeansCL for the chroma, sigma 2 for the luma, no reference.
type QuickDenoiseParams struct {
	// ChromaMode selects the chroma denoiser. Undefined means KNLMeansCL.
	ChromaMode ChromaMode

	// Sigma is the BM3D denoising strength for the luma. Zero means the
	// default of 2.
	Sigma float64

	// Ref optionally replaces BM3D's basic estimate.
	Ref plugin.Clip

	// Options is forwarded to the chroma denoiser as is.
	Options types.FilterOptions
}

type chromaDenoiseFunc func(
	ctx context.Context,
	core plugin.Core,
	plane plugin.Clip,
	options types.FilterOptions,
) (plugin.Clip, error)

var chromaDenoisers = map[ChromaMode]chromaDenoiseFunc{
	ChromaModeKNLMeansCL: denoiseChromaKNLMeansCL,
	ChromaModeTNLMeans:   denoiseChromaTNLMeans,
	ChromaModeDFTTest:    denoiseChromaDFTTest,
	ChromaModeSMDegrain:  denoiseChromaSMDegrain,
}

// QuickDenoise denoises the luma with BM3D and both chroma planes with the
// selected chroma filter, then reassembles the clip in its original color
// family. If one denoiser is enough for the footage, using that filter
// directly is the better choice; this wrapper is for the lazy path.
func QuickDenoise(
	ctx context.Context,
	core plugin.Core,
	clip plugin.Clip,
	params QuickDenoiseParams,
) (_ret plugin.Clip, _err error) {
	logger.Tracef(ctx, "QuickDenoise(ctx, %s, %#+v)", clip, params)
	defer func() { logger.Tracef(ctx, "/QuickDenoise(ctx, %s): %v %v", clip, _ret, _err) }()

	format := clip.Format()
	switch format.ColorFamily {
	case types.ColorFamilyYUV, types.ColorFamilyYCoCg, types.ColorFamilyRGB:
	default:
		return nil, ErrUnsupportedColorFamily{Format: format}
	}

	mode := params.ChromaMode
	if mode == ChromaModeUndefined {
		mode = ChromaModeKNLMeansCL
	}
	sigma := params.Sigma
	if sigma == 0 {
		sigma = DefaultSigma
	}
	logger.Debugf(ctx, "chroma mode: %s; chroma filter options: %s", mode, spew.Sdump(params.Options))

	planes, err := filter.SplitPlanes(ctx, core, clip)
	if err != nil {
		return nil, fmt.Errorf("unable to split '%s' into planes: %w", clip, err)
	}
	assert(ctx, len(planes) == 3)

	denoiseChroma := chromaDenoisers[mode]
	if denoiseChroma == nil {
		return nil, ErrUnknownChromaMode{Mode: mode.String()}
	}
	for _, plane := range []int{1, 2} {
		planes[plane], err = denoiseChroma(ctx, core, planes[plane], params.Options)
		if err != nil {
			return nil, fmt.Errorf("unable to denoise plane %d: %w", plane, err)
		}
	}

	ref := params.Ref
	if ref == nil {
		ref = planes[0]
	}
	planes[0], err = filter.BM3D(ctx, core, planes[0], filter.BM3DParams{
		Sigma:   sigma,
		PSample: 0,
		Radius1: 1,
		Ref:     ref,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to denoise the luma plane: %w", err)
	}

	return filter.JoinPlanes(ctx, core, planes, format.ColorFamily)
}

func denoiseChromaKNLMeansCL(
	ctx context.Context,
	core plugin.Core,
	plane plugin.Clip,
	options types.FilterOptions,
) (plugin.Clip, error) {
	return filter.KNLMeansCL(ctx, core, plane, filter.KNLMeansCLParams{
		TemporalRadius: 3,
		SearchRadius:   2,
		Options:        options,
	})
}

func denoiseChromaTNLMeans(
	ctx context.Context,
	core plugin.Core,
	plane plugin.Clip,
	options types.FilterOptions,
) (plugin.Clip, error) {
	return filter.TNLMeans(ctx, core, plane, filter.TNLMeansParams{
		SearchRadiusX:  2,
		SearchRadiusY:  2,
		TemporalRadius: 2,
		Options:        options,
	})
}

func denoiseChromaDFTTest(
	ctx context.Context,
	core plugin.Core,
	plane plugin.Clip,
	options types.FilterOptions,
) (plugin.Clip, error) {
	sbSize, ok := options.GetInt("sbsize")
	if !ok {
		return nil, ErrMissingParameter{Param: "sbsize"}
	}
	return filter.DFTTest(ctx, core, plane, filter.DFTTestParams{
		OverlapSize: int(float64(sbSize) * 0.75),
		Options:     options,
	})
}

func denoiseChromaSMDegrain(
	ctx context.Context,
	core plugin.Core,
	plane plugin.Clip,
	options types.FilterOptions,
) (plugin.Clip, error) {
	return filter.SMDegrain(ctx, core, plane, filter.SMDegrainParams{
		Prefilter: 3,
		Options:   options,
	})
}
