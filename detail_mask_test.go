package avdenoise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/plugin/plugintest"
	"github.com/xaionaro-go/avdenoise/scale"
	"github.com/xaionaro-go/avdenoise/types"
	"github.com/xaionaro-go/typing"
)

func TestDetailMaskChainOn8Bit(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(1920, 1080), 100)

	mask, err := DetailMask(ctx, core, src, DetailMaskParams{})
	require.NoError(t, err)
	require.Equal(t, 8, mask.Format().BitsPerSample)

	var sequence []plugin.Function
	for _, inv := range core.Invocations {
		sequence = append(sequence, inv.Function)
	}
	require.Equal(t, []plugin.Function{
		plugin.FuncShufflePlanes, // luma of the range-mask branch
		plugin.FuncPoint,         // to 16-bit
		plugin.FuncRangeMask,
		plugin.FuncPoint, // back to 8-bit
		plugin.FuncBinarize,
		plugin.FuncShufflePlanes, // luma of the edge branch
		plugin.FuncPrewitt,
		plugin.FuncBinarize,
		plugin.FuncExpr,
		plugin.FuncRemoveGrain,
		plugin.FuncRemoveGrain,
	}, sequence)

	rangeMask := core.InvocationsOf(plugin.NamespaceRangeMask, plugin.FuncRangeMask)[0]
	rad, ok := rangeMask.Args.GetInt("rad")
	require.True(t, ok)
	require.Equal(t, int64(DefaultDetailRadius), rad)
	radc, ok := rangeMask.Args.GetInt("radc")
	require.True(t, ok)
	require.Equal(t, int64(DefaultDetailRadiusChroma), radc)

	for _, inv := range core.InvocationsOf(plugin.NamespaceStd, plugin.FuncBinarize) {
		thr, ok := inv.Args.GetFloat("threshold")
		require.True(t, ok)
		require.Greater(t, thr, 0.0)
		require.Less(t, thr, 255.0)
	}

	despeckle := core.InvocationsOf(plugin.NamespaceRemoveGrain, plugin.FuncRemoveGrain)
	require.Len(t, despeckle, 2)
	for i, expected := range []int64{22, 11} {
		mode, ok := despeckle[i].Args.GetInt("mode")
		require.True(t, ok)
		require.Equal(t, expected, mode)
	}
}

func TestDetailMaskFloatSkipsDepthConversions(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV444PF32(1920, 1080), 100)

	_, err := DetailMask(ctx, core, src, DetailMaskParams{})
	require.NoError(t, err)

	require.Empty(t, core.InvocationsOf(plugin.NamespaceResize, plugin.FuncPoint))

	// float clips binarize with the unscaled fraction
	for _, inv := range core.InvocationsOf(plugin.NamespaceStd, plugin.FuncBinarize) {
		thr, ok := inv.Args.GetFloat("threshold")
		require.True(t, ok)
		require.InDelta(t, DefaultDetailThreshold, thr, 0)
	}

	require.Len(t, core.InvocationsOf(plugin.NamespaceRemoveGrainS, plugin.FuncRemoveGrain), 2)
	require.Empty(t, core.InvocationsOf(plugin.NamespaceRemoveGrain, plugin.FuncRemoveGrain))
}

func TestDetailMaskSigmaPreBlursBothBranches(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := DetailMask(ctx, core, src, DetailMaskParams{Sigma: typing.Opt(1.5)})
	require.NoError(t, err)

	blurs := core.InvocationsOf(plugin.NamespaceBilateral, plugin.FuncGaussian)
	require.Len(t, blurs, 2)
	for _, inv := range blurs {
		sigma, ok := inv.Args.GetFloat("sigma")
		require.True(t, ok)
		require.InDelta(t, 1.5, sigma, 0)

		// the blur runs on the 16-bit working copy
		input, ok := inv.Args.Get(plugin.KeyClip)
		require.True(t, ok)
		require.Equal(t, 16, input.(plugin.Clip).Format().BitsPerSample)
	}
}

func TestDetailMaskCustomThresholds(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := DetailMask(ctx, core, src, DetailMaskParams{
		BinarizeDetail: scale.Fraction(0.1),
		BinarizeEdges:  scale.Native(24),
	})
	require.NoError(t, err)

	binarizes := core.InvocationsOf(plugin.NamespaceStd, plugin.FuncBinarize)
	require.Len(t, binarizes, 2)

	detail, ok := binarizes[0].Args.GetFloat("threshold")
	require.True(t, ok)
	require.InDelta(t, 26, detail, 0) // round(0.1 * 255)

	edges, ok := binarizes[1].Args.GetFloat("threshold")
	require.True(t, ok)
	require.InDelta(t, 24, edges, 0) // native values pass through on 8-bit
}

func TestDetailMaskMissingRangeMask(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore(plugin.NamespaceStd, plugin.NamespaceResize)
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := DetailMask(ctx, core, src, DetailMaskParams{})
	require.Error(t, err)
	var missing plugin.ErrMissingDependency
	require.ErrorAs(t, err, &missing)
	require.Equal(t, plugin.NamespaceRangeMask, missing.Namespace)
	require.Empty(t, core.Invocations)
}

func TestDetailMaskIndeterminateFormat(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", types.VideoFormat{}, 10)

	_, err := DetailMask(ctx, core, src, DetailMaskParams{})
	require.Error(t, err)
	var indeterminate ErrIndeterminateFormat
	require.ErrorAs(t, err, &indeterminate)
	require.Empty(t, core.Invocations)
}

func TestDetailMasker(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	masker := DetailMasker(DetailMaskParams{Radius: 2, RadiusChroma: 1})
	_, err := masker(ctx, core, src)
	require.NoError(t, err)

	rangeMask := core.InvocationsOf(plugin.NamespaceRangeMask, plugin.FuncRangeMask)[0]
	rad, ok := rangeMask.Args.GetInt("rad")
	require.True(t, ok)
	require.Equal(t, int64(2), rad)
	radc, ok := rangeMask.Args.GetInt("radc")
	require.True(t, ok)
	require.Equal(t, int64(1), radc)
}
