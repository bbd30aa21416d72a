package avdenoise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/plugin/plugintest"
	"github.com/xaionaro-go/avdenoise/types"
)

func formatYUV420P8(width, height int) types.VideoFormat {
	return types.VideoFormat{
		ColorFamily:   types.ColorFamilyYUV,
		SampleType:    types.SampleTypeInteger,
		BitsPerSample: 8,
		SubSamplingW:  1,
		SubSamplingH:  1,
		Width:         width,
		Height:        height,
	}
}

func formatYUV444PF32(width, height int) types.VideoFormat {
	return types.VideoFormat{
		ColorFamily:   types.ColorFamilyYUV,
		SampleType:    types.SampleTypeFloat,
		BitsPerSample: 32,
		Width:         width,
		Height:        height,
	}
}

func formatGray8(width, height int) types.VideoFormat {
	return types.VideoFormat{
		ColorFamily:   types.ColorFamilyGray,
		SampleType:    types.SampleTypeInteger,
		BitsPerSample: 8,
		Width:         width,
		Height:        height,
	}
}

func TestQuickDenoiseDefaults(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(1920, 1080), 100)

	result, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{})
	require.NoError(t, err)
	require.Equal(t, src.Format(), result.Format())
	require.Equal(t, src.NumFrames(), result.NumFrames())

	splits := core.InvocationsOf(plugin.NamespaceStd, plugin.FuncShufflePlanes)
	require.Len(t, splits, 4) // 3 plane extractions and the final join

	chroma := core.InvocationsOf(plugin.NamespaceKNLMeans, plugin.FuncKNLMeansCL)
	require.Len(t, chroma, 2)
	for _, inv := range chroma {
		d, ok := inv.Args.GetInt("d")
		require.True(t, ok)
		require.Equal(t, int64(3), d)
		a, ok := inv.Args.GetInt("a")
		require.True(t, ok)
		require.Equal(t, int64(2), a)
	}

	luma := core.InvocationsOf(plugin.NamespaceBM3D, plugin.FuncBM3D)
	require.Len(t, luma, 1)
	sigma, ok := luma[0].Args.GetFloat("sigma")
	require.True(t, ok)
	require.InDelta(t, DefaultSigma, sigma, 0)
	psample, ok := luma[0].Args.GetInt("psample")
	require.True(t, ok)
	require.Equal(t, int64(0), psample)
	radius1, ok := luma[0].Args.GetInt("radius1")
	require.True(t, ok)
	require.Equal(t, int64(1), radius1)
}

func TestQuickDenoiseUsesOwnLumaAsDefaultRef(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{})
	require.NoError(t, err)

	lumaPlane := core.Invocations[0].Result // first plane extraction
	bm3d := core.InvocationsOf(plugin.NamespaceBM3D, plugin.FuncBM3D)[0]
	ref, ok := bm3d.Args.Get(plugin.KeyRef)
	require.True(t, ok)
	require.Same(t, lumaPlane, ref)
}

func TestQuickDenoiseExplicitRef(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)
	refClip := plugintest.NewClip("ref", formatGray8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{Ref: refClip})
	require.NoError(t, err)

	bm3d := core.InvocationsOf(plugin.NamespaceBM3D, plugin.FuncBM3D)[0]
	ref, ok := bm3d.Args.Get(plugin.KeyRef)
	require.True(t, ok)
	require.Same(t, plugin.Clip(refClip), ref)
}

func TestQuickDenoiseChromaModes(t *testing.T) {
	for _, tc := range []struct {
		Mode      ChromaMode
		Options   types.FilterOptions
		Namespace plugin.Namespace
		Function  plugin.Function
	}{
		{ChromaModeKNLMeansCL, nil, plugin.NamespaceKNLMeans, plugin.FuncKNLMeansCL},
		{ChromaModeTNLMeans, nil, plugin.NamespaceTNLMeans, plugin.FuncTNLMeans},
		{ChromaModeDFTTest, types.FilterOptions{{Key: "sbsize", Value: 16}}, plugin.NamespaceDFTTest, plugin.FuncDFTTest},
		{ChromaModeSMDegrain, nil, plugin.NamespaceSMDegrain, plugin.FuncSMDegrain},
	} {
		t.Run(tc.Mode.String(), func(t *testing.T) {
			ctx := context.Background()
			core := plugintest.NewCore()
			src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

			_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{
				ChromaMode: tc.Mode,
				Options:    tc.Options,
			})
			require.NoError(t, err)
			require.Len(t, core.InvocationsOf(tc.Namespace, tc.Function), 2)
		})
	}
}

func TestQuickDenoiseTNLMeansWindow(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{ChromaMode: ChromaModeTNLMeans})
	require.NoError(t, err)

	for _, inv := range core.InvocationsOf(plugin.NamespaceTNLMeans, plugin.FuncTNLMeans) {
		for _, key := range []string{"ax", "ay", "az"} {
			v, ok := inv.Args.GetInt(key)
			require.True(t, ok)
			require.Equal(t, int64(2), v)
		}
	}
}

func TestQuickDenoiseDFTOverlapSize(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{
		ChromaMode: ChromaModeDFTTest,
		Options:    types.FilterOptions{{Key: "sbsize", Value: 10}},
	})
	require.NoError(t, err)

	for _, inv := range core.InvocationsOf(plugin.NamespaceDFTTest, plugin.FuncDFTTest) {
		soSize, ok := inv.Args.GetInt("sosize")
		require.True(t, ok)
		require.Equal(t, int64(7), soSize) // floor(10 * 0.75)
		sbSize, ok := inv.Args.GetInt("sbsize")
		require.True(t, ok)
		require.Equal(t, int64(10), sbSize)
	}
}

func TestQuickDenoiseDFTRequiresSBSize(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{ChromaMode: ChromaModeDFTTest})
	require.Error(t, err)
	var missing ErrMissingParameter
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "sbsize", missing.Param)

	// only the plane split made it into the graph
	require.Len(t, core.Invocations, 3)
	for _, inv := range core.Invocations {
		require.Equal(t, plugin.FuncShufflePlanes, inv.Function)
	}
}

func TestQuickDenoiseRejectsGray(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatGray8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{})
	require.Error(t, err)
	var unsupported ErrUnsupportedColorFamily
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, types.ColorFamilyGray, unsupported.Format.ColorFamily)
	require.Empty(t, core.Invocations)
}

func TestQuickDenoiseUnknownModeFailsAfterSplit(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{ChromaMode: ChromaMode(9)})
	require.Error(t, err)
	var unknown ErrUnknownChromaMode
	require.ErrorAs(t, err, &unknown)
	require.Len(t, core.Invocations, 3)
}

func TestQuickDenoiseSMDegrainMissing(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore(plugin.NamespaceStd, plugin.NamespaceBM3D)
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{ChromaMode: ChromaModeSMDegrain})
	require.Error(t, err)
	var missing plugin.ErrMissingDependency
	require.ErrorAs(t, err, &missing)
	require.Equal(t, plugin.NamespaceSMDegrain, missing.Namespace)
}

func TestQuickDenoiseRGB(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	format := types.VideoFormat{
		ColorFamily:   types.ColorFamilyRGB,
		SampleType:    types.SampleTypeInteger,
		BitsPerSample: 8,
		Width:         64,
		Height:        64,
	}
	src := plugintest.NewClip("src", format, 10)

	result, err := QuickDenoise(ctx, core, src, QuickDenoiseParams{})
	require.NoError(t, err)
	require.Equal(t, format, result.Format())
}
