package lavfi

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avdenoise"
	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

func quickDenoiseKNL(ctx context.Context, core plugin.Core, clip plugin.Clip) (plugin.Clip, error) {
	return avdenoise.QuickDenoise(ctx, core, clip, avdenoise.QuickDenoiseParams{
		ChromaMode: avdenoise.ChromaModeKNLMeansCL,
	})
}

func TestCompileLinearChain(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(8, types.SampleTypeInteger), 100)
	require.NoError(t, err)

	blurred, err := filter.Gaussian(ctx, core, src, 1.5)
	require.NoError(t, err)
	edges, err := filter.Prewitt(ctx, core, blurred)
	require.NoError(t, err)

	graph, err := Compile(ctx, edges.(*Clip))
	require.NoError(t, err)
	require.Equal(t, []*Clip{src}, graph.Sources)
	require.Equal(t,
		"[in0]gblur=sigma=1.5[n1];[n1]prewitt[out]",
		graph.Content,
	)
}

func TestCompileInsertsSplitForSharedClips(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(8, types.SampleTypeInteger), 100)
	require.NoError(t, err)

	// both detectors read the same source, which forces a split
	a, err := filter.Prewitt(ctx, core, src)
	require.NoError(t, err)
	b, err := filter.Gaussian(ctx, core, src, 0.5)
	require.NoError(t, err)
	merged, err := filter.MaxMerge(ctx, core, a, b)
	require.NoError(t, err)

	graph, err := Compile(ctx, merged.(*Clip))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(graph.Content, "[in0]split=2[in0_0][in0_1]"), graph.Content)
	require.Contains(t, graph.Content, "[in0_0]")
	require.Contains(t, graph.Content, "[in0_1]")
	require.Contains(t, graph.Content, "blend=all_mode=lighten[out]")
}

func TestCompileRejectsBareSource(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(8, types.SampleTypeInteger), 100)
	require.NoError(t, err)

	_, err = Compile(ctx, src)
	require.Error(t, err)
}

func TestCompileFansOutDoubleConsumptionByOneNode(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(8, types.SampleTypeInteger), 10)
	require.NoError(t, err)

	// the reference defaults to the input itself, so one node reads the
	// same pad twice
	denoised, err := filter.BM3D(ctx, core, src, filter.BM3DParams{
		Sigma:   2,
		Radius1: 1,
		Ref:     src,
	})
	require.NoError(t, err)

	graph, err := Compile(ctx, denoised.(*Clip))
	require.NoError(t, err)
	require.Equal(t,
		"[in0]split=2[in0_0][in0_1];[in0_0][in0_1]bm3d=sigma=2:estim=final:ref=1[out]",
		graph.Content,
	)
}

func TestCompileTemplateNode(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(16, types.SampleTypeInteger), 10)
	require.NoError(t, err)

	mask, err := filter.RangeMask(ctx, core, src, 2, 1)
	require.NoError(t, err)

	graph, err := Compile(ctx, mask.(*Clip))
	require.NoError(t, err)
	node := mask.(*Clip).Label
	require.Equal(t,
		"[in0]split["+node+"hi]["+node+"lo];"+
			"["+node+"hi]dilation,dilation["+node+"max];"+
			"["+node+"lo]erosion,erosion["+node+"min];"+
			"["+node+"max]["+node+"min]blend=all_mode=difference[out]",
		graph.Content,
	)
}

func TestCompileQuickDenoiseChain(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, yuv420p(8), 100)
	require.NoError(t, err)

	denoised, err := quickDenoiseKNL(ctx, core, src)
	require.NoError(t, err)
	require.Equal(t, yuv420p(8), denoised.Format())

	graph, err := Compile(ctx, denoised.(*Clip))
	require.NoError(t, err)

	// three plane extractions off one source
	require.True(t, strings.HasPrefix(graph.Content, "[in0]split=3"), graph.Content)
	require.Contains(t, graph.Content, "extractplanes=y")
	require.Contains(t, graph.Content, "extractplanes=u")
	require.Contains(t, graph.Content, "extractplanes=v")
	// the spatial window carries over, the temporal one is dropped
	require.Contains(t, graph.Content, "nlmeans=r=5")
	// the luma is denoised against itself as the reference
	require.Contains(t, graph.Content, "bm3d=sigma=2:estim=final:ref=1")
	require.Contains(t, graph.Content, "mergeplanes=map0s=0:map0p=0:map1s=1:map1p=0:map2s=2:map2p=0:format=yuv420p")
	require.True(t, strings.HasSuffix(graph.Content, "[out]"), graph.Content)
}

func TestTranslationReportsMissingNamespaces(t *testing.T) {
	ctx := context.Background()
	core := NewCore()

	for _, namespace := range []plugin.Namespace{
		plugin.NamespaceTNLMeans,
		plugin.NamespaceSMDegrain,
		plugin.NamespaceAdaptiveGrain,
		plugin.NamespaceRemoveGrainS,
	} {
		_, err := core.Plugin(ctx, namespace)
		var missing plugin.ErrMissingDependency
		require.ErrorAs(t, err, &missing, namespace.String())
		require.Equal(t, namespace, missing.Namespace)
	}
}

func TestTranslationRejectsForeignExpressions(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewSourceClip(ctx, gray(8, types.SampleTypeInteger), 10)
	require.NoError(t, err)

	_, err = filter.Expr(ctx, core, []plugin.Clip{src, src}, "x y min")
	var unsupported ErrUnsupportedExpression
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "x y min", unsupported.Expression)
}
