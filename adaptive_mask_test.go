package avdenoise

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/plugin/plugintest"
)

func TestAdaptiveMask(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := AdaptiveMask(ctx, core, src, 4.0)
	require.NoError(t, err)
	require.Len(t, core.Invocations, 2)

	stats := core.Invocations[0]
	require.Equal(t, plugin.FuncPlaneStats, stats.Function)

	mask := core.Invocations[1]
	require.Equal(t, plugin.NamespaceAdaptiveGrain, mask.Namespace)
	require.Equal(t, plugin.FuncMask, mask.Function)
	lumaScaling, ok := mask.Args.GetFloat("luma_scaling")
	require.True(t, ok)
	require.InDelta(t, 4.0, lumaScaling, 0)

	// the mask is built from the statistics clip, not the raw input
	input, ok := mask.Args.Get(plugin.KeyClip)
	require.True(t, ok)
	require.Same(t, stats.Result, input)
}

func TestAdaptiveMaskDefaultScaling(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	_, err := AdaptiveMask(ctx, core, src, 0)
	require.NoError(t, err)

	mask := core.InvocationsOf(plugin.NamespaceAdaptiveGrain, plugin.FuncMask)[0]
	lumaScaling, ok := mask.Args.GetFloat("luma_scaling")
	require.True(t, ok)
	require.InDelta(t, DefaultLumaScaling, lumaScaling, 0)
}

func TestAdaptiveMasker(t *testing.T) {
	ctx := context.Background()
	core := plugintest.NewCore()
	src := plugintest.NewClip("src", formatYUV420P8(64, 64), 10)

	masker := AdaptiveMasker(2.5)
	_, err := masker(ctx, core, src)
	require.NoError(t, err)

	mask := core.InvocationsOf(plugin.NamespaceAdaptiveGrain, plugin.FuncMask)[0]
	lumaScaling, ok := mask.Args.GetFloat("luma_scaling")
	require.True(t, ok)
	require.InDelta(t, 2.5, lumaScaling, 0)
}
