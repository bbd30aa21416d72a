package scale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/avdenoise/types"
)

func TestValueDownscalesFractionToNativeRange(t *testing.T) {
	for bits, expected := range map[int]float64{
		8:  1,  // round(0.005 * 255)
		10: 5,  // round(0.005 * 1023)
		16: 328, // round(0.005 * 65535)
	} {
		require.Equal(t, expected, Value(0.005, FloatDepth, bits), "bits=%d", bits)
	}
}

func TestValueUpscalesNativeToFraction(t *testing.T) {
	require.InDelta(t, 1.0/255, Value(1, 8, FloatDepth), 1e-9)
	require.InDelta(t, 0.5, Value(32768, 16, FloatDepth), 1e-4)
}

func TestValue8BitThresholdStaysInsideRange(t *testing.T) {
	v := Value(0.005, FloatDepth, 8)
	require.Greater(t, v, 0.0)
	require.Less(t, v, 255.0)
}

func TestValueRoundTripApproximatelyIdentity(t *testing.T) {
	for _, bits := range []int{8, 10, 12, 16} {
		peak := PeakValue(bits, types.ValueRangeFull, false)
		tolerance := 1 / peak
		for _, original := range []float64{0.005, 0.1, 0.5, 0.9} {
			down := Value(original, FloatDepth, bits)
			up := Value(down, bits, FloatDepth)
			require.InDelta(t, original, up, tolerance,
				"bits=%d original=%v down=%v up=%v", bits, original, down, up)
		}
	}
}

func TestValueIdentityAtSameDepth(t *testing.T) {
	require.Equal(t, 0.25, Value(0.25, FloatDepth, FloatDepth))
	require.Equal(t, 128.0, Value(128, 8, 8))
}

func TestValueWithParamsLimitedRange(t *testing.T) {
	require.Equal(t, 235.0, ValueWithParams(1.0, FloatDepth, 8, Params{
		RangeIn:  types.ValueRangeFull,
		RangeOut: types.ValueRangeLimited,
	}))
	require.Equal(t, 240.0, ValueWithParams(1.0, FloatDepth, 8, Params{
		RangeIn:  types.ValueRangeFull,
		RangeOut: types.ValueRangeLimited,
		Chroma:   true,
	}))
}

func TestPeakValue(t *testing.T) {
	require.Equal(t, 255.0, PeakValue(8, types.ValueRangeFull, false))
	require.Equal(t, 1023.0, PeakValue(10, types.ValueRangeFull, false))
	require.Equal(t, 65535.0, PeakValue(16, types.ValueRangeFull, false))
	require.Equal(t, 1.0, PeakValue(FloatDepth, types.ValueRangeFull, false))
	require.Equal(t, 940.0, PeakValue(10, types.ValueRangeLimited, false))
	require.Equal(t, 960.0, PeakValue(10, types.ValueRangeLimited, true))
}
