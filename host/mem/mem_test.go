package mem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avdenoise"
	"github.com/xaionaro-go/avdenoise/filter"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/plugin/plugintest"
	"github.com/xaionaro-go/avdenoise/scale"
	"github.com/xaionaro-go/avdenoise/types"
	"github.com/xaionaro-go/typing"
)

func TestNewSourceClipValidatesTheFrames(t *testing.T) {
	ctx := context.Background()
	core := NewCore()

	_, err := core.NewUniformSourceClip(ctx, types.VideoFormat{
		ColorFamily:   types.ColorFamilyGray,
		SampleType:    types.SampleTypeFloat,
		BitsPerSample: 32,
		Width:         8,
		Height:        8,
	}, 1, 0)
	require.ErrorContains(t, err, "integer")

	small, err := NewPlane(8, 4, 4)
	require.NoError(t, err)
	_, err = core.NewSourceClip(ctx, gray8(8, 8), []Frame{{Planes: []Plane{small}}})
	require.ErrorContains(t, err, "4x4")

	_, err = core.NewUniformSourceClip(ctx, yuv420p8(8, 8), 1, 50)
	require.ErrorContains(t, err, "plane values")
}

func TestForeignClipsAreRejected(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	alien := plugintest.NewClip("alien", gray8(8, 8), 10)

	_, err := filter.Prewitt(ctx, core, alien)
	require.Error(t, err)
	var foreign ErrForeignClip
	require.ErrorAs(t, err, &foreign)
}

func TestBinarizeThresholdBoundary(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	samples := []int{127, 128, 129, 0}
	src := grayClip(t, core, 4, 1, func(x, _ int) int { return samples[x] })

	binary, err := filter.Binarize(ctx, core, src, scale.Fraction(0.5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 255, 255, 0}, sampleRow(binary.(*Clip).Plane(0, 0), 0))
}

func TestMaxMergeIsThePixelwiseMaximum(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	samplesA := []int{10, 200, 30, 255}
	samplesB := []int{50, 60, 20, 40}
	a := grayClip(t, core, 4, 1, func(x, _ int) int { return samplesA[x] })
	b := grayClip(t, core, 4, 1, func(x, _ int) int { return samplesB[x] })

	merged, err := filter.MaxMerge(ctx, core, a, b)
	require.NoError(t, err)
	require.Equal(t, []int{50, 200, 30, 255}, sampleRow(merged.(*Clip).Plane(0, 0), 0))
}

func TestPrewittFlagsEdgesOnly(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src := grayClip(t, core, 16, 16, func(x, _ int) int {
		if x >= 8 {
			return 250
		}
		return 10
	})

	edges, err := filter.Prewitt(ctx, core, src)
	require.NoError(t, err)
	plane := edges.(*Clip).Plane(0, 0)
	require.Zero(t, plane.Sample(2, 8))
	require.Equal(t, 255, plane.Sample(7, 8))
	require.Equal(t, 255, plane.Sample(8, 8))
	require.Zero(t, plane.Sample(13, 8))
}

func TestPlaneStatsMeasuresTheFirstPlane(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	samples := [][]int{{0, 255}, {100, 45}}
	src := grayClip(t, core, 2, 2, func(x, y int) int { return samples[y][x] })

	measured, err := filter.PlaneStats(ctx, core, src)
	require.NoError(t, err)
	stats := measured.(*Clip).Frames[0].Stats
	require.NotNil(t, stats)
	require.Equal(t, 0, stats.Minimum)
	require.Equal(t, 255, stats.Maximum)
	require.InEpsilon(t, 100.0/255.0, stats.Average, 1e-9)
}

func TestDepthRoundTripIsExact(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	samples := []int{0, 128, 255}
	src := grayClip(t, core, 3, 1, func(x, _ int) int { return samples[x] })

	deep, err := filter.Depth(ctx, core, src, 16, types.SampleTypeInteger)
	require.NoError(t, err)
	require.Equal(t, 16, deep.Format().BitsPerSample)
	require.Equal(t, []int{0, 128 * 257, 65535}, sampleRow(deep.(*Clip).Plane(0, 0), 0))

	back, err := filter.Depth(ctx, core, deep, 8, types.SampleTypeInteger)
	require.NoError(t, err)
	require.Equal(t, src.Format(), back.Format())
	require.Equal(t, samples, sampleRow(back.(*Clip).Plane(0, 0), 0))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	frames := make([]Frame, 2)
	for frameIdx := range frames {
		frames[frameIdx] = Frame{Planes: []Plane{
			filledPlane(t, 8, 8, 8, func(x, y int) int { return (x*31 + y*17) % 256 }),
			filledPlane(t, 8, 4, 4, func(x, y int) int { return (x*7 + y*13 + 3) % 256 }),
			filledPlane(t, 8, 4, 4, func(_, _ int) int { return 200 }),
		}}
	}
	src, err := core.NewSourceClip(ctx, yuv420p8(8, 8), frames)
	require.NoError(t, err)

	planes, err := filter.SplitPlanes(ctx, core, src)
	require.NoError(t, err)
	require.Len(t, planes, 3)
	require.Equal(t, gray8(8, 8), planes[0].Format())
	require.Equal(t, gray8(4, 4), planes[1].Format())

	joined, err := filter.JoinPlanes(ctx, core, planes, types.ColorFamilyYUV)
	require.NoError(t, err)
	require.Equal(t, src.Format(), joined.Format())
	require.Equal(t, src.NumFrames(), joined.NumFrames())
	for planeIdx := 0; planeIdx < 3; planeIdx++ {
		want := src.Plane(1, planeIdx)
		got := joined.(*Clip).Plane(1, planeIdx)
		for y := 0; y < want.Bounds().Dy(); y++ {
			require.Equal(t, sampleRow(want, y), sampleRow(got, y), "plane %d row %d", planeIdx, y)
		}
	}
}

func TestRangeMaskOfFlatFieldIsEmpty(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewUniformSourceClip(ctx, gray8(16, 16), 1, 77)
	require.NoError(t, err)

	mask, err := filter.RangeMask(ctx, core, src, 1, 1)
	require.NoError(t, err)
	require.Zero(t, countNonZero(mask.(*Clip).Plane(0, 0)))
}

func TestRangeMaskWidensWithTheRadius(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	step := func(x, _ int) int {
		if x >= 8 {
			return 255
		}
		return 0
	}

	narrow, err := filter.RangeMask(ctx, core, grayClip(t, core, 16, 16, step), 1, 1)
	require.NoError(t, err)
	wide, err := filter.RangeMask(ctx, core, grayClip(t, core, 16, 16, step), 2, 2)
	require.NoError(t, err)

	// radius 1 flags the two columns along the step, radius 2 four
	require.Equal(t, 2*16, countNonZero(narrow.(*Clip).Plane(0, 0)))
	require.Equal(t, 4*16, countNonZero(wide.(*Clip).Plane(0, 0)))
}

func TestRangeMaskChromaRadiusZeroKeepsChroma(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewUniformSourceClip(ctx, yuv420p8(8, 8), 1, 50, 200, 200)
	require.NoError(t, err)

	mask, err := filter.RangeMask(ctx, core, src, 1, 0)
	require.NoError(t, err)
	m := mask.(*Clip)
	require.Zero(t, countNonZero(m.Plane(0, 0)))
	require.Equal(t, 200, m.Plane(0, 1).Sample(0, 0))
	require.Equal(t, 200, m.Plane(0, 2).Sample(0, 0))
}

func TestRemoveGrainClippersFlattenLoneSpeckles(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	speckle := func(x, y int) int {
		if x == 2 && y == 2 {
			return 255
		}
		return 0
	}
	src := grayClip(t, core, 5, 5, speckle)

	cleaned, err := filter.RemoveGrain(ctx, core, src, 22)
	require.NoError(t, err)
	plane := cleaned.(*Clip).Plane(0, 0)
	require.Zero(t, plane.Sample(2, 2))
	require.Zero(t, plane.Sample(2, 1))

	kept, err := filter.RemoveGrain(ctx, core, src, 0)
	require.NoError(t, err)
	require.Equal(t, 255, kept.(*Clip).Plane(0, 0).Sample(2, 2))

	_, err = filter.RemoveGrain(ctx, core, src, 13)
	require.ErrorContains(t, err, "not implemented")
}

func TestRemoveGrainBinomialSpreadsTheSpeckle(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src := grayClip(t, core, 5, 5, func(x, y int) int {
		if x == 2 && y == 2 {
			return 255
		}
		return 0
	})

	smoothed, err := filter.RemoveGrain(ctx, core, src, 11)
	require.NoError(t, err)
	plane := smoothed.(*Clip).Plane(0, 0)
	require.Equal(t, (255*4+8)/16, plane.Sample(2, 2))
	require.Equal(t, (255*2+8)/16, plane.Sample(2, 1))
	require.Equal(t, (255+8)/16, plane.Sample(1, 1))
}

func TestGaussianBlurKeepsFlatFieldsFlat(t *testing.T) {
	ctx := context.Background()
	core := NewCore()

	flat8, err := core.NewUniformSourceClip(ctx, gray8(16, 16), 1, 100)
	require.NoError(t, err)
	blurred, err := filter.Gaussian(ctx, core, flat8, 1.5)
	require.NoError(t, err)
	plane := blurred.(*Clip).Plane(0, 0)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.InDelta(t, 100, plane.Sample(x, y), 1)
		}
	}

	flat16, err := core.NewUniformSourceClip(ctx, gray16(16, 16), 1, 100*257)
	require.NoError(t, err)
	blurred, err = filter.Gaussian(ctx, core, flat16, 1.5)
	require.NoError(t, err)
	plane = blurred.(*Clip).Plane(0, 0)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.InDelta(t, 100*257, plane.Sample(x, y), 1)
		}
	}
}

func TestDetailMaskOfFlatFootageIsEmpty(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewUniformSourceClip(ctx, yuv420p8(32, 32), 2, 20, 128, 128)
	require.NoError(t, err)

	mask, err := avdenoise.DetailMask(ctx, core, src, avdenoise.DetailMaskParams{})
	require.NoError(t, err)
	require.Equal(t, gray8(32, 32), mask.Format())
	require.Equal(t, 2, mask.NumFrames())
	for frameIdx := 0; frameIdx < 2; frameIdx++ {
		require.Zero(t, countNonZero(mask.(*Clip).Plane(frameIdx, 0)))
	}
}

func TestDetailMaskWithPreBlurStaysEmptyOnFlatFootage(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewUniformSourceClip(ctx, yuv420p8(32, 32), 1, 20, 128, 128)
	require.NoError(t, err)

	mask, err := avdenoise.DetailMask(ctx, core, src, avdenoise.DetailMaskParams{
		Sigma: typing.Opt(1.5),
	})
	require.NoError(t, err)
	require.Equal(t, gray8(32, 32), mask.Format())
	require.Zero(t, countNonZero(mask.(*Clip).Plane(0, 0)))
}

func TestDetailMaskCoversDetailAndItsHalo(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src := yuvClip(t, core, 32, 32, 1, func(x, y int) int {
		if x >= 13 && x < 19 && y >= 13 && y < 19 {
			return 200
		}
		return 20
	})

	mask, err := avdenoise.DetailMask(ctx, core, src, avdenoise.DetailMaskParams{})
	require.NoError(t, err)
	require.Equal(t, gray8(32, 32), mask.Format())
	plane := mask.(*Clip).Plane(0, 0)

	// the square and the reach of the range mask stay fully protected
	require.Equal(t, 255, plane.Sample(15, 15))
	require.Equal(t, 255, plane.Sample(13, 15))
	require.Equal(t, 255, plane.Sample(11, 15))

	// the despeckle pass feathers the rim of the mask
	halo := plane.Sample(9, 15)
	require.Greater(t, halo, 0)
	require.Less(t, halo, 255)

	require.Zero(t, plane.Sample(8, 15))
	require.Zero(t, plane.Sample(3, 3))
	require.Zero(t, plane.Sample(28, 28))
}

func TestQuickDenoiseReportsTheMissingDenoiser(t *testing.T) {
	ctx := context.Background()
	core := NewCore()
	src, err := core.NewUniformSourceClip(ctx, yuv420p8(32, 32), 1, 20, 128, 128)
	require.NoError(t, err)

	_, err = avdenoise.QuickDenoise(ctx, core, src, avdenoise.QuickDenoiseParams{})
	require.Error(t, err)
	var missing plugin.ErrMissingDependency
	require.ErrorAs(t, err, &missing)
	require.Equal(t, plugin.NamespaceKNLMeans, missing.Namespace)
}

func gray8(width, height int) types.VideoFormat {
	return types.VideoFormat{
		ColorFamily:   types.ColorFamilyGray,
		SampleType:    types.SampleTypeInteger,
		BitsPerSample: 8,
		Width:         width,
		Height:        height,
	}
}

func gray16(width, height int) types.VideoFormat {
	format := gray8(width, height)
	format.BitsPerSample = 16
	return format
}

func yuv420p8(width, height int) types.VideoFormat {
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

func filledPlane(t *testing.T, bits, width, height int, fill func(x, y int) int) Plane {
	t.Helper()
	plane, err := NewPlane(bits, width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			plane.SetSample(x, y, fill(x, y))
		}
	}
	return plane
}

func grayClip(t *testing.T, core *Core, width, height int, fill func(x, y int) int) *Clip {
	t.Helper()
	clip, err := core.NewSourceClip(context.Background(), gray8(width, height), []Frame{
		{Planes: []Plane{filledPlane(t, 8, width, height, fill)}},
	})
	require.NoError(t, err)
	return clip
}

func yuvClip(t *testing.T, core *Core, width, height, numFrames int, lumaFill func(x, y int) int) *Clip {
	t.Helper()
	frames := make([]Frame, numFrames)
	for frameIdx := range frames {
		frames[frameIdx] = Frame{Planes: []Plane{
			filledPlane(t, 8, width, height, lumaFill),
			filledPlane(t, 8, width/2, height/2, func(_, _ int) int { return 128 }),
			filledPlane(t, 8, width/2, height/2, func(_, _ int) int { return 128 }),
		}}
	}
	clip, err := core.NewSourceClip(context.Background(), yuv420p8(width, height), frames)
	require.NoError(t, err)
	return clip
}

func sampleRow(plane Plane, y int) []int {
	row := make([]int, plane.Bounds().Dx())
	for x := range row {
		row[x] = plane.Sample(x, y)
	}
	return row
}

func countNonZero(plane Plane) int {
	count := 0
	bounds := plane.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if plane.Sample(x, y) != 0 {
				count++
			}
		}
	}
	return count
}
