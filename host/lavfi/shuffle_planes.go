package lavfi

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

// shufflePlanes translates std.ShufflePlanes: extraction into gray maps
// onto 'extractplanes', assembling three planes maps onto 'mergeplanes'.
func (c *Core) shufflePlanes(
	ctx context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	clips, err := clipsArg(args, plugin.KeyClips)
	if err != nil {
		return nil, err
	}
	if len(clips) == 0 {
		return nil, fmt.Errorf("at least one input clip is required")
	}
	planesValue, ok := args.Get("planes")
	if !ok {
		return nil, ErrMissingArgument{Key: "planes"}
	}
	planes, ok := planesValue.([]int)
	if !ok {
		return nil, fmt.Errorf("'planes' must be a list of plane indexes, got %T", planesValue)
	}
	familyValue, ok := args.Get("colorfamily")
	if !ok {
		return nil, ErrMissingArgument{Key: "colorfamily"}
	}
	family, ok := familyValue.(types.ColorFamily)
	if !ok {
		return nil, fmt.Errorf("'colorfamily' must be a color family, got %T", familyValue)
	}

	if family == types.ColorFamilyGray {
		if len(planes) != 1 {
			return nil, fmt.Errorf("expected 1 plane index for a gray output, got %d", len(planes))
		}
		return c.extractPlane(ctx, clips[0], planes[0])
	}
	return c.mergePlanes(ctx, clips, planes, family)
}

func (c *Core) extractPlane(
	_ context.Context,
	src *Clip,
	plane int,
) (*Clip, error) {
	component, err := planeName(src.VideoFormat.ColorFamily, plane)
	if err != nil {
		return nil, err
	}
	return c.newNodeClip(
		src.VideoFormat.PlaneFormat(plane),
		src.FrameCount,
		fmt.Sprintf("extractplanes=%s", component),
		src,
	), nil
}

// physicalPlaneOrder gives, per output color family, which semantic plane
// index lands in each physical plane of the libavfilter pixel format
// (planar RGB is stored g, b, r).
func physicalPlaneOrder(family types.ColorFamily) [3]int {
	if family == types.ColorFamilyRGB {
		return [3]int{1, 2, 0}
	}
	return [3]int{0, 1, 2}
}

func (c *Core) mergePlanes(
	_ context.Context,
	clips []*Clip,
	planes []int,
	family types.ColorFamily,
) (*Clip, error) {
	if len(planes) != family.NumPlanes() {
		return nil, fmt.Errorf("expected %d plane indexes for '%s', got %d", family.NumPlanes(), family, len(planes))
	}

	format, err := joinedFormat(clips, planes, family)
	if err != nil {
		return nil, err
	}
	formatName, err := PixelFormatName(format)
	if err != nil {
		return nil, fmt.Errorf("unable to assemble a '%s' clip: %w", family, err)
	}

	// mergeplanes addresses the output by physical plane index, so the
	// semantic plane list is reordered for planar RGB.
	order := physicalPlaneOrder(family)
	var values []string
	inputs := make([]*Clip, 0, len(planes))
	for physical := 0; physical < family.NumPlanes(); physical++ {
		semantic := order[physical]
		streamIdx := semantic
		if streamIdx >= len(clips) {
			streamIdx = len(clips) - 1
		}
		inputs = append(inputs, clips[streamIdx])
		values = append(values,
			fmt.Sprintf("map%ds=%d", physical, len(inputs)-1),
			fmt.Sprintf("map%dp=%d", physical, planes[semantic]),
		)
	}
	values = append(values, "format="+formatName)

	return c.newNodeClip(
		format,
		clips[0].FrameCount,
		"mergeplanes="+strings.Join(values, ":"),
		inputs...,
	), nil
}

// joinedFormat reconstructs the output format of a plane join: depth and
// sample type from the first source, subsampling from the dimensions of
// the luma source versus the first chroma source.
func joinedFormat(
	clips []*Clip,
	planes []int,
	family types.ColorFamily,
) (types.VideoFormat, error) {
	clipFor := func(semantic int) *Clip {
		if semantic >= len(clips) {
			return clips[len(clips)-1]
		}
		return clips[semantic]
	}

	luma := clipFor(0)
	lumaW, lumaH := luma.VideoFormat.PlaneDimensions(planes[0])
	format := types.VideoFormat{
		ColorFamily:   family,
		SampleType:    luma.VideoFormat.SampleType,
		BitsPerSample: luma.VideoFormat.BitsPerSample,
		Width:         lumaW,
		Height:        lumaH,
	}
	if family == types.ColorFamilyRGB {
		return format, nil
	}

	chroma := clipFor(1)
	chromaW, chromaH := chroma.VideoFormat.PlaneDimensions(planes[1])
	ssW, err := subSamplingShift(lumaW, chromaW)
	if err != nil {
		return types.VideoFormat{}, fmt.Errorf("unable to derive the horizontal subsampling: %w", err)
	}
	ssH, err := subSamplingShift(lumaH, chromaH)
	if err != nil {
		return types.VideoFormat{}, fmt.Errorf("unable to derive the vertical subsampling: %w", err)
	}
	format.SubSamplingW, format.SubSamplingH = ssW, ssH
	return format, nil
}

func subSamplingShift(full, sub int) (int, error) {
	if sub <= 0 {
		return 0, nil
	}
	for shift := 0; shift <= 2; shift++ {
		if sub<<shift == full {
			return shift, nil
		}
	}
	return 0, fmt.Errorf("%d is not a half or quarter of %d", sub, full)
}
