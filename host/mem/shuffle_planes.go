package mem

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
)

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
	if plane < 0 || plane >= src.VideoFormat.NumPlanes() {
		return nil, fmt.Errorf("'%s' has no plane #%d", src, plane)
	}
	frames := make([]Frame, len(src.Frames))
	for frameIdx, frame := range src.Frames {
		frames[frameIdx] = Frame{
			Planes: []Plane{frame.Planes[plane].Clone()},
			Stats:  frame.Stats,
		}
	}
	return c.newClip(src.VideoFormat.PlaneFormat(plane), frames), nil
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
	clipFor := func(semantic int) *Clip {
		if semantic >= len(clips) {
			return clips[len(clips)-1]
		}
		return clips[semantic]
	}
	numFrames := clips[0].NumFrames()
	for _, clip := range clips {
		if clip.NumFrames() != numFrames {
			return nil, fmt.Errorf("the inputs disagree on the frame count: %d vs %d", numFrames, clip.NumFrames())
		}
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
	if family != types.ColorFamilyRGB {
		chroma := clipFor(1)
		chromaW, chromaH := chroma.VideoFormat.PlaneDimensions(planes[1])
		ssW, err := subSamplingShift(lumaW, chromaW)
		if err != nil {
			return nil, fmt.Errorf("unable to derive the horizontal subsampling: %w", err)
		}
		ssH, err := subSamplingShift(lumaH, chromaH)
		if err != nil {
			return nil, fmt.Errorf("unable to derive the vertical subsampling: %w", err)
		}
		format.SubSamplingW, format.SubSamplingH = ssW, ssH
	}

	frames := make([]Frame, numFrames)
	for frameIdx := range frames {
		resultPlanes := make([]Plane, family.NumPlanes())
		for semantic := 0; semantic < family.NumPlanes(); semantic++ {
			source := clipFor(semantic)
			if planes[semantic] < 0 || planes[semantic] >= source.VideoFormat.NumPlanes() {
				return nil, fmt.Errorf("'%s' has no plane #%d", source, planes[semantic])
			}
			resultPlanes[semantic] = source.Frames[frameIdx].Planes[planes[semantic]].Clone()
		}
		frames[frameIdx] = Frame{Planes: resultPlanes}
	}
	return c.newClip(format, frames), nil
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
