//go:build with_cv
// +build with_cv

package cv

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/host/mem"
	"github.com/xaionaro-go/avdenoise/logger"
	"github.com/xaionaro-go/avdenoise/plugin"
	"github.com/xaionaro-go/avdenoise/types"
	"gocv.io/x/gocv"
)

const (
	defaultStrength     = 3.0
	templateWindowSize  = 7
	defaultSearchWindow = 21
)

// nlMeans runs fastNlMeans over every plane of every frame. It accepts
// the option keys of both non-local-means flavors: 'a' or 'ax'/'ay' for
// the search radius, 'h' for the strength. The temporal radius ('d' or
// 'az') has no fastNlMeans counterpart and is dropped.
func (c *Core) nlMeans(
	ctx context.Context,
	args types.FilterOptions,
) (plugin.Clip, error) {
	src, err := clipArg(args, plugin.KeyClip)
	if err != nil {
		return nil, err
	}
	if src.VideoFormat.BitsPerSample != 8 {
		return nil, fmt.Errorf("the OpenCV host denoises 8-bit planes only, got %d-bit", src.VideoFormat.BitsPerSample)
	}

	strength := defaultStrength
	if h, ok := args.GetFloat("h"); ok {
		strength = h
	}
	searchRadius := int64(0)
	for _, key := range []string{"a", "ax", "ay"} {
		if a, ok := args.GetInt(key); ok && a > searchRadius {
			searchRadius = a
		}
	}
	searchWindow := defaultSearchWindow
	if searchRadius > 0 {
		searchWindow = int(2*searchRadius + 1)
	}
	for _, key := range []string{"d", "az"} {
		if d, ok := args.GetInt(key); ok && d > 0 {
			logger.Debugf(ctx, "fastNlMeans is spatial only, dropping the temporal radius %d", d)
			break
		}
	}

	frames := make([]mem.Frame, len(src.Frames))
	for frameIdx, frame := range src.Frames {
		planes := make([]mem.Plane, len(frame.Planes))
		for planeIdx, plane := range frame.Planes {
			denoised, err := denoisePlane(plane, float32(strength), searchWindow)
			if err != nil {
				return nil, fmt.Errorf("unable to denoise frame #%d plane #%d: %w", frameIdx, planeIdx, err)
			}
			planes[planeIdx] = denoised
		}
		frames[frameIdx] = mem.Frame{Planes: planes, Stats: frame.Stats}
	}
	return c.Core.NewSourceClip(ctx, src.VideoFormat, frames)
}

func denoisePlane(plane mem.Plane, strength float32, searchWindow int) (mem.Plane, error) {
	bounds := plane.Bounds()
	src := gocv.NewMatWithSize(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC1)
	defer src.Close()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			src.SetUCharAt(y, x, uint8(plane.Sample(x, y)))
		}
	}

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.FastNlMeansDenoisingWithParams(src, &dst, strength, templateWindowSize, searchWindow)
	if dst.Empty() {
		return nil, fmt.Errorf("fastNlMeans produced an empty result")
	}

	result := plane.CloneEmpty()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			result.SetSample(x, y, int(dst.GetUCharAt(y, x)))
		}
	}
	return result, nil
}
