// video_format.go defines the VideoFormat type describing a clip's pixel layout.

package types

import (
	"fmt"
)

// VideoFormat describes the pixel layout of a clip: color family, sample
// type, bit depth, chroma subsampling (log2) and frame dimensions.
//
// The zero value means the format is not determinate (e.g. a
// variable-format clip), which most operations refuse to work on.
type VideoFormat struct {
	ColorFamily   ColorFamily `yaml:"color_family"`
	SampleType    SampleType  `yaml:"sample_type"`
	BitsPerSample int         `yaml:"bits_per_sample"`
	SubSamplingW  int         `yaml:"sub_sampling_w"`
	SubSamplingH  int         `yaml:"sub_sampling_h"`
	Width         int         `yaml:"width"`
	Height        int         `yaml:"height"`
}

func (f VideoFormat) IsZero() bool {
	return f == VideoFormat{}
}

func (f VideoFormat) IsFloat() bool {
	return f.SampleType == SampleTypeFloat
}

func (f VideoFormat) NumPlanes() int {
	return f.ColorFamily.NumPlanes()
}

// PlaneDimensions returns the dimensions of the given plane index,
// accounting for chroma subsampling on planes 1 and 2.
func (f VideoFormat) PlaneDimensions(plane int) (width, height int) {
	if plane == 0 || f.ColorFamily == ColorFamilyRGB {
		return f.Width, f.Height
	}
	return f.Width >> f.SubSamplingW, f.Height >> f.SubSamplingH
}

// PlaneFormat returns the format of the given plane extracted into a
// standalone single-plane (gray) clip.
func (f VideoFormat) PlaneFormat(plane int) VideoFormat {
	w, h := f.PlaneDimensions(plane)
	return VideoFormat{
		ColorFamily:   ColorFamilyGray,
		SampleType:    f.SampleType,
		BitsPerSample: f.BitsPerSample,
		Width:         w,
		Height:        h,
	}
}

// WithDepth returns a copy of the format converted to the given bit depth
// and sample type.
func (f VideoFormat) WithDepth(bits int, sampleType SampleType) VideoFormat {
	f.BitsPerSample = bits
	f.SampleType = sampleType
	return f
}

func (f VideoFormat) String() string {
	if f.IsZero() {
		return "undefined"
	}
	name := f.ColorFamily.String()
	switch f.ColorFamily {
	case ColorFamilyYUV, ColorFamilyYCoCg:
		name += f.SubSamplingName() + "p"
	case ColorFamilyRGB:
		name += "p"
	}
	if f.IsFloat() {
		name += "f"
	}
	name += fmt.Sprintf("%d", f.BitsPerSample)
	if f.Width != 0 || f.Height != 0 {
		name += fmt.Sprintf(" %dx%d", f.Width, f.Height)
	}
	return name
}

// SubSamplingName returns the conventional three-digit name of the
// chroma subsampling layout ("420", "444", ...).
func (f VideoFormat) SubSamplingName() string {
	switch [2]int{f.SubSamplingW, f.SubSamplingH} {
	case [2]int{0, 0}:
		return "444"
	case [2]int{1, 0}:
		return "422"
	case [2]int{1, 1}:
		return "420"
	case [2]int{0, 1}:
		return "440"
	case [2]int{2, 0}:
		return "411"
	case [2]int{2, 2}:
		return "410"
	default:
		return fmt.Sprintf("ss%d%d", f.SubSamplingW, f.SubSamplingH)
	}
}
