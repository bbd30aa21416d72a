package lavfi

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avdenoise/types"
)

// PixelFormatName maps a clip format onto the matching libavfilter pixel
// format name. Half-float depths and the YCoCg family have no libavfilter
// equivalent and are rejected.
func PixelFormatName(f types.VideoFormat) (string, error) {
	if f.IsZero() {
		return "", ErrUnsupportedFormat{Format: f.String()}
	}
	switch f.ColorFamily {
	case types.ColorFamilyGray:
		switch {
		case f.IsFloat() && f.BitsPerSample == 32:
			return "grayf32le", nil
		case f.IsFloat():
			return "", ErrUnsupportedFormat{Format: f.String()}
		case f.BitsPerSample == 8:
			return "gray", nil
		default:
			return fmt.Sprintf("gray%dle", f.BitsPerSample), nil
		}
	case types.ColorFamilyYUV:
		if f.IsFloat() {
			return "", ErrUnsupportedFormat{Format: f.String()}
		}
		name := "yuv" + f.SubSamplingName() + "p"
		if f.BitsPerSample != 8 {
			name += fmt.Sprintf("%dle", f.BitsPerSample)
		}
		return name, nil
	case types.ColorFamilyRGB:
		switch {
		case f.IsFloat() && f.BitsPerSample == 32:
			return "gbrpf32le", nil
		case f.IsFloat():
			return "", ErrUnsupportedFormat{Format: f.String()}
		case f.BitsPerSample == 8:
			return "gbrp", nil
		default:
			return fmt.Sprintf("gbrp%dle", f.BitsPerSample), nil
		}
	}
	return "", ErrUnsupportedFormat{Format: f.String()}
}

// PixelFormat resolves the clip format to the libavfilter pixel format
// identifier, verifying the format actually exists in the linked build.
func PixelFormat(f types.VideoFormat) (astiav.PixelFormat, error) {
	name, err := PixelFormatName(f)
	if err != nil {
		return astiav.PixelFormatNone, err
	}
	pf := astiav.FindPixelFormatByName(name)
	if pf == astiav.PixelFormatNone {
		return astiav.PixelFormatNone, ErrUnsupportedFormat{Format: name}
	}
	return pf, nil
}

// planeName returns the libavfilter component name of the given plane
// index within the family ("y"/"u"/"v" or "r"/"g"/"b").
func planeName(family types.ColorFamily, plane int) (string, error) {
	var names []string
	switch family {
	case types.ColorFamilyGray, types.ColorFamilyYUV, types.ColorFamilyYCoCg:
		names = []string{"y", "u", "v"}
	case types.ColorFamilyRGB:
		names = []string{"r", "g", "b"}
	default:
		return "", fmt.Errorf("unable to name the planes of the '%s' family", family)
	}
	if plane < 0 || plane >= len(names) || plane >= family.NumPlanes() {
		return "", fmt.Errorf("the '%s' family has no plane #%d", family, plane)
	}
	return names[plane], nil
}
