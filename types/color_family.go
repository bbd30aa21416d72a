// color_family.go defines the ColorFamily enum and its methods.

package types

import "fmt"

type ColorFamily int

const (
	ColorFamilyUndefined = ColorFamily(0x0)
	ColorFamilyGray      = ColorFamily(0x1)
	ColorFamilyRGB       = ColorFamily(0x2)
	ColorFamilyYUV       = ColorFamily(0x3)
	ColorFamilyYCoCg     = ColorFamily(0x4)
)

func ColorFamilies() []ColorFamily {
	return []ColorFamily{
		ColorFamilyUndefined,
		ColorFamilyGray,
		ColorFamilyRGB,
		ColorFamilyYUV,
		ColorFamilyYCoCg,
	}
}

func (f ColorFamily) String() string {
	switch f {
	case ColorFamilyUndefined:
		return "undefined"
	case ColorFamilyGray:
		return "gray"
	case ColorFamilyRGB:
		return "rgb"
	case ColorFamilyYUV:
		return "yuv"
	case ColorFamilyYCoCg:
		return "ycocg"
	default:
		return "ColorFamily(" + fmt.Sprintf("%d", int(f)) + ")"
	}
}

// NumPlanes returns how many planes a frame of this color family carries.
func (f ColorFamily) NumPlanes() int {
	switch f {
	case ColorFamilyGray:
		return 1
	case ColorFamilyRGB, ColorFamilyYUV, ColorFamilyYCoCg:
		return 3
	default:
		return 0
	}
}
