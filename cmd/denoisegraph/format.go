package main

import (
	"fmt"

	"github.com/xaionaro-go/avdenoise/host/lavfi"
	"github.com/xaionaro-go/avdenoise/types"
)

// parseFormat resolves a pixel format name by probing every format the
// lavfi host can name, so the accepted names always match what the host
// supports.
func parseFormat(name string, width, height int) (types.VideoFormat, error) {
	for _, candidate := range formatCandidates() {
		got, err := lavfi.PixelFormatName(candidate)
		if err != nil {
			continue
		}
		if got == name {
			candidate.Width, candidate.Height = width, height
			return candidate, nil
		}
	}
	return types.VideoFormat{}, fmt.Errorf("unknown pixel format '%s'", name)
}

func formatCandidates() []types.VideoFormat {
	subSamplings := [][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 0}, {2, 2}}
	result := []types.VideoFormat{
		{ColorFamily: types.ColorFamilyGray, SampleType: types.SampleTypeFloat, BitsPerSample: 32},
		{ColorFamily: types.ColorFamilyRGB, SampleType: types.SampleTypeFloat, BitsPerSample: 32},
	}
	for _, bits := range []int{8, 9, 10, 12, 14, 16} {
		result = append(result,
			types.VideoFormat{ColorFamily: types.ColorFamilyGray, SampleType: types.SampleTypeInteger, BitsPerSample: bits},
			types.VideoFormat{ColorFamily: types.ColorFamilyRGB, SampleType: types.SampleTypeInteger, BitsPerSample: bits},
		)
		for _, ss := range subSamplings {
			result = append(result, types.VideoFormat{
				ColorFamily:   types.ColorFamilyYUV,
				SampleType:    types.SampleTypeInteger,
				BitsPerSample: bits,
				SubSamplingW:  ss[0],
				SubSamplingH:  ss[1],
			})
		}
	}
	return result
}
