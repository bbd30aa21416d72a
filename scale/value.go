// Package scale converts scalar parameter values (thresholds, strengths)
// between the numeric ranges of different clip bit depths: the normalized
// range of full floating precision and the native ranges of integer
// depths. The conversion direction is always explicit; it is never
// inferred from the value itself.
package scale

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/xaionaro-go/avdenoise/types"
)

// FloatDepth is the bit depth treated as "full floating precision": values
// at this depth live in the normalized 0..1 range.
const FloatDepth = 32

// Params controls range handling for a value rescale.
type Params struct {
	RangeIn  types.ValueRange
	RangeOut types.ValueRange
	Chroma   bool
}

// PeakValue returns the peak of the representable range at the given
// integer bit depth (or 1 for full floating precision). Assumes depths
// within 8..32.
func PeakValue(bits int, valueRange types.ValueRange, chroma bool) float64 {
	if bits >= FloatDepth {
		return 1
	}
	if valueRange == types.ValueRangeLimited {
		if chroma {
			return float64(uint64(240) << (bits - 8))
		}
		return float64(uint64(235) << (bits - 8))
	}
	return float64(uint64(1)<<bits - 1)
}

// Value rescales value from inputBits to outputBits assuming full-range
// values (the convention for masks). Inputs at FloatDepth are normalized
// 0..1; integer outputs are rounded to the nearest representable value.
func Value[T constraints.Integer | constraints.Float](value T, inputBits, outputBits int) float64 {
	return ValueWithParams(value, inputBits, outputBits, Params{
		RangeIn:  types.ValueRangeFull,
		RangeOut: types.ValueRangeFull,
	})
}

// ValueWithParams is Value with explicit range handling per side.
func ValueWithParams[T constraints.Integer | constraints.Float](
	value T,
	inputBits int,
	outputBits int,
	params Params,
) float64 {
	result := float64(value)
	if inputBits == outputBits && params.RangeIn == params.RangeOut {
		return result
	}

	inputPeak := PeakValue(inputBits, params.RangeIn, params.Chroma)
	outputPeak := PeakValue(outputBits, params.RangeOut, params.Chroma)
	result *= outputPeak / inputPeak

	if outputBits < FloatDepth {
		result = math.Round(result)
	}
	return result
}
