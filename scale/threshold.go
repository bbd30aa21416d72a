// threshold.go defines depth-aware threshold values for binarization.

package scale

import (
	"fmt"

	"github.com/xaionaro-go/avdenoise/types"
)

// Basis states which numeric range a Threshold value was authored in.
type Basis int

const (
	// BasisNormalized means the value lives in the 0..1 range of full
	// floating precision.
	BasisNormalized = Basis(0x0)

	// BasisNative means the value lives in the clip's own integer range.
	BasisNative = Basis(0x1)
)

func (b Basis) String() string {
	switch b {
	case BasisNormalized:
		return "normalized"
	case BasisNative:
		return "native"
	default:
		return "Basis(" + fmt.Sprintf("%d", int(b)) + ")"
	}
}

// Threshold is a binarization threshold together with the range it was
// authored in, so the rescale direction is explicit rather than guessed
// from the value.
type Threshold struct {
	Value float64
	Basis Basis
}

// Fraction authors a threshold in the normalized 0..1 range.
func Fraction(v float64) Threshold {
	return Threshold{Value: v, Basis: BasisNormalized}
}

// Native authors a threshold in the clip's own integer range.
func Native(v float64) Threshold {
	return Threshold{Value: v, Basis: BasisNative}
}

func (t Threshold) IsZero() bool {
	return t == Threshold{}
}

// For resolves the threshold to the numeric range of the given format:
// a normalized threshold is scaled down to the native range of integer
// clips and kept as-is for full-floating-precision clips; a native
// threshold is kept as-is for integer clips and run through the
// reciprocal rescale for full-floating-precision ones.
func (t Threshold) For(format types.VideoFormat) float64 {
	interpretsAsFloat := format.IsFloat() && format.BitsPerSample == FloatDepth
	switch t.Basis {
	case BasisNative:
		if interpretsAsFloat {
			return Value(t.Value, format.BitsPerSample, FloatDepth)
		}
		return t.Value
	default:
		if interpretsAsFloat {
			return t.Value
		}
		return Value(t.Value, FloatDepth, format.BitsPerSample)
	}
}

func (t Threshold) String() string {
	return fmt.Sprintf("%v(%s)", t.Value, t.Basis)
}
