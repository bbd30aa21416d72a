// sample_type.go defines the SampleType enum and its methods.

package types

import "fmt"

type SampleType int

const (
	SampleTypeInteger = SampleType(0x0)
	SampleTypeFloat   = SampleType(0x1)
)

func SampleTypes() []SampleType {
	return []SampleType{
		SampleTypeInteger,
		SampleTypeFloat,
	}
}

func (t SampleType) String() string {
	switch t {
	case SampleTypeInteger:
		return "integer"
	case SampleTypeFloat:
		return "float"
	default:
		return "SampleType(" + fmt.Sprintf("%d", int(t)) + ")"
	}
}
