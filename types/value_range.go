// value_range.go defines the ValueRange enum (limited/TV vs full/PC range).

package types

import "fmt"

type ValueRange int

const (
	ValueRangeLimited = ValueRange(0x0)
	ValueRangeFull    = ValueRange(0x1)
)

func (r ValueRange) String() string {
	switch r {
	case ValueRangeLimited:
		return "limited"
	case ValueRangeFull:
		return "full"
	default:
		return "ValueRange(" + fmt.Sprintf("%d", int(r)) + ")"
	}
}
