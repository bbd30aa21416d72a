package lavfi

import (
	"fmt"

	"github.com/xaionaro-go/avdenoise/plugin"
)

// ErrUnknownFunction is returned by Plugin.Invoke when the namespace has
// no such filter function.
type ErrUnknownFunction struct {
	Namespace plugin.Namespace
	Function  plugin.Function
}

func (e ErrUnknownFunction) Error() string {
	return fmt.Sprintf("unknown function '%s' in plugin '%s'", e.Function, e.Namespace)
}

// ErrMissingArgument is returned when a translation requires an argument
// the caller did not provide.
type ErrMissingArgument struct {
	Key string
}

func (e ErrMissingArgument) Error() string {
	return fmt.Sprintf("required argument '%s' is not set", e.Key)
}

// ErrForeignClip is returned when a clip-valued argument was produced by
// a different host and cannot participate in this graph.
type ErrForeignClip struct {
	Value any
}

func (e ErrForeignClip) Error() string {
	return fmt.Sprintf("the clip %v (%T) does not belong to this host", e.Value, e.Value)
}

// ErrUnsupportedExpression is returned for per-pixel expressions this
// host has no libavfilter rendition for.
type ErrUnsupportedExpression struct {
	Expression string
}

func (e ErrUnsupportedExpression) Error() string {
	return fmt.Sprintf("no libavfilter rendition for the expression '%s'", e.Expression)
}

// ErrUnsupportedFormat is returned when a clip format has no libavfilter
// pixel format equivalent.
type ErrUnsupportedFormat struct {
	Format string
}

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("no libavfilter pixel format for '%s'", e.Format)
}
