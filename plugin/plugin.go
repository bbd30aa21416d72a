// Package plugin defines the interface between the composition wrappers and
// the hosting frame-processing engine. A Core resolves filter plugins by
// namespace; a Plugin invokes named filter functions with an open option
// set and returns new clip handles. Actual pixel computation is deferred
// to, and scheduled by, the host; nothing in this module touches planes.
package plugin

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avdenoise/types"
)

// Clip is a handle to a (lazily evaluated) video clip owned by the host.
// Derived clips are produced by Plugin.Invoke; a Clip is never mutated.
type Clip interface {
	fmt.Stringer

	// Format reports the clip's pixel layout. The zero value means the
	// format is not determinate (variable-format clip).
	Format() types.VideoFormat

	NumFrames() int
}

// Plugin is one external filter plugin, resolved by namespace.
type Plugin interface {
	fmt.Stringer

	Namespace() Namespace

	// Invoke builds a new node in the host's filter graph and returns the
	// resulting clip handle. The args are forwarded to the external filter
	// unchanged (see the Key* conventions for clip-valued arguments).
	Invoke(ctx context.Context, function Function, args types.FilterOptions) (Clip, error)
}

// Core is the hosting engine's plugin registry.
type Core interface {
	fmt.Stringer

	// Plugin resolves a plugin namespace. If the capability is not
	// installed in the host, the error is an ErrMissingDependency.
	Plugin(ctx context.Context, namespace Namespace) (Plugin, error)
}

// Conventional argument keys for clip-valued arguments.
const (
	KeyClip  = "clip"
	KeyClips = "clips"
	KeyRef   = "ref"
)

// ClipsValue extracts a clip-slice argument value.
func ClipsValue(v any) ([]Clip, bool) {
	switch value := v.(type) {
	case []Clip:
		return value, true
	case Clip:
		return []Clip{value}, true
	}
	return nil, false
}

// ClipValue extracts a single-clip argument value.
func ClipValue(v any) (Clip, bool) {
	value, ok := v.(Clip)
	return value, ok
}
