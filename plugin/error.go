package plugin

import "fmt"

// ErrMissingDependency is returned by Core.Plugin when the requested
// plugin namespace is not installed in the host.
type ErrMissingDependency struct {
	Namespace Namespace
	Err       error
}

func (e ErrMissingDependency) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing dependency '%s': %v", e.Namespace, e.Err)
	}
	return fmt.Sprintf("missing dependency '%s'", e.Namespace)
}

func (e ErrMissingDependency) Unwrap() error {
	return e.Err
}
