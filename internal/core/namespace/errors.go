// Package namespace defines domain-specific errors
package namespace

import (
	"errors"
	"fmt"
)

// Domain errors - DRY principle: defined once, used everywhere
var (
	// ErrResolution is matched by errors.Is for any ResolutionError.
	ErrResolution = errors.New("namespace resolution failed")
	// ErrAttributeMissing is matched by errors.Is for any AttributeError.
	ErrAttributeMissing = errors.New("attribute missing")
	// ErrInvalidName rejects malformed dotted identifiers.
	ErrInvalidName = errors.New("invalid dotted name")
	// ErrNotRegistered reports a lookup for a shadow name never registered.
	ErrNotRegistered = errors.New("namespace not registered")
)

// ResolutionError reports that a canonical namespace could not be loaded
// when a shadow node first needed it. Registration only probes existence,
// so this surfaces at attribute-access time, not at register time.
type ResolutionError struct {
	Shadow    string
	Canonical string
	Cause     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot load %q for backwards compatibility with %q: %v", e.Canonical, e.Shadow, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return ErrResolution }

// Is lets errors.Is(err, ErrResolution) match while preserving the cause in the message.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution || errors.Is(e.Cause, target)
}

// AttributeError reports that a resolved namespace has no such attribute.
type AttributeError struct {
	Namespace string
	Attribute string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("namespace %q has no attribute %q", e.Namespace, e.Attribute)
}

func (e *AttributeError) Unwrap() error { return ErrAttributeMissing }
