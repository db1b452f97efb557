// Package flow defines domain-specific errors
package flow

import "errors"

// Domain errors - DRY principle: defined once, used everywhere
var (
	ErrInvalidDocument     = errors.New("invalid flow document JSON")
	ErrComponentNotFound   = errors.New("component type not found")
	ErrComponentIDNotFound = errors.New("component not found")
	ErrMultipleComponents  = errors.New("multiple components of type found")
	ErrInputNotFound       = errors.New("component input not found")
	ErrFlowNotFound        = errors.New("flow not found")
)
