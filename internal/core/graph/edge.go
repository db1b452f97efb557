// Package graph provides edge definitions
package graph

// Edge wires a source component's output handle into a target input
// PRINCIPLES:
// - KISS: Simple edge representation
// - SRP: Only responsible for edge data
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`        // Source node ID
	SourceHandle string `json:"source_handle"` // Output name on the source
	Target       string `json:"target"`        // Target node ID
	TargetHandle string `json:"target_handle"` // Input name on the target
}

// Validate ensures edge integrity
// PRINCIPLES:
// - SRP: Single responsibility - validation only
// - KISS: Simple validation, <10 lines
func (e *Edge) Validate() error {
	if e.Source == "" {
		return ErrInvalidSource
	}
	if e.Target == "" {
		return ErrInvalidTarget
	}
	if e.Source == e.Target {
		return ErrSelfLoop
	}
	if e.SourceHandle == "" || e.TargetHandle == "" {
		return ErrInvalidHandle
	}
	return nil
}
