// Package graph provides node definitions
package graph

import "time"

// Node represents a component instance in a flow
// PRINCIPLES:
// - KISS: Simple node representation
// - SRP: Only responsible for node data
type Node struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"` // Component type, e.g. "ChatInput"
	DisplayName string         `json:"display_name"`
	Template    map[string]any `json:"template,omitempty"` // Literal input values
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Validate ensures node integrity
// PRINCIPLES:
// - SRP: Single responsibility - validation only
// - KISS: Simple validation, <10 lines
func (n *Node) Validate() error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if n.Type == "" {
		return ErrInvalidNodeType
	}
	if n.DisplayName == "" {
		return ErrInvalidNodeName
	}
	return nil
}
