// Package graph provides the component-flow graph entities
// following Clean Architecture principles with zero external dependencies.
package graph

import (
	"time"
)

// Graph represents a wired component flow
// PRINCIPLES:
// - KISS: Simple struct, no complex hierarchies
// - SRP: Only responsible for flow structure, not execution
type Graph struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Nodes      map[string]*Node `json:"nodes"`
	Edges      []*Edge          `json:"edges"`
	EntryPoint string           `json:"entry_point"`
	ExitPoint  string           `json:"exit_point"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Validate ensures flow integrity
// PRINCIPLES:
// - SRP: Single responsibility - validation only
// - KISS: Simple validation rules, easy to understand
func (g *Graph) Validate() error {
	if g.Name == "" {
		return ErrInvalidGraphName
	}
	if g.EntryPoint == "" {
		return ErrNoEntryPoint
	}
	if _, exists := g.Nodes[g.EntryPoint]; !exists {
		return ErrInvalidEntryPoint
	}
	if g.ExitPoint != "" {
		if _, exists := g.Nodes[g.ExitPoint]; !exists {
			return ErrInvalidExitPoint
		}
	}
	return nil
}

// AddNode adds a component node to the flow
func (g *Graph) AddNode(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if err := node.Validate(); err != nil {
		return err
	}
	if g.Nodes == nil {
		g.Nodes = make(map[string]*Node)
	}
	// Prevent duplicate node IDs
	if _, exists := g.Nodes[node.ID]; exists {
		return ErrDuplicateNode
	}
	g.Nodes[node.ID] = node
	g.UpdatedAt = time.Now()
	return nil
}

// AddEdge wires a source handle into a target input
func (g *Graph) AddEdge(edge *Edge) error {
	if edge == nil {
		return ErrNilEdge
	}
	if err := edge.Validate(); err != nil {
		return err
	}
	// Verify source and target nodes exist
	if _, exists := g.Nodes[edge.Source]; !exists {
		return ErrSourceNodeNotFound
	}
	if _, exists := g.Nodes[edge.Target]; !exists {
		return ErrTargetNodeNotFound
	}
	// Prevent duplicate wiring of the same handle pair
	for _, e := range g.Edges {
		if e.Source == edge.Source && e.SourceHandle == edge.SourceHandle &&
			e.Target == edge.Target && e.TargetHandle == edge.TargetHandle {
			return ErrDuplicateEdge
		}
	}
	g.Edges = append(g.Edges, edge)
	g.UpdatedAt = time.Now()
	return nil
}

// IncomingEdges returns the edges feeding a node's inputs.
func (g *Graph) IncomingEdges(nodeID string) []*Edge {
	var in []*Edge
	for _, e := range g.Edges {
		if e.Target == nodeID {
			in = append(in, e)
		}
	}
	return in
}
