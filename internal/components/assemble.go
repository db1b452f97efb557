package components

import (
	"time"

	"github.com/google/uuid"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
)

// Assemble turns wired components into a flow graph. Literal inputs land
// in the node template; Handle inputs become edges. Entry and exit must
// be among the listed components.
func Assemble(id, name string, entry, exit *Component, comps ...*Component) (*graph.Graph, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	g := &graph.Graph{
		ID:        id,
		Name:      name,
		Nodes:     make(map[string]*graph.Node),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if entry != nil {
		g.EntryPoint = entry.ID
	}
	if exit != nil {
		g.ExitPoint = exit.ID
	}

	for _, c := range comps {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		node := &graph.Node{
			ID:          c.ID,
			Type:        c.Type,
			DisplayName: c.DisplayName,
			Template:    make(map[string]any),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for key, value := range c.Inputs() {
			if _, isHandle := value.(Handle); isHandle {
				continue
			}
			node.Template[key] = value
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	// Edges second so both endpoints exist regardless of listing order.
	for _, c := range comps {
		for key, value := range c.Inputs() {
			h, isHandle := value.(Handle)
			if !isHandle {
				continue
			}
			edge := &graph.Edge{
				ID:           uuid.NewString(),
				Source:       h.Source.ID,
				SourceHandle: h.Output,
				Target:       c.ID,
				TargetHandle: key,
			}
			if err := g.AddEdge(edge); err != nil {
				return nil, err
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
