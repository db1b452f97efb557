// Package validation provides model definitions with validation tags
package validation

// FlowNodeConfig represents one component node of a parsed flow document
// PRINCIPLES:
// - Single Responsibility: Node configuration only
// - Validation: Comprehensive validation tags
type FlowNodeConfig struct {
	ID       string                 `json:"id" validate:"required"`
	Type     string                 `json:"type" validate:"required"`
	Template map[string]interface{} `json:"template,omitempty"`
}

// FlowEdgeConfig represents one wire of a parsed flow document
type FlowEdgeConfig struct {
	Source       string `json:"source" validate:"required"`
	SourceHandle string `json:"source_handle" validate:"required"`
	Target       string `json:"target" validate:"required"`
	TargetHandle string `json:"target_handle" validate:"required"`
}

// FlowConfig represents a complete flow document
type FlowConfig struct {
	ID    string           `json:"id" validate:"required"`
	Name  string           `json:"name" validate:"required,min=1,max=200"`
	Nodes []FlowNodeConfig `json:"nodes" validate:"required,min=1,dive"`
	Edges []FlowEdgeConfig `json:"edges" validate:"dive"`
}

// Validate implements custom validation for FlowConfig
func (fc *FlowConfig) Validate() error {
	var errs ValidationErrors

	// Validate node ID uniqueness
	nodeIDs := make(map[string]bool)
	for _, node := range fc.Nodes {
		if nodeIDs[node.ID] {
			errs = append(errs, ValidationError{
				Field:   "nodes",
				Value:   node.ID,
				Message: "duplicate node ID",
			})
		}
		nodeIDs[node.ID] = true
	}

	// Edges must reference declared nodes
	for _, edge := range fc.Edges {
		if !nodeIDs[edge.Source] {
			errs = append(errs, ValidationError{
				Field:   "edges",
				Value:   edge.Source,
				Message: "edge source references unknown node",
			})
		}
		if !nodeIDs[edge.Target] {
			errs = append(errs, ValidationError{
				Field:   "edges",
				Value:   edge.Target,
				Message: "edge target references unknown node",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RedirectEntryConfig represents one shadow to canonical mapping
type RedirectEntryConfig struct {
	Shadow    string `json:"shadow" validate:"required,dotted_name"`
	Canonical string `json:"canonical" validate:"required,dotted_name"`
}
