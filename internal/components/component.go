// Package components provides the prebuilt component descriptors the
// canonical namespace tree exposes and the example flows wire together.
// PRINCIPLES:
// - KISS: Components are descriptors, not executors; running them is the
//   engine's job and out of scope here
// - SRP: Each component describes its inputs and output handles only
package components

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Component is the shared descriptor every concrete component embeds.
type Component struct {
	ID          string `validate:"required,uuid4"`
	Type        string `validate:"required"`
	DisplayName string `validate:"required"`

	inputs map[string]any
}

func newComponent(typ, displayName string) Component {
	return Component{
		ID:          uuid.NewString(),
		Type:        typ,
		DisplayName: displayName,
		inputs:      make(map[string]any),
	}
}

// Set assigns input values. A Handle value wires another component's
// output into this input; anything else is a literal.
func (c *Component) Set(key string, value any) {
	c.inputs[key] = value
}

// Input returns the configured input value for key.
func (c *Component) Input(key string) (any, bool) {
	v, ok := c.inputs[key]
	return v, ok
}

// Inputs returns a copy of the configured inputs.
func (c *Component) Inputs() map[string]any {
	out := make(map[string]any, len(c.inputs))
	for k, v := range c.inputs {
		out[k] = v
	}
	return out
}

// Validate checks the descriptor's structural invariants.
func (c *Component) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid component %s: %w", c.Type, err)
	}
	return nil
}

// Handle references a named output of a source component, used to wire
// component outputs into downstream inputs.
type Handle struct {
	Source *Component
	Output string
}

// Output creates a handle for one of the component's named outputs.
func (c *Component) Output(name string) Handle {
	return Handle{Source: c, Output: name}
}
