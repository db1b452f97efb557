package redirect

import (
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

// PhysicalNode serves a shadow-only namespace from its own loaded unit.
// Nothing is forwarded: the wrapped namespace IS the implementation, kept
// under a legacy name because it has no canonical counterpart yet.
type PhysicalNode struct {
	shadow string
	unit   *namespace.Namespace
	path   string
}

// NewPhysicalNode wraps a namespace loaded from path under shadow.
func NewPhysicalNode(shadow, path string, unit *namespace.Namespace) *PhysicalNode {
	return &PhysicalNode{shadow: shadow, unit: unit, path: path}
}

// Name returns the shadow dotted name.
func (n *PhysicalNode) Name() string { return n.shadow }

// Path returns the file the unit was loaded from.
func (n *PhysicalNode) Path() string { return n.path }

// Resolve looks the attribute up on the loaded unit directly.
func (n *PhysicalNode) Resolve(attr string) (any, error) {
	v, ok := n.unit.Attr(attr)
	if !ok {
		return nil, &namespace.AttributeError{Namespace: n.shadow, Attribute: attr}
	}
	return v, nil
}

// Introspect lists the loaded unit's attributes. Never fails.
func (n *PhysicalNode) Introspect() []string {
	return n.unit.Attrs()
}

// SetAttr binds value on the loaded unit, used for child linking.
func (n *PhysicalNode) SetAttr(attr string, value any) {
	n.unit.SetAttr(attr, value)
}
