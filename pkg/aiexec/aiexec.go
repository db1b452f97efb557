package aiexec

import (
	"github.com/gitworkflows/DEV-AiEXEC/internal/app/compat"
	coreflow "github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	coregraph "github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/redirect"
)

// Re-export core types for convenience
type Graph = coregraph.Graph
type Node = coregraph.Node
type Edge = coregraph.Edge
type FlowDocument = coreflow.Document
type Proxy = redirect.Proxy

// Re-export the error conditions callers match on.
var (
	ErrResolution       = namespace.ErrResolution
	ErrAttributeMissing = namespace.ErrAttributeMissing
	ErrNotRegistered    = namespace.ErrNotRegistered
)

// Option configures the compatibility runtime.
type Option = compat.Option

// WithLogger and WithOverridesDir re-export runtime options.
var (
	WithLogger       = compat.WithLogger
	WithOverridesDir = compat.WithOverridesDir
)

// Runtime is a simple facade over the compatibility layer so consumers
// never import internal packages directly. The process-wide runtime is
// built once by Setup; NewRuntime returns an isolated instance for tests.
type Runtime struct {
	rt *compat.Runtime
}

// Setup initializes the process-wide compatibility layer exactly once.
func Setup(opts ...Option) *Runtime {
	return &Runtime{rt: compat.Setup(opts...)}
}

// NewRuntime builds an isolated compatibility runtime.
func NewRuntime(opts ...Option) *Runtime {
	return &Runtime{rt: compat.NewRuntime(opts...)}
}

// Attr resolves an attribute through a registered shadow namespace.
func (r *Runtime) Attr(dotted, attr string) (any, error) {
	return r.rt.Registry.Attr(dotted, attr)
}

// Lookup returns the proxy installed under a dotted name, if any.
func (r *Runtime) Lookup(dotted string) (Proxy, bool) {
	return r.rt.Registry.Lookup(dotted)
}

// Introspect lists the apparent contents of a registered shadow
// namespace. Unregistered or unresolvable names report an empty listing.
func (r *Runtime) Introspect(dotted string) []string {
	p, ok := r.rt.Registry.Lookup(dotted)
	if !ok {
		return nil
	}
	return p.Introspect()
}

// Names lists every registered shadow namespace.
func (r *Runtime) Names() []string {
	return r.rt.Registry.Names()
}
