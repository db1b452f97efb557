// Package redirect provides the namespace redirection core: proxy objects
// that stand in for legacy dotted names and forward attribute access to the
// canonical namespace tree.
// PRINCIPLES:
// - KISS: Two proxy variants behind one small interface
// - SRP: Proxies resolve attributes; installation lives in the registry
// - DIP: Loading is an injected collaborator, never implemented here
package redirect

import (
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

// Proxy is a namespace stand-in reachable under a shadow dotted name.
// Resolve is the single polymorphic operation: member lookup by name.
type Proxy interface {
	// Name returns the shadow dotted name the proxy is installed under.
	Name() string
	// Resolve returns the attribute bound to attr, forwarding or loading
	// as the variant requires. Errors are namespace.ResolutionError or
	// namespace.AttributeError.
	Resolve(attr string) (any, error)
	// Introspect lists the apparent attribute names. It never fails: an
	// unresolvable proxy reports an empty listing.
	Introspect() []string
	// SetAttr binds a value directly on the proxy, bypassing forwarding.
	// The registry uses it to link child proxies onto their parents.
	SetAttr(attr string, value any)
}

// Loader is the host namespace-resolution mechanism the redirect core
// depends on but does not implement.
// PRINCIPLES:
// - ISP: Three primitives, nothing more
type Loader interface {
	// Exists probes whether a canonical namespace exists without loading
	// it. Implementations must not trigger load side effects here.
	Exists(dotted string) bool
	// Load imports a canonical namespace by dotted name.
	Load(dotted string) (*namespace.Namespace, error)
	// LoadFile loads a standalone unit from a file path and binds it to
	// the given dotted name.
	LoadFile(dotted, path string) (*namespace.Namespace, error)
}
