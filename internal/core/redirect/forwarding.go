package redirect

import (
	"sort"
	"sync"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/metrics"
)

// ForwardingNode redirects attribute access on a shadow name to its
// canonical namespace, loading the target lazily on first access and
// caching every successfully resolved attribute for the process lifetime.
// PRINCIPLES:
// - KISS: Double-checked RWMutex, no cleverer synchronization
// - Cache is monotonic: entries are added, never invalidated
type ForwardingNode struct {
	shadow    string
	canonical string
	loader    Loader

	mu     sync.RWMutex
	target *namespace.Namespace // nil until first successful resolve
	cache  map[string]any
	local  map[string]any // direct bindings (child links), checked before forwarding
}

// NewForwardingNode creates an unresolved redirect node for shadow that
// will forward to canonical through loader.
func NewForwardingNode(shadow, canonical string, loader Loader) *ForwardingNode {
	return &ForwardingNode{
		shadow:    shadow,
		canonical: canonical,
		loader:    loader,
		cache:     make(map[string]any),
		local:     make(map[string]any),
	}
}

// Name returns the shadow dotted name.
func (n *ForwardingNode) Name() string { return n.shadow }

// Canonical returns the dotted name the node forwards to.
func (n *ForwardingNode) Canonical() string { return n.canonical }

// Resolve returns the attribute, checking (in order) direct bindings, the
// attribute cache, and finally the lazily loaded canonical namespace.
// A canonical namespace mutated after an attribute's first access is not
// observed through this node for that attribute: stale reads are the
// documented trade-off for never paying the forwarding cost twice.
func (n *ForwardingNode) Resolve(attr string) (any, error) {
	n.mu.RLock()
	if v, ok := n.local[attr]; ok {
		n.mu.RUnlock()
		return v, nil
	}
	if v, ok := n.cache[attr]; ok {
		n.mu.RUnlock()
		metrics.IncCacheHits()
		return v, nil
	}
	n.mu.RUnlock()

	target, err := n.resolveTarget()
	if err != nil {
		return nil, err
	}
	v, ok := target.Attr(attr)
	if !ok {
		return nil, &namespace.AttributeError{Namespace: n.shadow, Attribute: attr}
	}

	n.mu.Lock()
	// A racing reader may have cached a value meanwhile; first write wins
	// so repeated reads stay identical.
	if prev, ok := n.cache[attr]; ok {
		v = prev
	} else {
		n.cache[attr] = v
	}
	n.mu.Unlock()
	metrics.IncForwarded()
	return v, nil
}

// resolveTarget loads the canonical namespace once, caching it for the
// node's lifetime. Concurrent first calls may both load; the loser's
// result is discarded.
func (n *ForwardingNode) resolveTarget() (*namespace.Namespace, error) {
	n.mu.RLock()
	t := n.target
	n.mu.RUnlock()
	if t != nil {
		return t, nil
	}

	loaded, err := n.loader.Load(n.canonical)
	if err != nil {
		return nil, &namespace.ResolutionError{Shadow: n.shadow, Canonical: n.canonical, Cause: err}
	}

	n.mu.Lock()
	if n.target == nil {
		n.target = loaded
	}
	t = n.target
	n.mu.Unlock()
	metrics.IncCanonicalLoads()
	return t, nil
}

// Introspect lists the canonical namespace's attributes plus any direct
// bindings. It never fails: if the canonical target cannot be loaded the
// listing is just the direct bindings (possibly empty).
func (n *ForwardingNode) Introspect() []string {
	names := make([]string, 0)
	n.mu.RLock()
	for k := range n.local {
		names = append(names, k)
	}
	n.mu.RUnlock()

	target, err := n.resolveTarget()
	if err != nil {
		return names
	}
	return mergeSorted(names, target.Attrs())
}

// SetAttr binds value directly on the node. Direct bindings shadow the
// canonical namespace and are how the registry links children to parents.
func (n *ForwardingNode) SetAttr(attr string, value any) {
	n.mu.Lock()
	n.local[attr] = value
	n.mu.Unlock()
}

// Resolved reports whether the canonical target has been loaded yet.
func (n *ForwardingNode) Resolved() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.target != nil
}

// mergeSorted combines two name lists into one sorted, de-duplicated slice.
func mergeSorted(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
