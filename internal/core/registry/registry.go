// Package registry provides the process-wide namespace registry: the
// mapping from dotted names to installed proxies that the rest of the
// system consults when resolving legacy references.
// PRINCIPLES:
// - KISS: Map plus RWMutex, append-only after setup
// - SRP: Installation and parent linking only; resolution lives on proxies
// - Thread-safe
package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/redirect"
	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/metrics"
)

// Registry maps dotted names to installed namespace proxies.
type Registry struct {
	loader redirect.Loader
	log    *zap.Logger

	mu      sync.RWMutex
	entries map[string]redirect.Proxy
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates an empty registry resolving canonical names through loader.
func New(loader redirect.Loader, opts ...Option) *Registry {
	r := &Registry{
		loader:  loader,
		log:     zap.NewNop(),
		entries: make(map[string]redirect.Proxy),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterRedirect installs a forwarding node for shadow pointing at
// canonical. Registration is best effort: a shadow name already present
// is a no-op, and a canonical namespace the loader cannot probe is
// silently skipped — migration of the canonical tree may be partial and
// must not crash startup. Success is only observable through later
// attribute access.
func (r *Registry) RegisterRedirect(shadow, canonical string) {
	if !namespace.ValidName(shadow) || !namespace.ValidName(canonical) {
		r.log.Debug("skipping malformed redirect entry",
			zap.String("shadow", shadow), zap.String("canonical", canonical))
		metrics.IncSkipped()
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[shadow]; exists {
		return
	}
	// Existence probe only; importing happens on first attribute access
	// because some canonical namespaces have load-time side effects.
	if !r.loader.Exists(canonical) {
		r.log.Debug("canonical namespace not found, skipping redirect",
			zap.String("shadow", shadow), zap.String("canonical", canonical))
		metrics.IncSkipped()
		return
	}

	node := redirect.NewForwardingNode(shadow, canonical, r.loader)
	r.install(shadow, node)
}

// RegisterPhysical installs a shadow-only namespace loaded directly from
// path. Best effort: a missing or unloadable file is skipped silently
// because the physical file may not exist in every deployment variant.
// Re-registration of an installed shadow name never re-reads the file.
func (r *Registry) RegisterPhysical(shadow, path string) {
	if !namespace.ValidName(shadow) {
		metrics.IncSkipped()
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[shadow]; exists {
		return
	}

	unit, err := r.loader.LoadFile(shadow, path)
	if err != nil {
		r.log.Warn("physical override not loaded",
			zap.String("shadow", shadow), zap.String("path", path), zap.Error(err))
		metrics.IncSkipped()
		return
	}

	metrics.IncPhysicalLoads()
	r.install(shadow, redirect.NewPhysicalNode(shadow, path, unit))
}

// RegisterLocal installs an in-process namespace directly, no forwarding
// and no file. The legacy root package registers itself this way so its
// children have a parent to link onto.
func (r *Registry) RegisterLocal(ns *namespace.Namespace) {
	if ns == nil || !namespace.ValidName(ns.Name()) {
		metrics.IncSkipped()
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[ns.Name()]; exists {
		return
	}
	r.install(ns.Name(), redirect.NewPhysicalNode(ns.Name(), "", ns))
}

// install records the proxy and links it onto its parent, holding r.mu.
// A parent not yet registered means no link is made: the child stays
// reachable by absolute dotted lookup but not by attribute traversal from
// the parent. Entries are processed in declared order, so out-of-order
// tables lose links; accepted limitation, covered by tests.
func (r *Registry) install(shadow string, p redirect.Proxy) {
	r.entries[shadow] = p
	metrics.IncRegistrations()

	if parent := namespace.Parent(shadow); parent != "" {
		if parentProxy, ok := r.entries[parent]; ok {
			parentProxy.SetAttr(namespace.Leaf(shadow), p)
		}
	}
}

// Lookup returns the proxy installed under dotted, if any.
func (r *Registry) Lookup(dotted string) (redirect.Proxy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.entries[dotted]
	return p, ok
}

// Attr resolves attr on the proxy installed under dotted.
func (r *Registry) Attr(dotted, attr string) (any, error) {
	p, ok := r.Lookup(dotted)
	if !ok {
		return nil, namespace.ErrNotRegistered
	}
	return p.Resolve(attr)
}

// Names returns the registered dotted names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for k := range r.entries {
		names = append(names, k)
	}
	return names
}

// Len returns the number of installed proxies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
