// Package namespace provides the core namespace domain entities
// following Clean Architecture principles with zero external dependencies.
package namespace

import (
	"sort"
	"sync"
)

// Namespace is a named bag of attributes, the in-process equivalent of a
// loaded module object.
// PRINCIPLES:
// - KISS: Simple map-backed attribute table
// - SRP: Only responsible for attribute storage, not resolution
// - Thread-safe: concurrent readers after setup are the common case
type Namespace struct {
	name  string
	mu    sync.RWMutex
	attrs map[string]any
}

// New creates an empty namespace with the given dotted name.
func New(name string) *Namespace {
	return &Namespace{
		name:  name,
		attrs: make(map[string]any),
	}
}

// NewWithAttrs creates a namespace pre-populated with attributes.
func NewWithAttrs(name string, attrs map[string]any) *Namespace {
	ns := New(name)
	for k, v := range attrs {
		ns.attrs[k] = v
	}
	return ns
}

// Name returns the dotted name the namespace was created under.
func (ns *Namespace) Name() string {
	return ns.name
}

// Attr returns the attribute bound to name, reporting whether it exists.
func (ns *Namespace) Attr(name string) (any, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	v, ok := ns.attrs[name]
	return v, ok
}

// SetAttr binds value under name, replacing any previous binding.
func (ns *Namespace) SetAttr(name string, value any) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.attrs[name] = value
}

// Attrs returns a sorted snapshot of the attribute names.
func (ns *Namespace) Attrs() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	names := make([]string, 0, len(ns.attrs))
	for k := range ns.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of attributes.
func (ns *Namespace) Len() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return len(ns.attrs)
}
