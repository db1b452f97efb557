// Package memory provides an in-memory canonical namespace loader.
// PRINCIPLES:
// - KISS: Map-backed namespace tree
// - SRP: Only resolves canonical names; no redirect logic
// - Thread-safe
package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

// FileLoader loads a standalone unit from a file path. Attached to a
// Loader so the combined object satisfies the full host-resolution
// contract; absent a file loader, LoadFile fails.
type FileLoader interface {
	LoadFile(dotted, path string) (*namespace.Namespace, error)
}

// Loader resolves canonical dotted names against a registered in-memory
// namespace tree. Probe and load call counts are exposed so tests can
// verify lazy-import behavior.
type Loader struct {
	mu         sync.RWMutex
	namespaces map[string]*namespace.Namespace
	files      FileLoader

	probeCalls atomic.Int64
	loadCalls  atomic.Int64
	fileCalls  atomic.Int64
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{namespaces: make(map[string]*namespace.Namespace)}
}

// WithFileLoader attaches a file loader and returns the receiver.
func (l *Loader) WithFileLoader(fl FileLoader) *Loader {
	l.files = fl
	return l
}

// Register adds a canonical namespace to the tree, replacing any
// namespace previously registered under the same name.
func (l *Loader) Register(ns *namespace.Namespace) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.namespaces[ns.Name()] = ns
}

// Exists probes for a canonical namespace without loading it.
func (l *Loader) Exists(dotted string) bool {
	l.probeCalls.Add(1)
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.namespaces[dotted]
	return ok
}

// Load imports a canonical namespace by dotted name.
func (l *Loader) Load(dotted string) (*namespace.Namespace, error) {
	l.loadCalls.Add(1)
	l.mu.RLock()
	defer l.mu.RUnlock()
	ns, ok := l.namespaces[dotted]
	if !ok {
		return nil, fmt.Errorf("no namespace %q", dotted)
	}
	return ns, nil
}

// LoadFile delegates to the attached file loader.
func (l *Loader) LoadFile(dotted, path string) (*namespace.Namespace, error) {
	l.fileCalls.Add(1)
	if l.files == nil {
		return nil, fmt.Errorf("no file loader attached, cannot load %q from %s", dotted, path)
	}
	return l.files.LoadFile(dotted, path)
}

// ProbeCalls returns how many times Exists was invoked.
func (l *Loader) ProbeCalls() int64 { return l.probeCalls.Load() }

// LoadCalls returns how many times Load was invoked.
func (l *Loader) LoadCalls() int64 { return l.loadCalls.Load() }

// FileCalls returns how many times LoadFile was invoked.
func (l *Loader) FileCalls() int64 { return l.fileCalls.Load() }
