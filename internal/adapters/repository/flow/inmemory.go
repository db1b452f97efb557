// Package flowrepo provides flow document storage backends.
package flowrepo

import (
	"context"
	"sync"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/metrics"
)

// InMemoryStore provides an in-memory implementation of flow.Store
// PRINCIPLES:
// - KISS: Simple map-based storage
// - SRP: Only responsible for flow persistence
// - Thread-safe
type InMemoryStore struct {
	mu    sync.RWMutex
	flows map[string]flow.Snapshot
}

// NewInMemoryStore creates an empty in-memory flow store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		flows: make(map[string]flow.Snapshot),
	}
}

func (s *InMemoryStore) Save(ctx context.Context, doc *flow.Document) error {
	if doc == nil || doc.ID == "" {
		return flow.ErrInvalidFlowID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[doc.ID] = doc.ToSnapshot()
	metrics.FlowSaved("memory")
	return nil
}

func (s *InMemoryStore) Load(ctx context.Context, id string) (*flow.Document, error) {
	if id == "" {
		return nil, flow.ErrInvalidFlowID
	}
	s.mu.RLock()
	snap, ok := s.flows[id]
	s.mu.RUnlock()
	if !ok {
		return nil, flow.ErrFlowNotFound
	}
	metrics.FlowLoaded("memory")
	return flow.FromSnapshot(snap)
}

func (s *InMemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.flows))
	for id := range s.flows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return flow.ErrInvalidFlowID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[id]; !ok {
		return flow.ErrFlowNotFound
	}
	delete(s.flows, id)
	return nil
}
