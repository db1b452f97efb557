package flow

import (
	"context"
	"errors"
)

// ErrInvalidFlowID rejects empty or nil documents at the storage boundary.
var ErrInvalidFlowID = errors.New("invalid flow ID")

// Store persists serialized flow documents.
// PRINCIPLES:
// - ISP: Simple interface with ≤5 methods
// - DIP: Consumers depend on this, not on a backend
type Store interface {
	Save(ctx context.Context, doc *Document) error
	Load(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is the stored form of a Document.
type Snapshot struct {
	ID   string `msgpack:"id" json:"id"`
	Name string `msgpack:"name" json:"name"`
	Raw  []byte `msgpack:"raw" json:"raw"`
}

// ToSnapshot converts a document for storage.
func (d *Document) ToSnapshot() Snapshot {
	return Snapshot{ID: d.ID, Name: d.Name, Raw: d.raw}
}

// FromSnapshot restores a document from its stored form.
func FromSnapshot(s Snapshot) (*Document, error) {
	doc, err := New(s.Raw)
	if err != nil {
		return nil, err
	}
	doc.ID = s.ID
	doc.Name = s.Name
	return doc, nil
}
