package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/metrics"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/serialization"
)

// FlowStore implements flow.Store for PostgreSQL
type FlowStore struct {
	pool       *pgxpool.Pool
	serializer *serialization.Serializer
	tableName  string
}

// NewFlowStore creates a new PostgreSQL flow store
func NewFlowStore(pool *pgxpool.Pool, serializer *serialization.Serializer) *FlowStore {
	return &FlowStore{
		pool:       pool,
		serializer: serializer,
		tableName:  "flows",
	}
}

// InitSchema creates the flows table if it does not exist
func (s *FlowStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			snapshot BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create flows table: %w", err)
	}
	return nil
}

// Save stores a flow document in PostgreSQL
func (s *FlowStore) Save(ctx context.Context, doc *flow.Document) error {
	if doc == nil || doc.ID == "" {
		return flow.ErrInvalidFlowID
	}

	data, err := s.serializer.Serialize(doc.ToSnapshot())
	if err != nil {
		return fmt.Errorf("failed to serialize flow snapshot: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, snapshot, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			snapshot = EXCLUDED.snapshot,
			updated_at = EXCLUDED.updated_at
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query, doc.ID, doc.Name, data); err != nil {
		return fmt.Errorf("failed to save flow: %w", err)
	}

	metrics.FlowSaved("postgres")
	return nil
}

// Load retrieves a flow document by ID
func (s *FlowStore) Load(ctx context.Context, id string) (*flow.Document, error) {
	if id == "" {
		return nil, flow.ErrInvalidFlowID
	}

	query := fmt.Sprintf(`
		SELECT snapshot
		FROM %s
		WHERE id = $1
	`, s.tableName)

	var data []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, flow.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to load flow: %w", err)
	}

	var snap flow.Snapshot
	if err := s.serializer.Deserialize(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to deserialize flow snapshot: %w", err)
	}

	metrics.FlowLoaded("postgres")
	return flow.FromSnapshot(snap)
}

// List retrieves all stored flow IDs
func (s *FlowStore) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT id FROM %s ORDER BY updated_at DESC", s.tableName)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan flow row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a flow by ID
func (s *FlowStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return flow.ErrInvalidFlowID
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.tableName)
	result, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete flow: %w", err)
	}

	if result.RowsAffected() == 0 {
		return flow.ErrFlowNotFound
	}
	return nil
}
