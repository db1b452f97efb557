package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/internal/infrastructure/metrics"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/serialization"
)

// FlowStore implements flow.Store for SQLite. The pure-Go driver makes it
// the zero-setup persistent backend; postgres covers shared deployments.
type FlowStore struct {
	db         *sql.DB
	serializer *serialization.Serializer
	tableName  string
}

// NewFlowStore creates a new SQLite flow store
func NewFlowStore(db *sql.DB, serializer *serialization.Serializer) *FlowStore {
	return &FlowStore{
		db:         db,
		serializer: serializer,
		tableName:  "flows",
	}
}

// WithTableName allows overriding the default table name with validation.
// Only alphanumeric and underscore are permitted to prevent SQL injection via identifiers.
func (s *FlowStore) WithTableName(name string) *FlowStore {
	if isSafeIdent(name) {
		s.tableName = name
	}
	return s
}

func isSafeIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

// InitSchema creates the flows table if it does not exist
func (s *FlowStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			snapshot BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create flows table: %w", err)
	}
	return nil
}

// Save stores a flow document in SQLite
func (s *FlowStore) Save(ctx context.Context, doc *flow.Document) error {
	if doc == nil || doc.ID == "" {
		return flow.ErrInvalidFlowID
	}

	data, err := s.serializer.Serialize(doc.ToSnapshot())
	if err != nil {
		return fmt.Errorf("failed to serialize flow snapshot: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (id, name, snapshot, updated_at)
		VALUES (?, ?, ?, unixepoch())
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query, doc.ID, doc.Name, data); err != nil {
		return fmt.Errorf("failed to save flow: %w", err)
	}

	metrics.FlowSaved("sqlite")
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
		WHERE id = ?
	`, s.tableName)

	var data []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, flow.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to load flow: %w", err)
	}

	var snap flow.Snapshot
	if err := s.serializer.Deserialize(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to deserialize flow snapshot: %w", err)
	}

	metrics.FlowLoaded("sqlite")
	return flow.FromSnapshot(snap)
}

// List retrieves all stored flow IDs
func (s *FlowStore) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT id FROM %s ORDER BY updated_at DESC, id", s.tableName)

	rows, err := s.db.QueryContext(ctx, query)
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

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.tableName)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete flow: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return flow.ErrFlowNotFound
	}
	return nil
}
