package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/serialization"
)

func TestPostgresFlowStore(t *testing.T) {
	t.Skip("Integration test requires PostgreSQL database")

	// This test would require actual PostgreSQL instance
	// For CI/CD, this should be run with docker-compose or testcontainers
}

func TestPostgresFlowStore_Errors(t *testing.T) {
	ctx := context.Background()
	serializer := serialization.DefaultSerializer()

	// Create store with invalid pool (will fail on operations)
	store := &FlowStore{
		pool:       nil,
		serializer: serializer,
		tableName:  "flows",
	}

	// Test Save with nil document
	err := store.Save(ctx, nil)
	assert.Equal(t, flow.ErrInvalidFlowID, err)

	// Test Load with empty ID
	_, err = store.Load(ctx, "")
	assert.Equal(t, flow.ErrInvalidFlowID, err)

	// Test Delete with empty ID
	err = store.Delete(ctx, "")
	assert.Equal(t, flow.ErrInvalidFlowID, err)
}
