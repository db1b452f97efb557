package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/flow"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/serialization"
)

func newTestStore(t *testing.T) *FlowStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewFlowStore(db, serialization.DefaultSerializer())
	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func testDocument(t *testing.T, id, name string) *flow.Document {
	t.Helper()
	doc, err := flow.New([]byte(`{"id":"` + id + `","name":"` + name + `","data":{"nodes":[],"edges":[]}}`))
	require.NoError(t, err)
	return doc
}

func TestFlowStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	doc := testDocument(t, "flow-1", "Memory Chatbot")

	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx, "flow-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, doc.Name, loaded.Name)
	assert.Equal(t, doc.Raw(), loaded.Raw())
}

func TestFlowStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, testDocument(t, "flow-1", "First")))
	require.NoError(t, store.Save(ctx, testDocument(t, "flow-1", "Second")))

	loaded, err := store.Load(ctx, "flow-1")
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Name)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestFlowStoreList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, testDocument(t, "flow-a", "A")))
	require.NoError(t, store.Save(ctx, testDocument(t, "flow-b", "B")))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"flow-a", "flow-b"}, ids)
}

func TestFlowStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, testDocument(t, "flow-1", "Doomed")))
	require.NoError(t, store.Delete(ctx, "flow-1"))

	_, err := store.Load(ctx, "flow-1")
	assert.ErrorIs(t, err, flow.ErrFlowNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "flow-1"), flow.ErrFlowNotFound)
}

func TestFlowStoreInvalidInput(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.ErrorIs(t, store.Save(ctx, nil), flow.ErrInvalidFlowID)
	_, err := store.Load(ctx, "")
	assert.ErrorIs(t, err, flow.ErrInvalidFlowID)
	assert.ErrorIs(t, store.Delete(ctx, ""), flow.ErrInvalidFlowID)
}

func TestWithTableName(t *testing.T) {
	store := newTestStore(t)

	t.Run("safe identifier accepted", func(t *testing.T) {
		store.WithTableName("flow_snapshots")
		assert.Equal(t, "flow_snapshots", store.tableName)
	})

	t.Run("unsafe identifier rejected", func(t *testing.T) {
		store.WithTableName("flows; DROP TABLE flows")
		assert.Equal(t, "flow_snapshots", store.tableName)
	})
}

// Interface guard
var _ flow.Store = (*FlowStore)(nil)
