package graphrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coregraph "github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/prebuilt/chatbot"
)

func TestInMemoryGraphRepository_Get_NotFound(t *testing.T) {
	repo := NewInMemoryGraphRepository()

	g, err := repo.Get(context.Background(), "does-not-exist")
	assert.Nil(t, g)
	assert.ErrorIs(t, err, coregraph.ErrGraphNotFound)
}

func TestInMemoryGraphRepository_SaveAndGet(t *testing.T) {
	repo := NewInMemoryGraphRepository()

	g, err := chatbot.Build(chatbot.MemoryChatbotConfig{ID: "chatbot-1"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), g))

	got, err := repo.Get(context.Background(), "chatbot-1")
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestInMemoryGraphRepository_RejectsInvalid(t *testing.T) {
	repo := NewInMemoryGraphRepository()

	g := &coregraph.Graph{
		ID:         "broken",
		Name:       "Broken Flow",
		EntryPoint: "ghost",
		Nodes:      map[string]*coregraph.Node{},
	}
	err := repo.Save(context.Background(), g)
	assert.ErrorIs(t, err, coregraph.ErrInvalidEntryPoint)
}

func TestInMemoryGraphRepository_List(t *testing.T) {
	repo := NewInMemoryGraphRepository()

	a, err := chatbot.Build(chatbot.MemoryChatbotConfig{ID: "a"})
	require.NoError(t, err)
	b, err := chatbot.Build(chatbot.MemoryChatbotConfig{ID: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), a))
	require.NoError(t, repo.Save(context.Background(), b))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
