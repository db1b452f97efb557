package prebuilt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
)

func stubBuilder(name string) Builder {
	return NewBuildFunc(name, func(ctx context.Context, cfg any) (*graph.Graph, error) {
		return &graph.Graph{ID: "stub", Name: name}, nil
	})
}

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubBuilder("echo"))

		b, ok := r.Get("echo")
		require.True(t, ok)
		assert.Equal(t, "echo", b.Name())

		_, ok = r.Get("missing")
		assert.False(t, ok)
	})

	t.Run("register replaces", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubBuilder("echo"))
		r.Register(stubBuilder("echo"))
		_, ok := r.Get("echo")
		assert.True(t, ok)
	})

	t.Run("must register panics on duplicate", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(stubBuilder("echo"))
		assert.Panics(t, func() {
			r.MustRegister(stubBuilder("echo"))
		})
	})
}

func TestBuildFunc(t *testing.T) {
	b := stubBuilder("echo")
	g, err := b.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "echo", g.Name)
}
