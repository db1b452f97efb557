package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

func TestLoader(t *testing.T) {
	loader := NewLoader()
	loader.Register(namespace.NewWithAttrs("lfx.base", map[string]any{"X": 1}))

	t.Run("exists probes without loading", func(t *testing.T) {
		assert.True(t, loader.Exists("lfx.base"))
		assert.False(t, loader.Exists("lfx.missing"))
		assert.Equal(t, int64(2), loader.ProbeCalls())
		assert.Zero(t, loader.LoadCalls())
	})

	t.Run("load returns registered namespace", func(t *testing.T) {
		ns, err := loader.Load("lfx.base")
		require.NoError(t, err)
		assert.Equal(t, "lfx.base", ns.Name())
		assert.Equal(t, int64(1), loader.LoadCalls())
	})

	t.Run("load of unknown name fails", func(t *testing.T) {
		_, err := loader.Load("lfx.missing")
		assert.Error(t, err)
	})

	t.Run("load file without file loader fails", func(t *testing.T) {
		_, err := loader.LoadFile("a.b", "/tmp/nope.go")
		assert.Error(t, err)
		assert.Equal(t, int64(1), loader.FileCalls())
	})

	t.Run("register replaces", func(t *testing.T) {
		replacement := namespace.NewWithAttrs("lfx.base", map[string]any{"X": 2})
		loader.Register(replacement)
		ns, err := loader.Load("lfx.base")
		require.NoError(t, err)
		assert.Same(t, replacement, ns)
	})
}
