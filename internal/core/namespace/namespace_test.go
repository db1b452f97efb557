package namespace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_Attrs(t *testing.T) {
	ns := NewWithAttrs("lfx.base", map[string]any{
		"VALUE": 42,
		"NAME":  "base",
	})

	t.Run("existing attribute", func(t *testing.T) {
		v, ok := ns.Attr("VALUE")
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, ok := ns.Attr("MISSING")
		assert.False(t, ok)
	})

	t.Run("listing is sorted", func(t *testing.T) {
		assert.Equal(t, []string{"NAME", "VALUE"}, ns.Attrs())
	})

	t.Run("set replaces", func(t *testing.T) {
		ns.SetAttr("VALUE", 43)
		v, _ := ns.Attr("VALUE")
		assert.Equal(t, 43, v)
	})
}

func TestNamespace_ConcurrentAccess(t *testing.T) {
	ns := New("lfx.schema")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ns.SetAttr("shared", j)
				ns.Attr("shared")
				ns.Attrs()
			}
		}()
	}
	wg.Wait()

	_, ok := ns.Attr("shared")
	assert.True(t, ok)
	assert.Equal(t, 1, ns.Len())
}

func TestResolutionError(t *testing.T) {
	err := &ResolutionError{Shadow: "aiexec.base", Canonical: "lfx.base", Cause: assert.AnError}
	assert.ErrorIs(t, err, ErrResolution)
	assert.Contains(t, err.Error(), "lfx.base")
	assert.Contains(t, err.Error(), "aiexec.base")
}

func TestAttributeError(t *testing.T) {
	err := &AttributeError{Namespace: "aiexec.base", Attribute: "Missing"}
	assert.ErrorIs(t, err, ErrAttributeMissing)
	assert.NotErrorIs(t, err, ErrResolution)
	assert.Contains(t, err.Error(), "Missing")
}
