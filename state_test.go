package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateChain(t *testing.T) {
	t.Parallel()

	t.Run("streams are inherited", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		root := NewState(nil)
		root.Stdout, root.Stderr = &stdout, &stderr
		child := NewState(root)
		assert.Same(t, root, child.Parent())
		assert.Same(t, root, child.Root())
		assert.Equal(t, &stdout, child.Stdout)
		assert.Equal(t, &stderr, child.Stderr)
		assert.Nil(t, child.Command())
		assert.Nil(t, child.Invocation())
	})
	t.Run("path and depth", func(t *testing.T) {
		t.Parallel()
		root := newCommandState(nil, &Command{Name: "101-linux"})
		group := newCommandState(root, &Command{Name: "hello"})
		leaf := newCommandState(group, &Command{Name: "greet"})
		assert.Equal(t, "101-linux hello greet", leaf.Path())
		assert.Equal(t, "101-linux", root.Path())
		assert.Equal(t, 3, leaf.Depth())
		assert.Equal(t, 1, root.Depth())
	})
	t.Run("store lookups", func(t *testing.T) {
		t.Parallel()
		root := NewState(nil)
		child := NewState(root)
		root.Set("lang", "en")
		child.Set("page", 2)

		_, ok := child.Value("lang")
		assert.False(t, ok)
		v, ok := child.Lookup("lang")
		require.True(t, ok)
		assert.Equal(t, "en", v)
		_, ok = root.Lookup("page")
		assert.False(t, ok)

		child.Set("lang", "de")
		v, _ = child.Lookup("lang")
		assert.Equal(t, "de", v)
		v, _ = root.Value("lang")
		assert.Equal(t, "en", v)
	})
}

func TestVerbosity(t *testing.T) {
	t.Parallel()

	t.Run("default is off", func(t *testing.T) {
		t.Parallel()
		assert.False(t, VerboseActive(NewState(nil)))
	})
	t.Run("set on root is seen below", func(t *testing.T) {
		t.Parallel()
		root := NewState(nil)
		SetVerbose(root, true)
		group := NewState(root)
		leaf := NewState(group)
		assert.True(t, VerboseActive(leaf))
	})
	t.Run("set on leaf propagates to existing ancestors", func(t *testing.T) {
		t.Parallel()
		root := NewState(nil)
		group := NewState(root)
		leaf := NewState(group)
		SetVerbose(leaf, true)
		assert.True(t, VerboseActive(root))
		assert.True(t, VerboseActive(group))
		assert.True(t, VerboseActive(leaf))
	})
	t.Run("nearest value wins", func(t *testing.T) {
		t.Parallel()
		root := NewState(nil)
		SetVerbose(root, true)
		leaf := NewState(root)
		leaf.Set(verboseKey, false)
		assert.False(t, VerboseActive(leaf))
		assert.True(t, VerboseActive(root))
	})
	t.Run("chains are independent", func(t *testing.T) {
		t.Parallel()
		a := NewState(nil)
		b := NewState(nil)
		SetVerbose(NewState(a), true)
		assert.True(t, VerboseActive(a))
		assert.False(t, VerboseActive(b))
	})
}

func TestGetParam(t *testing.T) {
	t.Parallel()

	root := newCommandState(nil, &Command{Name: "root"})
	root.inv = ParseInvocation(greetParams, []string{"--name", "Alice", "-v"})
	leaf := newCommandState(root, &Command{Name: "greet"})
	leaf.inv = ParseInvocation(greetParams, nil)

	assert.Equal(t, "Alice", GetParam[string](leaf, "name"))
	assert.True(t, GetParam[bool](leaf, "verbose"))
	assert.Equal(t, "true", GetParam[string](leaf, "verbose"))
	assert.Empty(t, GetParam[string](leaf, "missing"))
	assert.False(t, GetParam[bool](leaf, "missing"))

	leaf.inv = ParseInvocation(greetParams, []string{"-n", "Bob"})
	assert.Equal(t, "Bob", GetParam[string](leaf, "name"))

	only := newCommandState(nil, &Command{Name: "root"})
	only.inv = ParseInvocation(greetParams, nil)
	assert.Equal(t, "World", GetParam[string](only, "name"))
}
