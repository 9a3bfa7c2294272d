package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("items")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Put(Entry{Key: "items", Value: []byte(`[]`)}, Entry{Key: "waste", Value: []byte(`[1]`)}))

	v, ok, err := m.Get("waste")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(v))

	require.NoError(t, m.Delete("waste"))
	require.NoError(t, m.Delete("waste"), "deleting an absent key is fine")
	_, ok, _ = m.Get("waste")
	assert.False(t, ok)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Put(Entry{Key: "k", Value: buf}))
	buf[0] = 'z'

	v, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))

	v[1] = 'z'
	again, _, _ := m.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryPutValidatesAllKeysFirst(t *testing.T) {
	m := NewMemory()
	err := m.Put(Entry{Key: "ok", Value: []byte("1")}, Entry{Key: "../escape", Value: []byte("2")})
	assert.ErrorIs(t, err, types.ErrInvalidKey)

	_, ok, _ := m.Get("ok")
	assert.False(t, ok, "no entry written when one key is invalid")
}

func TestMemoryLifecycle(t *testing.T) {
	m := NewMemory()
	assert.ErrorIs(t, m.Attach(types.Config{Backend: types.BackendMemory}), types.ErrAlreadyAttached)

	require.NoError(t, m.Put(Entry{Key: "k", Value: []byte("1")}))
	require.NoError(t, m.Detach())
	require.NoError(t, m.Detach())

	_, _, err := m.Get("k")
	assert.ErrorIs(t, err, types.ErrBackendDetached)
	assert.ErrorIs(t, m.Put(Entry{Key: "k"}), types.ErrBackendDetached)
	assert.ErrorIs(t, m.Delete("k"), types.ErrBackendDetached)

	require.NoError(t, m.Attach(types.Config{Backend: types.BackendMemory}))
	_, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateKey(t *testing.T) {
	for _, k := range []string{"", ".", "..", "a/b", `a\b`, "nul\x00"} {
		assert.ErrorIs(t, ValidateKey(k), types.ErrInvalidKey, "key %q", k)
	}
	assert.NoError(t, ValidateKey("foodfresh_items_v1"))
}
