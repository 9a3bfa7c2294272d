package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/foodfresh/internal/kv"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// setupBackend attaches a Backend to a fresh temp directory and detaches it
// when the test finishes.
func setupBackend(t *testing.T) (*Backend, types.Config) {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b, config
}

func TestAttachCreatesDatabase(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dataDir, dbFileName))
	assert.NoError(t, err)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestAttachTwice(t *testing.T) {
	b, config := setupBackend(t)
	assert.ErrorIs(t, b.Attach(config), types.ErrAlreadyAttached)
}

func TestGetPutDelete(t *testing.T) {
	b, _ := setupBackend(t)

	_, ok, err := b.Get("foodfresh_items_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Put(kv.Entry{Key: "foodfresh_items_v1", Value: []byte(`[{"id":"a"}]`)}))
	v, ok, err := b.Get("foodfresh_items_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(v))

	require.NoError(t, b.Put(kv.Entry{Key: "foodfresh_items_v1", Value: []byte(`[]`)}))
	v, _, err = b.Get("foodfresh_items_v1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v), "put overwrites the whole document")

	require.NoError(t, b.Delete("foodfresh_items_v1"))
	_, ok, err = b.Get("foodfresh_items_v1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutEmptyValue(t *testing.T) {
	b, _ := setupBackend(t)
	require.NoError(t, b.Put(kv.Entry{Key: "empty"}))

	v, ok, err := b.Get("empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestPutRejectsInvalidKeyBeforeWriting(t *testing.T) {
	b, _ := setupBackend(t)
	err := b.Put(kv.Entry{Key: "good", Value: []byte("1")}, kv.Entry{Key: "", Value: []byte("2")})
	assert.ErrorIs(t, err, types.ErrInvalidKey)

	_, ok, err := b.Get("good")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDocumentsSurviveReattach(t *testing.T) {
	b, config := setupBackend(t)
	require.NoError(t, b.Put(
		kv.Entry{Key: "foodfresh_items_v1", Value: []byte(`[1]`)},
		kv.Entry{Key: "foodfresh_waste_v1", Value: []byte(`[2]`)},
	))
	require.NoError(t, b.Detach())

	again := NewBackend()
	require.NoError(t, again.Attach(config))
	defer again.Detach()

	items, ok, err := again.Get("foodfresh_items_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(items))

	waste, ok, err := again.Get("foodfresh_waste_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[2]`, string(waste))
}

func TestDetachedOperations(t *testing.T) {
	b, _ := setupBackend(t)
	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	_, _, err := b.Get("k")
	assert.ErrorIs(t, err, types.ErrBackendDetached)
	assert.ErrorIs(t, b.Put(kv.Entry{Key: "k"}), types.ErrBackendDetached)
	assert.ErrorIs(t, b.Delete("k"), types.ErrBackendDetached)
}
