package foodfresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

func TestOpenPersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{types.BackendSQLite, types.BackendFile} {
		t.Run(backend, func(t *testing.T) {
			config := types.Config{Backend: backend, DataDir: t.TempDir()}

			inv, err := Open(config, nil)
			require.NoError(t, err)
			milk, err := inv.Add(types.ItemInput{Name: "milk", ExpirationDate: "2026-04-01", Price: types.PriceFromFloat(1.2)})
			require.NoError(t, err)
			bread, err := inv.Add(types.ItemInput{Name: "bread", ExpirationDate: "2026-03-20", Price: types.PriceFromFloat(2.5)})
			require.NoError(t, err)
			require.NoError(t, inv.Waste(bread))
			require.NoError(t, inv.Close())
			require.NoError(t, inv.Close())

			again, err := Open(config, nil)
			require.NoError(t, err)
			defer again.Close()

			items := again.Items()
			require.Len(t, items, 1)
			assert.Equal(t, milk.ID, items[0].ID)
			assert.Equal(t, "Milk", items[0].Name)

			records := again.WasteRecords()
			require.Len(t, records, 1)
			assert.Equal(t, "Bread", records[0].Name)
			assert.True(t, again.TotalWasteCost().Equal(types.PriceFromFloat(2.5)))
		})
	}
}

func TestOpenMemory(t *testing.T) {
	inv, err := Open(types.Config{Backend: types.BackendMemory}, nil)
	require.NoError(t, err)
	defer inv.Close()

	_, err = inv.Add(types.ItemInput{Name: "eggs", ExpirationDate: "2026-04-01"})
	require.NoError(t, err)
	assert.Len(t, inv.Items(), 1)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{}, nil)
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = Open(types.Config{Backend: "redis"}, nil)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestNewBackend(t *testing.T) {
	for _, name := range []string{types.BackendSQLite, types.BackendFile, types.BackendMemory} {
		b, err := NewBackend(name)
		require.NoError(t, err, name)
		assert.NotNil(t, b)
	}
	_, err := NewBackend("mysql")
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestInventoryImplementsPantry(t *testing.T) {
	inv, err := Open(types.Config{Backend: types.BackendMemory}, nil)
	require.NoError(t, err)
	defer inv.Close()

	var p types.Pantry = inv
	_, err = p.Add(types.ItemInput{Name: "rice", ExpirationDate: "2027-01-01", StorageLocation: types.LocationPantry})
	require.NoError(t, err)

	var got []types.FoodItem
	defer p.List(func(items []types.FoodItem) { got = items })()
	require.Len(t, got, 1)
	assert.Equal(t, types.LocationPantry, got[0].StorageLocation)
}
