package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestlog/internal/domain/entry"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return storage
}

func testStore() entry.Store {
	return entry.Store{
		Feedings: []entry.Feeding{
			{ID: 3, Type: entry.FeedingFormula, Volume: 120, Time: "02:10 PM", Timestamp: 3000, Note: "after nap"},
			{ID: 1, Type: entry.FeedingBreast, Volume: 90, Time: "09:00 AM", Timestamp: 1000},
		},
		Diapers: []entry.Diaper{
			{ID: 2, Type: entry.DiaperPoo, Sub: "soft", Time: "11:30 AM", Timestamp: 2000, Color: "yellow"},
		},
		Sleeps: []entry.Sleep{
			{ID: 4, Start: "13:00", End: "14:30", Duration: "1h 30m", Timestamp: 4000},
		},
		Growth: []entry.Growth{
			{ID: 5, Weight: "6.40", Height: "62.00", Date: "2024-06-10", Timestamp: 5000},
		},
	}
}

func TestReplaceAndLoadStore(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.ReplaceStore(1, testStore()))

	loaded, err := storage.LoadStore(1)
	require.NoError(t, err)
	assert.Equal(t, testStore(), loaded)

	count, err := storage.CountEntries(1)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestReplaceStoreDropsStaleEntries(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.ReplaceStore(1, testStore()))

	smaller := entry.Store{
		Feedings: []entry.Feeding{
			{ID: 9, Type: entry.FeedingFormula, Volume: 100, Time: "08:00 AM", Timestamp: 9000},
		},
	}
	require.NoError(t, storage.ReplaceStore(1, smaller))

	loaded, err := storage.LoadStore(1)
	require.NoError(t, err)
	assert.Equal(t, smaller, loaded)
}

func TestLoadStoreOrdersNewestFirst(t *testing.T) {
	storage := newTestStorage(t)

	store := entry.Store{
		Feedings: []entry.Feeding{
			{ID: 1, Type: entry.FeedingBreast, Volume: 80, Time: "07:00 AM", Timestamp: 1000},
			{ID: 2, Type: entry.FeedingFormula, Volume: 110, Time: "10:00 AM", Timestamp: 5000},
		},
	}
	require.NoError(t, storage.ReplaceStore(1, store))

	loaded, err := storage.LoadStore(1)
	require.NoError(t, err)
	require.Len(t, loaded.Feedings, 2)
	assert.Equal(t, int64(2), loaded.Feedings[0].ID)
	assert.Equal(t, int64(1), loaded.Feedings[1].ID)
}

func TestStoresAreIsolatedPerBaby(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.ReplaceStore(1, testStore()))

	loaded, err := storage.LoadStore(2)
	require.NoError(t, err)
	assert.Empty(t, loaded.Feedings)
	assert.Empty(t, loaded.Diapers)
	assert.Empty(t, loaded.Sleeps)
	assert.Empty(t, loaded.Growth)
}

func TestLastBabyID(t *testing.T) {
	storage := newTestStorage(t)

	id, err := storage.LastBabyID()
	require.NoError(t, err)
	assert.Zero(t, id)

	require.NoError(t, storage.ReplaceStore(7, testStore()))

	id, err = storage.LastBabyID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}
