package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timestamps(feedings []Feeding) []int64 {
	out := make([]int64, len(feedings))
	for i, f := range feedings {
		out[i] = f.Timestamp
	}
	return out
}

func TestStoreUpsertKeepsDescendingOrder(t *testing.T) {
	var s Store

	// Insert out of order on purpose.
	s = s.UpsertFeeding(Feeding{ID: 1, Timestamp: 100})
	s = s.UpsertFeeding(Feeding{ID: 2, Timestamp: 300})
	s = s.UpsertFeeding(Feeding{ID: 3, Timestamp: 200})

	assert.Equal(t, []int64{300, 200, 100}, timestamps(s.Feedings))

	// Moving an existing entry's timestamp re-sorts as well.
	s = s.UpsertFeeding(Feeding{ID: 1, Timestamp: 400})
	assert.Equal(t, []int64{400, 300, 200}, timestamps(s.Feedings))
	assert.Len(t, s.Feedings, 3)
}

func TestStoreUpsertReplacesById(t *testing.T) {
	var s Store
	s = s.UpsertFeeding(Feeding{ID: 1, Type: FeedingFormula, Volume: 110, Timestamp: 100})
	s = s.UpsertFeeding(Feeding{ID: 1, Type: FeedingFormula, Volume: 150, Timestamp: 100})

	require.Len(t, s.Feedings, 1)
	assert.Equal(t, 150, s.Feedings[0].Volume)
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	var s Store
	s = s.UpsertDiaper(Diaper{ID: 1, Type: DiaperPee, Timestamp: 100})
	s = s.UpsertDiaper(Diaper{ID: 2, Type: DiaperPoo, Timestamp: 200})

	s = s.RemoveDiaper(1)
	require.Len(t, s.Diapers, 1)

	// Second remove of the same id is a no-op.
	s = s.RemoveDiaper(1)
	require.Len(t, s.Diapers, 1)
	assert.Equal(t, int64(2), s.Diapers[0].ID)

	s = s.RemoveDiaper(99)
	assert.Len(t, s.Diapers, 1)
}

func TestStoreCopyOnWrite(t *testing.T) {
	var s Store
	s = s.UpsertSleep(Sleep{ID: 1, Start: "10:00", End: "11:00", Timestamp: 100})

	snapshot := s
	s = s.UpsertSleep(Sleep{ID: 2, Start: "13:00", End: "15:00", Timestamp: 200})
	s = s.RemoveSleep(1)

	// The earlier snapshot is unaffected by later mutations.
	require.Len(t, snapshot.Sleeps, 1)
	assert.Equal(t, int64(1), snapshot.Sleeps[0].ID)
	require.Len(t, s.Sleeps, 1)
	assert.Equal(t, int64(2), s.Sleeps[0].ID)
}

func TestStoreGrowthOrdering(t *testing.T) {
	var s Store
	s = s.UpsertGrowth(Growth{ID: 1, Weight: "6.20", Height: "60.00", Timestamp: 100})
	s = s.UpsertGrowth(Growth{ID: 2, Weight: "6.50", Height: "62.00", Timestamp: 200})

	require.Len(t, s.Growth, 2)
	assert.Equal(t, "6.50", s.Growth[0].Weight)
}
