package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nestlog/internal/domain/entry"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.Local).UnixMilli()
	hour := int64(60 * 60 * 1000)

	store := entry.Store{
		Feedings: []entry.Feeding{
			{ID: 4, Type: entry.FeedingFormula, Volume: 120, Time: "01:00 PM", Timestamp: now - 2*hour},
			{ID: 3, Type: entry.FeedingBreast, Volume: 90, Time: "09:00 AM", Timestamp: now - 6*hour},
			{ID: 1, Type: entry.FeedingFormula, Volume: 100, Time: "08:00 PM", Timestamp: now - 24*hour},
		},
		Diapers: []entry.Diaper{
			{ID: 5, Type: entry.DiaperPee, Time: "02:00 PM", Timestamp: now - hour},
			{ID: 2, Type: entry.DiaperPoo, Time: "07:00 PM", Timestamp: now - 24*hour},
		},
		Sleeps: []entry.Sleep{
			{ID: 6, Start: "12:00", End: "13:30", Duration: "1h 30m", Timestamp: now - 3*hour},
		},
		Growth: []entry.Growth{
			{ID: 7, Weight: "6.40", Height: "62.00", Date: "2024-06-08", Timestamp: now - 48*hour},
		},
	}

	sum := BuildSummary(store, now)

	assert.Equal(t, "2024-06-10", sum.Date)
	assert.Equal(t, 2, sum.FeedingCount)
	assert.Equal(t, 210, sum.TotalVolume)
	assert.Equal(t, 1, sum.DiaperCount)
	assert.Equal(t, 1, sum.SleepCount)
	assert.Equal(t, entry.DiaperPee, sum.NextDiaper.Type)
	assert.Equal(t, "16:30", sum.NextDiaper.Time)
	assert.Equal(t, "6.40", sum.LatestWeight)
	assert.Equal(t, "62.00", sum.LatestHeight)
}

func TestBuildSummaryEmptyStore(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.Local).UnixMilli()

	sum := BuildSummary(entry.Store{}, now)

	assert.Zero(t, sum.FeedingCount)
	assert.Zero(t, sum.TotalVolume)
	assert.Zero(t, sum.DiaperCount)
	assert.Equal(t, "12:00", sum.NextDiaper.Time)
	assert.Equal(t, entry.DiaperPee, sum.NextDiaper.Type)
	assert.Equal(t, "0.00", sum.LatestWeight)
	assert.Equal(t, "0.00", sum.LatestHeight)
}
