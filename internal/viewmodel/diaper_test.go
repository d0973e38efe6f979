package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestlog/internal/domain/entry"
)

func sampleDiapers(now time.Time) []entry.Diaper {
	return []entry.Diaper{
		{ID: 1, Type: entry.DiaperPoo, Sub: "Mustard Yellow", Timestamp: ts(now.Add(-1 * time.Hour))},
		{ID: 2, Type: entry.DiaperPee, Sub: "Normal", Timestamp: ts(now.Add(-3 * time.Hour))},
		{ID: 3, Type: entry.DiaperMixed, Sub: "Soft", Timestamp: ts(now.AddDate(0, 0, -1))},
	}
}

func TestFilterDiapersByType(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	diapers := sampleDiapers(now)

	assert.Len(t, FilterDiapersByType(diapers, DiaperFilterAll), 3)

	pee := FilterDiapersByType(diapers, DiaperFilterPee)
	require.Len(t, pee, 1)
	assert.Equal(t, int64(2), pee[0].ID)

	// "mixed" is a valid filter even though the UI only exposes all/pee/poo.
	mixed := FilterDiapersByType(diapers, DiaperFilterMixed)
	require.Len(t, mixed, 1)
	assert.Equal(t, int64(3), mixed[0].ID)
}

func TestFilterDiapersByScope(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	diapers := sampleDiapers(now)

	today := FilterDiapersByScope(diapers, ScopeToday, ts(now))
	require.Len(t, today, 2)

	history := FilterDiapersByScope(diapers, ScopeHistory, ts(now))
	assert.Len(t, history, 3)
}

func TestPredictNextDiaperEmpty(t *testing.T) {
	got := PredictNextDiaper(nil)
	assert.Equal(t, DiaperPrediction{Time: "12:00", Type: entry.DiaperPee}, got)
}

func TestPredictNextDiaper(t *testing.T) {
	last := time.Date(2024, 3, 15, 13, 30, 0, 0, time.Local)
	diapers := []entry.Diaper{
		{ID: 1, Type: entry.DiaperPoo, Timestamp: ts(last)},
		{ID: 2, Type: entry.DiaperPee, Timestamp: ts(last.Add(-2 * time.Hour))},
	}

	got := PredictNextDiaper(diapers)
	assert.Equal(t, "16:00", got.Time) // 13:30 + 2.5h
	// The heuristic always predicts pee, even after a poo change.
	assert.Equal(t, entry.DiaperPee, got.Type)
}

func TestPredictNextDiaperCrossesMidnight(t *testing.T) {
	last := time.Date(2024, 3, 15, 23, 0, 0, 0, time.Local)
	got := PredictNextDiaper([]entry.Diaper{{ID: 1, Type: entry.DiaperPee, Timestamp: ts(last)}})
	assert.Equal(t, "01:30", got.Time)
}
