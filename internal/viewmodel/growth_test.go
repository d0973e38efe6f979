package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestlog/internal/domain/entry"
)

func TestLatestGrowth(t *testing.T) {
	sentinel := LatestGrowth(nil)
	assert.Equal(t, "0.00", sentinel.Weight)
	assert.Equal(t, "0.00", sentinel.Height)

	growth := []entry.Growth{
		{ID: 2, Weight: "6.50", Height: "62.00", Timestamp: 200},
		{ID: 1, Weight: "6.20", Height: "60.00", Timestamp: 100},
	}
	assert.Equal(t, "6.50", LatestGrowth(growth).Weight)
}

func TestGrowthSeriesTooFewPoints(t *testing.T) {
	assert.Empty(t, GrowthSeries(nil, FieldWeight))
	assert.Empty(t, GrowthSeries([]entry.Growth{{Weight: "6.00", Timestamp: 100}}, FieldWeight))
}

func TestGrowthSeriesNormalization(t *testing.T) {
	// Store order is newest first; the series must sort ascending.
	growth := []entry.Growth{
		{ID: 2, Weight: "7.00", Height: "64.00", Timestamp: 200},
		{ID: 1, Weight: "6.00", Height: "62.00", Timestamp: 100},
	}

	points := GrowthSeries(growth, FieldWeight)
	require.Len(t, points, 2)

	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 1.0, points[1].X)

	// min=6, max=7, padded range [5.5, 7.5]: y = (v-5.5)/2.
	assert.InDelta(t, 0.25, points[0].Y, 1e-9)
	assert.InDelta(t, 0.75, points[1].Y, 1e-9)

	// The 0.5 margin keeps extremes strictly inside (0,1).
	assert.Greater(t, points[0].Y, 0.0)
	assert.Less(t, points[1].Y, 1.0)
}

func TestGrowthSeriesHeightField(t *testing.T) {
	growth := []entry.Growth{
		{ID: 3, Weight: "7.20", Height: "66.00", Timestamp: 300},
		{ID: 2, Weight: "7.00", Height: "64.00", Timestamp: 200},
		{ID: 1, Weight: "6.00", Height: "62.00", Timestamp: 100},
	}

	points := GrowthSeries(growth, FieldHeight)
	require.Len(t, points, 3)

	// Ascending timestamps map to ascending x.
	assert.InDelta(t, 0.5, points[1].X, 1e-9)
	// 64 in padded range [61.5, 66.5]: (64-61.5)/5 = 0.5.
	assert.InDelta(t, 0.5, points[1].Y, 1e-9)
}

func TestGrowthSeriesFlatValues(t *testing.T) {
	// Identical values still produce a usable series: padded range is
	// [v-0.5, v+0.5], so every y is 0.5.
	growth := []entry.Growth{
		{ID: 2, Weight: "6.00", Timestamp: 200},
		{ID: 1, Weight: "6.00", Timestamp: 100},
	}

	points := GrowthSeries(growth, FieldWeight)
	require.Len(t, points, 2)
	assert.InDelta(t, 0.5, points[0].Y, 1e-9)
	assert.InDelta(t, 0.5, points[1].Y, 1e-9)
}
