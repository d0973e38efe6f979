package viewmodel

import (
	"sort"
	"strconv"

	"nestlog/internal/domain/entry"
)

// GrowthField selects which measurement a chart series plots.
type GrowthField string

const (
	FieldWeight GrowthField = "weight"
	FieldHeight GrowthField = "height"
)

// Point is one normalized chart point, both axes in [0,1].
type Point struct {
	X float64
	Y float64
}

// LatestGrowth returns the newest measurement (the input is ordered newest
// first) or a zero sentinel when there is none.
func LatestGrowth(growth []entry.Growth) entry.Growth {
	if len(growth) == 0 {
		return entry.Growth{Weight: "0.00", Height: "0.00"}
	}
	return growth[0]
}

// GrowthSeries produces a normalized chart series for one field. Points are
// sorted ascending by timestamp regardless of the store's descending order.
// Values are mapped into [0,1] with a fixed 0.5-unit margin beyond the
// observed min and max, so the extremes never touch the chart edge. Fewer
// than two points yields an empty series.
func GrowthSeries(growth []entry.Growth, field GrowthField) []Point {
	if len(growth) < 2 {
		return nil
	}

	ordered := make([]entry.Growth, len(growth))
	copy(ordered, growth)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	values := make([]float64, len(ordered))
	for i, g := range ordered {
		raw := g.Weight
		if field == FieldHeight {
			raw = g.Height
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// Stored values are normalized on write; a bad one means the
			// record never went through Normalize and is skipped as zero.
			v = 0
		}
		values[i] = v
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	lo := minVal - 0.5
	hi := maxVal + 0.5

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: float64(i) / float64(len(values)-1),
			Y: (v - lo) / (hi - lo),
		}
	}
	return points
}
