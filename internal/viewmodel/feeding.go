// Package viewmodel computes the derived views a screen renders from a
// snapshot of care entries: day/week filters, totals, next-event
// predictions, growth chart series and the export table.
//
// Every function here is pure. "Now" and reference dates are always
// explicit parameters, never sampled mid-computation, so the same inputs
// always produce the same output.
package viewmodel

import (
	"nestlog/internal/domain/entry"
	"nestlog/internal/utils/timeutil"
)

const dayMillis = 24 * 60 * 60 * 1000

// FilterFeedingsByDay keeps feedings whose timestamp falls on the same local
// calendar day as reference.
func FilterFeedingsByDay(feedings []entry.Feeding, reference int64) []entry.Feeding {
	out := make([]entry.Feeding, 0, len(feedings))
	for _, f := range feedings {
		if timeutil.SameDay(f.Timestamp, reference) {
			out = append(out, f)
		}
	}
	return out
}

// FilterFeedingsByWeek keeps feedings within 7 days of reference. The
// distance is ceil(|reference-timestamp| / 1 day), so an entry exactly 7
// days out is included and one 8 days out is excluded. The boundary rule is
// a documented contract; callers rely on the inclusive edge.
func FilterFeedingsByWeek(feedings []entry.Feeding, reference int64) []entry.Feeding {
	out := make([]entry.Feeding, 0, len(feedings))
	for _, f := range feedings {
		diff := reference - f.Timestamp
		if diff < 0 {
			diff = -diff
		}
		days := (diff + dayMillis - 1) / dayMillis
		if days <= 7 {
			out = append(out, f)
		}
	}
	return out
}

// TotalVolume sums feeding volumes in milliliters. An empty slice sums to 0.
func TotalVolume(feedings []entry.Feeding) int {
	total := 0
	for _, f := range feedings {
		total += f.Volume
	}
	return total
}
