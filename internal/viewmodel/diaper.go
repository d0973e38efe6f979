package viewmodel

import (
	"nestlog/internal/domain/entry"
	"nestlog/internal/utils/timeutil"
)

// DiaperFilter selects a diaper type subset. "mixed" is accepted even
// though the UI's own filter control only exposes all/pee/poo.
type DiaperFilter string

const (
	DiaperFilterAll   DiaperFilter = "all"
	DiaperFilterPee   DiaperFilter = "pee"
	DiaperFilterPoo   DiaperFilter = "poo"
	DiaperFilterMixed DiaperFilter = "mixed"
)

// DiaperScope limits diapers to today or keeps full history.
type DiaperScope string

const (
	ScopeToday   DiaperScope = "today"
	ScopeHistory DiaperScope = "history"
)

// FilterDiapersByType keeps diapers matching the filter exactly;
// DiaperFilterAll is the identity.
func FilterDiapersByType(diapers []entry.Diaper, filter DiaperFilter) []entry.Diaper {
	if filter == DiaperFilterAll {
		return diapers
	}
	out := make([]entry.Diaper, 0, len(diapers))
	for _, d := range diapers {
		if string(d.Type) == string(filter) {
			out = append(out, d)
		}
	}
	return out
}

// FilterDiapersByScope keeps only same-day diapers for ScopeToday;
// ScopeHistory applies no filtering.
func FilterDiapersByScope(diapers []entry.Diaper, scope DiaperScope, now int64) []entry.Diaper {
	if scope != ScopeToday {
		return diapers
	}
	out := make([]entry.Diaper, 0, len(diapers))
	for _, d := range diapers {
		if timeutil.SameDay(d.Timestamp, now) {
			out = append(out, d)
		}
	}
	return out
}

// DiaperPrediction is the next expected diaper change.
type DiaperPrediction struct {
	Time string           `json:"time"`
	Type entry.DiaperType `json:"type"`
}

const diaperIntervalMillis = int64(2.5 * 60 * 60 * 1000)

// PredictNextDiaper takes the most recent diaper (the input is ordered
// newest first) and adds 2.5 hours to its timestamp. The predicted type is
// always "pee". With no history it falls back to a fixed midday default.
func PredictNextDiaper(diapers []entry.Diaper) DiaperPrediction {
	if len(diapers) == 0 {
		return DiaperPrediction{Time: "12:00", Type: entry.DiaperPee}
	}

	next := diapers[0].Timestamp + diaperIntervalMillis
	return DiaperPrediction{
		Time: timeutil.FormatClock(next),
		Type: entry.DiaperPee,
	}
}
