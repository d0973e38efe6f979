package client

import (
	"nestlog/internal/domain/entry"
	"nestlog/internal/utils/timeutil"
	"nestlog/internal/viewmodel"
)

// Summary is the daily digest shown by the summary command.
type Summary struct {
	Date         string                     `json:"date"`
	FeedingCount int                        `json:"feeding_count"`
	TotalVolume  int                        `json:"total_volume"`
	DiaperCount  int                        `json:"diaper_count"`
	SleepCount   int                        `json:"sleep_count"`
	NextDiaper   viewmodel.DiaperPrediction `json:"next_diaper"`
	LatestWeight string                     `json:"latest_weight"`
	LatestHeight string                     `json:"latest_height"`
}

// BuildSummary derives the digest for the day containing now (epoch
// milliseconds) from a full entry store.
func BuildSummary(store entry.Store, now int64) Summary {
	todayFeedings := viewmodel.FilterFeedingsByDay(store.Feedings, now)
	todayDiapers := viewmodel.FilterDiapersByScope(store.Diapers, viewmodel.ScopeToday, now)

	sleepCount := 0
	for _, sl := range store.Sleeps {
		if timeutil.SameDay(sl.Timestamp, now) {
			sleepCount++
		}
	}

	latest := viewmodel.LatestGrowth(store.Growth)

	return Summary{
		Date:         timeutil.FormatDate(now),
		FeedingCount: len(todayFeedings),
		TotalVolume:  viewmodel.TotalVolume(todayFeedings),
		DiaperCount:  len(todayDiapers),
		SleepCount:   sleepCount,
		NextDiaper:   viewmodel.PredictNextDiaper(store.Diapers),
		LatestWeight: latest.Weight,
		LatestHeight: latest.Height,
	}
}
