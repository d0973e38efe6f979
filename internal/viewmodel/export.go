package viewmodel

import (
	"fmt"
	"strings"

	"nestlog/internal/domain/entry"
	"nestlog/internal/utils/timeutil"
)

// exportHeader labels the five cells of every export row.
var exportHeader = []string{"Category", "Date", "Time", "Detail", "Value"}

// ExportRows flattens all four entry kinds into one table: all feedings,
// then diapers, sleeps and growth entries, each group in the store's
// newest-first order.
func ExportRows(store entry.Store) [][]string {
	rows := make([][]string, 0,
		len(store.Feedings)+len(store.Diapers)+len(store.Sleeps)+len(store.Growth))

	for _, f := range store.Feedings {
		rows = append(rows, []string{
			entry.KindFeeding.DisplayName(),
			timeutil.FormatDate(f.Timestamp),
			f.Time,
			string(f.Type),
			fmt.Sprintf("%dml", f.Volume),
		})
	}
	for _, d := range store.Diapers {
		rows = append(rows, []string{
			entry.KindDiaper.DisplayName(),
			timeutil.FormatDate(d.Timestamp),
			d.Time,
			string(d.Type),
			d.Sub,
		})
	}
	for _, s := range store.Sleeps {
		rows = append(rows, []string{
			entry.KindSleep.DisplayName(),
			timeutil.FormatDate(s.Timestamp),
			fmt.Sprintf("%s-%s", s.Start, s.End),
			"Duration",
			s.Duration,
		})
	}
	for _, g := range store.Growth {
		rows = append(rows, []string{
			entry.KindGrowth.DisplayName(),
			g.Date,
			"-",
			fmt.Sprintf("H:%scm", g.Height),
			fmt.Sprintf("W:%skg", g.Weight),
		})
	}

	return rows
}

// ExportCSV renders the export table as comma-joined lines with a header
// row. Fields are joined as-is: a comma inside a note or label is a known
// limitation of the format, not something to quote away.
func ExportCSV(store entry.Store) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeader, ","))
	b.WriteByte('\n')
	for _, row := range ExportRows(store) {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
