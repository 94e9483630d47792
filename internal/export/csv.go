package export

import (
	"strings"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

var csvHeader = []string{
	"date", "completed", "domains",
	"facts", "worked", "didnt",
	"improvement_text", "improvement_domains", "improvement_status",
	"sleep_quality", "movement_done", "deep_work_done", "spiritual_practice_done",
}

// quote applies the always-quote policy for free-text columns: internal
// quotes doubled, the whole value wrapped.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func boolCol(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// CSV renders one row per day, date ascending, with multi-value fields
// joined by "|".
func CSV(all map[dates.DayID]journal.Entry) string {
	rows := []string{strings.Join(csvHeader, ",")}
	for _, day := range sortedDays(all) {
		e := all[day]
		row := []string{
			string(e.Date),
			boolCol(e.Completed),
			quote(joinDomains(e.DomainTags, "|")),
			quote(e.Facts),
			quote(e.Worked),
			quote(e.Didnt),
			quote(e.Improvement.Text),
			quote(joinDomains(e.Improvement.Domains, "|")),
			string(e.Improvement.Status),
			e.QuickSignal.SleepQuality,
			boolCol(e.QuickSignal.MovementDone),
			boolCol(e.QuickSignal.DeepWorkDone),
			boolCol(e.QuickSignal.SpiritualPracticeDone),
		}
		rows = append(rows, strings.Join(row, ","))
	}
	return strings.Join(rows, "\n")
}
