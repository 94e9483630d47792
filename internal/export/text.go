// Package export renders the full data set to text, CSV and a versioned
// backup snapshot, and restores a snapshot wholesale.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

const placeholder = "—"

func sortedDays(all map[dates.DayID]journal.Entry) []dates.DayID {
	days := make([]dates.DayID, 0, len(all))
	for d := range all {
		days = append(days, d)
	}
	sort.Slice(days, func(i, k int) bool { return days[i] < days[k] })
	return days
}

func orText(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func joinDomains(ds []journal.Domain, sep string) string {
	if len(ds) == 0 {
		return ""
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d)
	}
	return strings.Join(parts, sep)
}

// Text renders one human-readable record per day, date ascending.
func Text(all map[dates.DayID]journal.Entry) string {
	var b strings.Builder
	for _, day := range sortedDays(all) {
		e := all[day]
		check := ""
		if e.Completed {
			check = "✓"
		}
		fmt.Fprintf(&b, "=== %s %s ===\n", e.Date, check)
		fmt.Fprintf(&b, "Lenses: %s\n\n", orText(joinDomains(e.DomainTags, ", ")))
		fmt.Fprintf(&b, "What happened (facts):\n%s\n\n", orText(e.Facts))
		fmt.Fprintf(&b, "What worked:\n%s\n\n", orText(e.Worked))
		fmt.Fprintf(&b, "What didn’t:\n%s\n\n", orText(e.Didnt))
		fmt.Fprintf(&b, "One small improvement:\n%s\n", orText(e.Improvement.Text))
		fmt.Fprintf(&b, "Improvement lenses: %s\n", orText(joinDomains(e.Improvement.Domains, ", ")))
		fmt.Fprintf(&b, "Status: %s\n\n", e.Improvement.Status)

		b.WriteString("Lens notes:\n")
		if len(e.LensNotes) == 0 {
			b.WriteString(placeholder + "\n\n")
		} else {
			for _, d := range journal.Domains() {
				if note, ok := e.LensNotes[d]; ok {
					fmt.Fprintf(&b, "- %s: %s\n", d, note)
				}
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "Quick signals: sleep=%s, movement=%t, deepwork=%t, spiritual=%t\n\n",
			orText(e.QuickSignal.SleepQuality),
			e.QuickSignal.MovementDone,
			e.QuickSignal.DeepWorkDone,
			e.QuickSignal.SpiritualPracticeDone,
		)
	}
	return b.String()
}
