package review

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

// How many theme terms a weekly summary keeps per field.
const topThemeCount = 12

// Term is one counted theme word.
type Term struct {
	Term  string
	Count int
}

// Summary is the weekly review payload for a 7-day window starting at
// WeekStart (a Monday).
type Summary struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	Entries      []journal.Entry
	WorkedThemes []Term
	DidntThemes  []Term
	PatternHints []string
}

// CollectWeek returns the existing entries whose date falls in
// [weekStart, weekStart+6], in date order. Missing days are absent, never
// synthesized.
func CollectWeek(s journal.Store, weekStart time.Time) ([]journal.Entry, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	var week []journal.Entry
	for i := 0; i < 7; i++ {
		day := dates.ToDayID(dates.AddDays(weekStart, i))
		if e, ok := all[day]; ok {
			week = append(week, e)
		}
	}
	return week, nil
}

// Field selects the narrative text a theme count runs over.
type Field func(journal.Entry) string

func Worked(e journal.Entry) string { return e.Worked }
func Didnt(e journal.Entry) string  { return e.Didnt }

// TopTerms tokenizes field across entries, counts distinct tokens and
// returns the n most frequent, count descending. Ties keep first-seen
// order.
func TopTerms(entries []journal.Entry, field Field, n int) []Term {
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		for _, w := range Tokenize(field(e)) {
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	terms := make([]Term, 0, len(order))
	for _, w := range order {
		terms = append(terms, Term{Term: w, Count: counts[w]})
	}
	sort.SliceStable(terms, func(i, k int) bool { return terms[i].Count > terms[k].Count })
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// DetectPatterns evaluates three independent threshold heuristics over the
// week and returns every hint that fires. These are nudges, not statistics.
func DetectPatterns(entries []journal.Entry) []string {
	var hints []string

	// Low sleep vs. focus problems in the "didn't" notes.
	var lowSleep, lowSleepFocus int
	for _, e := range entries {
		q, err := strconv.Atoi(e.QuickSignal.SleepQuality)
		if err != nil || q < 1 || q > 2 {
			continue
		}
		lowSleep++
		didnt := strings.ToLower(e.Didnt)
		if strings.Contains(didnt, "focus") || strings.Contains(didnt, "distract") {
			lowSleepFocus++
		}
	}
	if lowSleep >= 2 && lowSleepFocus >= 1 {
		hints = append(hints, fmt.Sprintf(
			"Low sleep (≤2) often coincided with focus issues (%d/%d low-sleep days).",
			lowSleepFocus, lowSleep))
	}

	// Work-tagged days vs. skipped spiritual practice.
	var workDays, workSkipped int
	for _, e := range entries {
		if !hasDomain(e.DomainTags, journal.DomainWork) {
			continue
		}
		workDays++
		if !e.QuickSignal.SpiritualPracticeDone {
			workSkipped++
		}
	}
	if workDays >= 3 && workSkipped >= 2 {
		hints = append(hints, fmt.Sprintf(
			"Work-tagged days often coincided with skipped spiritual practice (%d/%d work days).",
			workSkipped, workDays))
	}

	// Movement days vs. richer "worked" notes.
	var movement, richWorked int
	for _, e := range entries {
		if !e.QuickSignal.MovementDone {
			continue
		}
		movement++
		if len(e.Worked) >= 20 {
			richWorked++
		}
	}
	if movement >= 3 && richWorked >= 2 {
		hints = append(hints, fmt.Sprintf(
			"Movement days tended to have richer “worked” notes (%d/%d).",
			richWorked, movement))
	}

	return hints
}

func hasDomain(ds []journal.Domain, want journal.Domain) bool {
	for _, d := range ds {
		if d == want {
			return true
		}
	}
	return false
}

// Summarize builds the full weekly review for the week starting at
// weekStart.
func Summarize(s journal.Store, weekStart time.Time) (Summary, error) {
	entries, err := CollectWeek(s, weekStart)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		WeekStart:    weekStart,
		WeekEnd:      dates.AddDays(weekStart, 6),
		Entries:      entries,
		WorkedThemes: TopTerms(entries, Worked, topThemeCount),
		DidntThemes:  TopTerms(entries, Didnt, topThemeCount),
		PatternHints: DetectPatterns(entries),
	}, nil
}
