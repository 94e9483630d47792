package review_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/review"
	"github.com/ramanasai/kaizen/internal/store"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Deep work session went WELL", []string{"deep", "session", "went", "well"}},
		// short words and stopwords are dropped
		{"the and was a to of", nil},
		{"I ran 5km, then stretched.", []string{"stretched"}},
		// punctuation splits, hyphens survive
		{"email/slack check-ins", []string{"email", "slack", "check-ins"}},
		// apostrophes split words apart
		{"couldn’t focus, wasn't calm", []string{"couldn", "focus", "wasn", "calm"}},
		{"WORKED today, work again", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, review.Tokenize(tt.in), "input %q", tt.in)
	}
}

func TestTopTerms(t *testing.T) {
	entries := []journal.Entry{
		{Worked: "morning walk cleared my head"},
		{Worked: "walk before standup helped focus"},
		{Worked: "long walk, short nap, good focus"},
	}

	terms := review.TopTerms(entries, review.Worked, 3)
	require.NotEmpty(t, terms)
	assert.Equal(t, review.Term{Term: "walk", Count: 3}, terms[0])
	assert.Len(t, terms, 3)

	assert.Equal(t, "focus", terms[1].Term)
	assert.Equal(t, 2, terms[1].Count)
}

func TestTopTerms_Truncates(t *testing.T) {
	entries := []journal.Entry{{Worked: "alpha bravo charlie delta echo"}}
	terms := review.TopTerms(entries, review.Worked, 2)
	assert.Len(t, terms, 2)
}

func TestDetectPatterns_LowSleepFocus(t *testing.T) {
	entries := []journal.Entry{
		{QuickSignal: journal.QuickSignals{SleepQuality: "1"}, Didnt: "could not focus at all"},
		{QuickSignal: journal.QuickSignals{SleepQuality: "2"}, Didnt: "kept getting distracted"},
		{QuickSignal: journal.QuickSignals{SleepQuality: "1"}, Didnt: "slow morning"},
		{QuickSignal: journal.QuickSignals{SleepQuality: "5"}, Didnt: "no focus"}, // good sleep, not counted
	}

	hints := review.DetectPatterns(entries)
	require.Len(t, hints, 1)
	assert.Equal(t, "Low sleep (≤2) often coincided with focus issues (2/3 low-sleep days).", hints[0])
}

func TestDetectPatterns_LowSleepNeedsTwoDays(t *testing.T) {
	entries := []journal.Entry{
		{QuickSignal: journal.QuickSignals{SleepQuality: "1"}, Didnt: "no focus"},
	}
	assert.Empty(t, review.DetectPatterns(entries))
}

func TestDetectPatterns_WorkVsSpiritual(t *testing.T) {
	work := []journal.Domain{journal.DomainWork}
	entries := []journal.Entry{
		{DomainTags: work},
		{DomainTags: work},
		{DomainTags: work, QuickSignal: journal.QuickSignals{SpiritualPracticeDone: true}},
	}

	hints := review.DetectPatterns(entries)
	require.Len(t, hints, 1)
	assert.Equal(t, "Work-tagged days often coincided with skipped spiritual practice (2/3 work days).", hints[0])
}

func TestDetectPatterns_MovementRichWorked(t *testing.T) {
	rich := "a long and detailed note about the day"
	entries := []journal.Entry{
		{QuickSignal: journal.QuickSignals{MovementDone: true}, Worked: rich},
		{QuickSignal: journal.QuickSignals{MovementDone: true}, Worked: rich},
		{QuickSignal: journal.QuickSignals{MovementDone: true}, Worked: "short"},
	}

	hints := review.DetectPatterns(entries)
	require.Len(t, hints, 1)
	assert.Equal(t, "Movement days tended to have richer “worked” notes (2/3).", hints[0])
}

func TestDetectPatterns_NoEntries(t *testing.T) {
	assert.Empty(t, review.DetectPatterns(nil))
}

func TestCollectWeek_WindowAndOrder(t *testing.T) {
	s := store.NewMemory()
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday

	put := func(day string) {
		require.NoError(t, s.PutEntry(journal.Entry{ID: day, Date: dates.DayID(day)}))
	}
	put("2026-08-23") // Sunday before, excluded
	put("2026-08-26")
	put("2026-08-24")
	put("2026-08-30") // Sunday, last day of the window
	put("2026-08-31") // next Monday, excluded

	week, err := review.CollectWeek(s, weekStart)
	require.NoError(t, err)
	require.Len(t, week, 3)
	assert.Equal(t, dates.DayID("2026-08-24"), week[0].Date)
	assert.Equal(t, dates.DayID("2026-08-26"), week[1].Date)
	assert.Equal(t, dates.DayID("2026-08-30"), week[2].Date)
}

func TestSummarize(t *testing.T) {
	s := store.NewMemory()
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.PutEntry(journal.Entry{
		ID:     "a",
		Date:   "2026-08-25",
		Worked: "morning walk helped",
		Didnt:  "late email spiral",
	}))

	sum, err := review.Summarize(s, weekStart)
	require.NoError(t, err)
	assert.Equal(t, weekStart, sum.WeekStart)
	assert.Equal(t, weekStart.AddDate(0, 0, 6), sum.WeekEnd)
	assert.Len(t, sum.Entries, 1)
	assert.NotEmpty(t, sum.WorkedThemes)
	assert.NotEmpty(t, sum.DidntThemes)
	assert.Empty(t, sum.PatternHints)
}
