package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/export"
	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/store"
)

func entryFixture() journal.Entry {
	return journal.Entry{
		ID:         "e1",
		Date:       "2026-08-31",
		DomainTags: []journal.Domain{journal.DomainWork, journal.DomainHealth},
		Facts:      "Shipped the release",
		Worked:     "Morning walk before standup",
		Improvement: journal.Improvement{
			ID:         "i1",
			Text:       "After coffee, write 1 priority",
			Domains:    []journal.Domain{journal.DomainWork},
			Status:     journal.StatusNeedsTesting,
			OriginDate: "2026-08-31",
		},
		LensNotes: map[journal.Domain]string{
			journal.DomainSpiritual: "10 min sit before lunch",
		},
		QuickSignal: journal.QuickSignals{SleepQuality: "4", MovementDone: true},
		Completed:   true,
		CreatedAt:   time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC),
	}
}

func TestText_SectionsAndPlaceholders(t *testing.T) {
	e := entryFixture()
	out := export.Text(map[dates.DayID]journal.Entry{e.Date: e})

	assert.Contains(t, out, "=== 2026-08-31 ✓ ===")
	assert.Contains(t, out, "Lenses: Work, Health/Fitness")
	assert.Contains(t, out, "What happened (facts):\nShipped the release")
	assert.Contains(t, out, "What worked:\nMorning walk before standup")
	// empty narrative fields render the placeholder
	assert.Contains(t, out, "What didn’t:\n—")
	assert.Contains(t, out, "One small improvement:\nAfter coffee, write 1 priority")
	assert.Contains(t, out, "Status: needsTesting")
	assert.Contains(t, out, "- Spiritual/Inner Life: 10 min sit before lunch")
	assert.Contains(t, out, "Quick signals: sleep=4, movement=true, deepwork=false, spiritual=false")
}

func TestText_EmptyEntry(t *testing.T) {
	e := journal.Entry{ID: "e1", Date: "2026-08-31"}
	out := export.Text(map[dates.DayID]journal.Entry{e.Date: e})

	assert.Contains(t, out, "=== 2026-08-31  ===")
	assert.Contains(t, out, "Lenses: —")
	assert.Contains(t, out, "Lens notes:\n—")
	assert.Contains(t, out, "sleep=—")
}

func TestText_DateAscending(t *testing.T) {
	all := map[dates.DayID]journal.Entry{
		"2026-08-31": {Date: "2026-08-31"},
		"2026-08-02": {Date: "2026-08-02"},
		"2026-08-15": {Date: "2026-08-15"},
	}
	out := export.Text(all)
	first := strings.Index(out, "2026-08-02")
	second := strings.Index(out, "2026-08-15")
	third := strings.Index(out, "2026-08-31")
	assert.True(t, first < second && second < third)
}

func TestCSV_HeaderAndQuoting(t *testing.T) {
	e := entryFixture()
	e.Facts = `He said "go"`
	out := export.CSV(map[dates.DayID]journal.Entry{e.Date: e})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"date,completed,domains,facts,worked,didnt,improvement_text,improvement_domains,improvement_status,sleep_quality,movement_done,deep_work_done,spiritual_practice_done",
		lines[0])

	// free text is always quoted, internal quotes doubled
	assert.Contains(t, lines[1], `"He said ""go"""`)
	assert.Contains(t, lines[1], `"Work|Health/Fitness"`)
	assert.True(t, strings.HasPrefix(lines[1], "2026-08-31,1,"))
	assert.True(t, strings.HasSuffix(lines[1], ",needsTesting,4,1,0,0"))
}

func TestCSV_EmptyStore(t *testing.T) {
	out := export.CSV(nil)
	assert.False(t, strings.Contains(out, "\n"), "header only, no rows")
	assert.True(t, strings.HasPrefix(out, "date,completed,"))
}

func TestBackup_RoundTrip(t *testing.T) {
	src := store.NewMemory()
	e := entryFixture()
	require.NoError(t, src.PutEntry(e))
	item := journal.LibraryItem{
		ID:          "l1",
		Text:        "Walk 10 min after lunch",
		Domains:     []journal.Domain{journal.DomainHealth},
		Status:      journal.StatusKept,
		FirstUsedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		LastUsedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		UseCount:    3,
	}
	require.NoError(t, src.PutLibraryItem(item))

	snap, err := export.TakeSnapshot(src)
	require.NoError(t, err)
	assert.Equal(t, export.SchemaVersion, snap.Version)
	assert.False(t, snap.ExportedAt.IsZero())

	data, err := snap.Encode()
	require.NoError(t, err)

	dst := store.NewMemory()
	require.NoError(t, dst.PutEntry(journal.Entry{ID: "stale", Date: "2020-01-01"}))
	require.NoError(t, export.Restore(dst, data))

	// wholesale replace: pre-existing data is gone
	entries, err := dst.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e, entries[e.Date])

	library, err := dst.Library()
	require.NoError(t, err)
	require.Len(t, library, 1)
	assert.Equal(t, item, library[0])
}

func TestRestore_MissingCollection(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.PutEntry(journal.Entry{ID: "keep", Date: "2026-08-31"}))

	for _, payload := range []string{
		`{"version":"v1","exportedAt":"2026-08-31T00:00:00Z","entries":{}}`,
		`{"version":"v1","exportedAt":"2026-08-31T00:00:00Z","library":[]}`,
		`{}`,
	} {
		err := export.Restore(s, []byte(payload))
		assert.ErrorIs(t, err, export.ErrInvalidBackup, "payload %s", payload)
	}

	// the store was never touched
	entries, err := s.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRestore_MalformedJSON(t *testing.T) {
	s := store.NewMemory()
	err := export.Restore(s, []byte("not json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, export.ErrInvalidBackup)
}

func TestRestore_EmptyCollectionsAreValid(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.PutEntry(journal.Entry{ID: "stale", Date: "2026-08-31"}))

	payload := `{"version":"v1","exportedAt":"2026-08-31T00:00:00Z","entries":{},"library":[]}`
	require.NoError(t, export.Restore(s, []byte(payload)))

	entries, err := s.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
