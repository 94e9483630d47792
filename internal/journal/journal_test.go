package journal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/store"
)

const day = dates.DayID("2026-08-31")

func TestGetOrCreate_LazyDefault(t *testing.T) {
	j := journal.New(store.NewMemory())

	e, err := j.GetOrCreate(day)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, day, e.Date)
	assert.Empty(t, e.DomainTags)
	assert.Empty(t, e.Facts)
	assert.False(t, e.Completed)

	// exactly one improvement slot, fresh and empty
	assert.NotEmpty(t, e.Improvement.ID)
	assert.Empty(t, e.Improvement.Text)
	assert.Equal(t, journal.StatusNeedsTesting, e.Improvement.Status)
	assert.Equal(t, day, e.Improvement.OriginDate)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	s := store.NewMemory()
	j := journal.New(s)

	first, err := j.GetOrCreate(day)
	require.NoError(t, err)
	second, err := j.GetOrCreate(day)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	all, err := s.Entries()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdate_PatchesOnlySetFields(t *testing.T) {
	s := store.NewMemory()
	j := journal.New(s)

	facts := "Long standup, then deep work block"
	sleep := "2"
	done := true
	tags := []journal.Domain{journal.DomainWork}

	e, err := j.Update(day, journal.Patch{
		Facts:        &facts,
		SleepQuality: &sleep,
		MovementDone: &done,
		DomainTags:   &tags,
	})
	require.NoError(t, err)

	assert.Equal(t, facts, e.Facts)
	assert.Equal(t, "2", e.QuickSignal.SleepQuality)
	assert.True(t, e.QuickSignal.MovementDone)
	assert.Equal(t, tags, e.DomainTags)

	// untouched fields keep defaults
	assert.Empty(t, e.Worked)
	assert.False(t, e.Completed)
	assert.False(t, e.QuickSignal.DeepWorkDone)

	// persisted, not just returned
	stored, ok, err := s.Entry(day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, facts, stored.Facts)
	assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt))
}

// failingStore rejects entry writes after the first N puts.
type failingStore struct {
	journal.Store
	puts    int
	failAt  int
	failErr error
}

func (f *failingStore) PutEntry(e journal.Entry) error {
	f.puts++
	if f.puts >= f.failAt {
		return f.failErr
	}
	return f.Store.PutEntry(e)
}

func TestUpdate_AllOrNothing(t *testing.T) {
	mem := store.NewMemory()
	j := journal.New(mem)

	before, err := j.GetOrCreate(day)
	require.NoError(t, err)

	boom := errors.New("disk full")
	fs := &failingStore{Store: mem, failAt: 1, failErr: boom}
	jf := journal.New(fs)

	facts := "this must not stick"
	yes := true
	_, err = jf.Update(day, journal.Patch{Facts: &facts, Completed: &yes})
	require.ErrorIs(t, err, boom)

	after, ok, err := mem.Entry(day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestLensNotes_SparseMap(t *testing.T) {
	s := store.NewMemory()
	j := journal.New(s)

	e, err := j.SetLensNote(day, journal.DomainSpiritual, "10 min meditation after coffee")
	require.NoError(t, err)
	assert.Len(t, e.LensNotes, 1)
	assert.Equal(t, "10 min meditation after coffee", e.LensNotes[journal.DomainSpiritual])

	e, err = j.RemoveLensNote(day, journal.DomainSpiritual)
	require.NoError(t, err)
	assert.Empty(t, e.LensNotes)

	// removing a note that was never added is fine
	_, err = j.RemoveLensNote(day, journal.DomainWork)
	assert.NoError(t, err)
}

func TestValidateImprovement(t *testing.T) {
	tests := []struct {
		text   string
		wantOK bool
	}{
		{"", false},
		{"   ", false},
		{"Be better", false},        // too short
		{"meditate", false},         // too short
		{"Focus", false},            // vague word
		{"MINDFUL", false},          // vague word, any case
		{"After coffee, write 1 priority", true},
		{"Walk 10 min after lunch", true},
	}
	for _, tt := range tests {
		v := journal.ValidateImprovement(tt.text)
		assert.Equal(t, tt.wantOK, v.OK(), "text %q", tt.text)
		if !tt.wantOK {
			assert.NotEmpty(t, v.Hint, "text %q", tt.text)
		}
	}
}

func TestValidateImprovement_EmptyGetsDifferentHint(t *testing.T) {
	empty := journal.ValidateImprovement("")
	vague := journal.ValidateImprovement("try")
	assert.NotEqual(t, empty.Hint, vague.Hint)
}

func TestParseDomain(t *testing.T) {
	d, err := journal.ParseDomain("work")
	require.NoError(t, err)
	assert.Equal(t, journal.DomainWork, d)

	d, err = journal.ParseDomain("Mental/Emotional")
	require.NoError(t, err)
	assert.Equal(t, journal.DomainMental, d)

	d, err = journal.ParseDomain("Spiritual/Inner Life")
	require.NoError(t, err)
	assert.Equal(t, journal.DomainSpiritual, d)

	_, err = journal.ParseDomain("finance")
	assert.Error(t, err)
}
