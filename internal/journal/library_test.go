package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/store"
)

func TestLibraryAddOrTouch_DedupeByNormalizedText(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)

	first, err := lib.AddOrTouch("Walk 10 min after lunch", nil, journal.StatusNeedsTesting)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UseCount)

	// same text modulo case and whitespace touches, never duplicates
	second, err := lib.AddOrTouch("  walk 10 MIN after lunch ", []journal.Domain{journal.DomainHealth}, journal.StatusKept)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.UseCount)
	assert.Equal(t, journal.StatusKept, second.Status)
	assert.Equal(t, []journal.Domain{journal.DomainHealth}, second.Domains)

	// the casing of the first insert wins
	assert.Equal(t, "Walk 10 min after lunch", second.Text)

	items, err := s.Library()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestLibraryAddOrTouch_EmptyText(t *testing.T) {
	lib := journal.NewLibrary(store.NewMemory())

	_, err := lib.AddOrTouch("", nil, journal.StatusNeedsTesting)
	assert.ErrorIs(t, err, journal.ErrEmptyText)
	_, err = lib.AddOrTouch("   ", nil, journal.StatusNeedsTesting)
	assert.ErrorIs(t, err, journal.ErrEmptyText)
}

func TestLibraryAddOrTouch_DefaultStatus(t *testing.T) {
	lib := journal.NewLibrary(store.NewMemory())

	item, err := lib.AddOrTouch("After coffee, write 1 priority", nil, "")
	require.NoError(t, err)
	assert.Equal(t, journal.StatusNeedsTesting, item.Status)
}

func TestLibrarySetStatus_UnknownIDIsNoOp(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)

	item, err := lib.AddOrTouch("Stretch before bed", nil, journal.StatusNeedsTesting)
	require.NoError(t, err)

	require.NoError(t, lib.SetStatus("nope", journal.StatusKept))

	items, err := s.Library()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, journal.StatusNeedsTesting, items[0].Status)

	require.NoError(t, lib.SetStatus(item.ID, journal.StatusRejected))
	items, err = s.Library()
	require.NoError(t, err)
	assert.Equal(t, journal.StatusRejected, items[0].Status)
}

func TestLibraryRemove_Idempotent(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)

	item, err := lib.AddOrTouch("Phone out of bedroom", nil, journal.StatusNeedsTesting)
	require.NoError(t, err)

	require.NoError(t, lib.Remove(item.ID))
	require.NoError(t, lib.Remove(item.ID))

	items, err := s.Library()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLibraryListSortedByRecency(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)

	older := journal.LibraryItem{ID: "a", Text: "old", LastUsedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	newer := journal.LibraryItem{ID: "b", Text: "new", LastUsedAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	never := journal.LibraryItem{ID: "c", Text: "never used"}
	require.NoError(t, s.PutLibraryItem(older))
	require.NoError(t, s.PutLibraryItem(newer))
	require.NoError(t, s.PutLibraryItem(never))

	items, err := lib.ListSortedByRecency()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestLibraryUse_CopiesIntoEntryAndTouches(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)
	j := journal.New(s)

	item, err := lib.AddOrTouch("Walk 10 min after lunch", []journal.Domain{journal.DomainHealth}, journal.StatusNeedsTesting)
	require.NoError(t, err)

	e, err := lib.Use(j, item.ID, day)
	require.NoError(t, err)
	assert.Equal(t, "Walk 10 min after lunch", e.Improvement.Text)
	assert.Equal(t, []journal.Domain{journal.DomainHealth}, e.Improvement.Domains)

	items, err := s.Library()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].UseCount)

	// the entry holds a copy; mutating it later must not touch the item
	e.Improvement.Domains[0] = journal.DomainWork
	items, err = s.Library()
	require.NoError(t, err)
	assert.Equal(t, []journal.Domain{journal.DomainHealth}, items[0].Domains)
}

func TestLibraryUse_UnknownID(t *testing.T) {
	s := store.NewMemory()
	lib := journal.NewLibrary(s)
	j := journal.New(s)

	_, err := lib.Use(j, "missing", day)
	assert.Error(t, err)
}
