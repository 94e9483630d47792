package journal

import (
	"time"

	"github.com/ramanasai/kaizen/internal/dates"
)

// LibraryItem is a reusable improvement statement shared across days.
// Text is stored with its original casing; deduplication compares the
// trimmed, case-folded form.
type LibraryItem struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Domains     []Domain  `json:"domains"`
	Status      Status    `json:"status"`
	FirstUsedAt time.Time `json:"firstUsedAt"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
	UseCount    int       `json:"useCount"`
}

// Store persists the two collections as whole documents: implementations
// may rewrite a full collection per mutation. A corrupt or missing stored
// value reads as an empty collection; write failures must be returned,
// never swallowed.
//
// Implementations: store.SQLite (production), store.Memory (tests).
type Store interface {
	// Entries returns every entry keyed by day id.
	Entries() (map[dates.DayID]Entry, error)

	// Entry returns one entry, with ok=false when the day has none.
	Entry(day dates.DayID) (Entry, bool, error)

	// PutEntry upserts a single entry under its own date.
	PutEntry(e Entry) error

	// ReplaceEntries swaps the whole entries collection.
	ReplaceEntries(all map[dates.DayID]Entry) error

	// Library returns all items in stored order.
	Library() ([]LibraryItem, error)

	// PutLibraryItem upserts by id, appending new items at the end.
	PutLibraryItem(item LibraryItem) error

	// DeleteLibraryItem removes by id. Unknown ids are a no-op.
	DeleteLibraryItem(id string) error

	// ReplaceLibrary swaps the whole library collection.
	ReplaceLibrary(items []LibraryItem) error

	// Wipe drops both collections.
	Wipe() error
}
