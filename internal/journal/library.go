package journal

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramanasai/kaizen/internal/dates"
)

// ErrEmptyText is returned when a blank statement is offered to the library.
var ErrEmptyText = errors.New("improvement text is empty")

// Library manages the reusable improvement statements. At most one item
// exists per normalized (trimmed, case-folded) text.
type Library struct {
	store Store
	now   func() time.Time
}

func NewLibrary(store Store) *Library {
	return &Library{store: store, now: time.Now}
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AddOrTouch inserts text as a new item, or, when an item with the same
// normalized text exists, touches it: lastUsedAt=now, domains and status
// overwritten, useCount incremented. The stored text keeps the casing of
// its first insert.
func (l *Library) AddOrTouch(text string, domains []Domain, status Status) (LibraryItem, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return LibraryItem{}, ErrEmptyText
	}
	if status == "" {
		status = StatusNeedsTesting
	}

	items, err := l.store.Library()
	if err != nil {
		return LibraryItem{}, err
	}

	now := l.now()
	norm := normalizeText(trimmed)
	for _, item := range items {
		if normalizeText(item.Text) != norm {
			continue
		}
		item.LastUsedAt = now
		item.Domains = append([]Domain(nil), domains...)
		item.Status = status
		item.UseCount++
		if err := l.store.PutLibraryItem(item); err != nil {
			return LibraryItem{}, err
		}
		return item, nil
	}

	item := LibraryItem{
		ID:          uuid.NewString(),
		Text:        trimmed,
		Domains:     append([]Domain(nil), domains...),
		Status:      status,
		FirstUsedAt: now,
		LastUsedAt:  now,
		UseCount:    1,
	}
	if err := l.store.PutLibraryItem(item); err != nil {
		return LibraryItem{}, err
	}
	return item, nil
}

// SetStatus updates one item's status. An unknown id is a deliberate no-op.
func (l *Library) SetStatus(id string, status Status) error {
	items, err := l.store.Library()
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		item.Status = status
		return l.store.PutLibraryItem(item)
	}
	return nil
}

// Remove deletes by id; removing an absent id is not an error.
func (l *Library) Remove(id string) error {
	return l.store.DeleteLibraryItem(id)
}

// ListSortedByRecency returns items newest-used first. Items with a zero
// lastUsedAt sort last.
func (l *Library) ListSortedByRecency() ([]LibraryItem, error) {
	items, err := l.store.Library()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, k int) bool {
		return items[i].LastUsedAt.After(items[k].LastUsedAt)
	})
	return items, nil
}

// Use copies an item's text and domains by value into the day's single
// improvement slot and touches the item's usage stats. The library keeps
// ownership of the item; the entry gets a copy.
func (l *Library) Use(j *Journal, id string, day dates.DayID) (Entry, error) {
	items, err := l.store.Library()
	if err != nil {
		return Entry{}, err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		text := item.Text
		domains := append([]Domain(nil), item.Domains...)
		e, err := j.Update(day, Patch{
			ImprovementText:    &text,
			ImprovementDomains: &domains,
		})
		if err != nil {
			return Entry{}, err
		}
		item.LastUsedAt = l.now()
		item.UseCount++
		if err := l.store.PutLibraryItem(item); err != nil {
			return Entry{}, err
		}
		return e, nil
	}
	return Entry{}, errors.New("library item not found")
}
