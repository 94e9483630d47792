package store

import (
	"sync"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

// Memory is an in-memory Store for tests and dev.
type Memory struct {
	mu      sync.RWMutex
	entries map[dates.DayID]journal.Entry
	library []journal.LibraryItem
}

func NewMemory() *Memory {
	return &Memory{entries: map[dates.DayID]journal.Entry{}}
}

func (m *Memory) Entries() (map[dates.DayID]journal.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[dates.DayID]journal.Entry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Entry(day dates.DayID) (journal.Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[day]
	return e, ok, nil
}

func (m *Memory) PutEntry(e journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.Date] = e
	return nil
}

func (m *Memory) ReplaceEntries(all map[dates.DayID]journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[dates.DayID]journal.Entry{}
	for k, v := range all {
		m.entries[k] = v
	}
	return nil
}

func (m *Memory) Library() ([]journal.LibraryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]journal.LibraryItem{}, m.library...), nil
}

func (m *Memory) PutLibraryItem(item journal.LibraryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.library {
		if m.library[i].ID == item.ID {
			m.library[i] = item
			return nil
		}
	}
	m.library = append(m.library, item)
	return nil
}

func (m *Memory) DeleteLibraryItem(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.library[:0]
	for _, item := range m.library {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.library = kept
	return nil
}

func (m *Memory) ReplaceLibrary(items []journal.LibraryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.library = append([]journal.LibraryItem{}, items...)
	return nil
}

func (m *Memory) Wipe() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[dates.DayID]journal.Entry{}
	m.library = nil
	return nil
}

var _ journal.Store = (*Memory)(nil)
