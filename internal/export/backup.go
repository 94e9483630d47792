package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

// SchemaVersion tags every backup and the persisted collections.
const SchemaVersion = "v1"

// ErrInvalidBackup is returned when a backup payload is missing one of
// its required collections.
var ErrInvalidBackup = errors.New("invalid backup: missing entries or library")

// Snapshot bundles both collections with a version tag and export time.
// It is the on-disk backup format, JSON-encoded and human-inspectable.
type Snapshot struct {
	Version    string                        `json:"version"`
	ExportedAt time.Time                     `json:"exportedAt"`
	Entries    map[dates.DayID]journal.Entry `json:"entries"`
	Library    []journal.LibraryItem         `json:"library"`
}

// TakeSnapshot captures the entire store verbatim.
func TakeSnapshot(s journal.Store) (Snapshot, error) {
	entries, err := s.Entries()
	if err != nil {
		return Snapshot{}, err
	}
	library, err := s.Library()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Version:    SchemaVersion,
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
		Library:    library,
	}, nil
}

// Encode renders the snapshot as indented JSON.
func (sn Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(sn, "", "  ")
}

// wire mirrors Snapshot with raw collections so absent keys can be told
// apart from empty ones.
type wire struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Entries    json.RawMessage `json:"entries"`
	Library    json.RawMessage `json:"library"`
}

// Restore parses data and atomically replaces both collections wholesale.
// It never merges. On ErrInvalidBackup or a parse failure the store is
// left untouched.
func Restore(s journal.Store, data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	if w.Entries == nil || w.Library == nil {
		return ErrInvalidBackup
	}

	var entries map[dates.DayID]journal.Entry
	if err := json.Unmarshal(w.Entries, &entries); err != nil {
		return fmt.Errorf("parse backup entries: %w", err)
	}
	var library []journal.LibraryItem
	if err := json.Unmarshal(w.Library, &library); err != nil {
		return fmt.Errorf("parse backup library: %w", err)
	}

	if err := s.ReplaceEntries(entries); err != nil {
		return err
	}
	return s.ReplaceLibrary(library)
}
