// Package store provides journal.Store implementations.
package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
)

//go:embed schema.sql
var schemaFS embed.FS

const (
	colEntries = "entries"
	colLibrary = "library"
)

// SQLite keeps both collections as whole JSON documents in a single
// key-value table. Every mutation reads the full collection, mutates it
// in memory and writes it back, matching the single-user last-writer-wins
// model the journal assumes.
type SQLite struct {
	db *sql.DB
}

// Open opens (and migrates) the database at path. ":memory:" is accepted
// for tests.
func Open(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
			path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty db
		db.SetMaxOpenConns(1)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// readDoc loads one collection document. A missing row or a document that
// no longer parses reads as empty: the journal would rather start fresh
// than refuse to open.
func (s *SQLite) readDoc(name string, v any) error {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return nil // corrupt doc degrades to the empty collection
	}
	return nil
}

func (s *SQLite) writeDoc(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections(name, doc, updated_at) VALUES(?,?,?)
		ON CONFLICT(name) DO UPDATE SET doc=excluded.doc, updated_at=excluded.updated_at
	`, name, string(doc), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *SQLite) Entries() (map[dates.DayID]journal.Entry, error) {
	all := map[dates.DayID]journal.Entry{}
	if err := s.readDoc(colEntries, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *SQLite) Entry(day dates.DayID) (journal.Entry, bool, error) {
	all, err := s.Entries()
	if err != nil {
		return journal.Entry{}, false, err
	}
	e, ok := all[day]
	return e, ok, nil
}

func (s *SQLite) PutEntry(e journal.Entry) error {
	all, err := s.Entries()
	if err != nil {
		return err
	}
	all[e.Date] = e
	return s.writeDoc(colEntries, all)
}

func (s *SQLite) ReplaceEntries(all map[dates.DayID]journal.Entry) error {
	if all == nil {
		all = map[dates.DayID]journal.Entry{}
	}
	return s.writeDoc(colEntries, all)
}

func (s *SQLite) Library() ([]journal.LibraryItem, error) {
	items := []journal.LibraryItem{}
	if err := s.readDoc(colLibrary, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQLite) PutLibraryItem(item journal.LibraryItem) error {
	items, err := s.Library()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return s.writeDoc(colLibrary, items)
}

func (s *SQLite) DeleteLibraryItem(id string) error {
	items, err := s.Library()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.writeDoc(colLibrary, kept)
}

func (s *SQLite) ReplaceLibrary(items []journal.LibraryItem) error {
	if items == nil {
		items = []journal.LibraryItem{}
	}
	return s.writeDoc(colLibrary, items)
}

func (s *SQLite) Wipe() error {
	if _, err := s.db.Exec(`DELETE FROM collections`); err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	return nil
}

var _ journal.Store = (*SQLite)(nil)
