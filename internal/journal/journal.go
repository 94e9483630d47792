package journal

import (
	"time"

	"github.com/ramanasai/kaizen/internal/dates"
)

// Journal is the entry lifecycle manager. All reads and writes of day
// entries flow through it; it owns no state beyond the store handle.
type Journal struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Journal {
	return &Journal{store: store, now: time.Now}
}

// GetOrCreate returns the entry for day, creating and persisting the
// default one on first access. Repeated calls are idempotent: the id and
// createdAt of the first call survive.
func (j *Journal) GetOrCreate(day dates.DayID) (Entry, error) {
	if e, ok, err := j.store.Entry(day); err != nil {
		return Entry{}, err
	} else if ok {
		return e, nil
	}
	e := NewEntry(day, j.now())
	if err := j.store.PutEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Patch is a set of field edits. Nil fields are left untouched, so a
// Patch applies all-or-nothing: it mutates a copy and only one PutEntry
// commits the result.
type Patch struct {
	Facts  *string
	Worked *string
	Didnt  *string

	ImprovementText    *string
	ImprovementDomains *[]Domain
	ImprovementStatus  *Status

	DomainTags *[]Domain

	SleepQuality          *string
	MovementDone          *bool
	DeepWorkDone          *bool
	SpiritualPracticeDone *bool
	MentalEmotionalDone   *bool

	Completed *bool
}

// Update applies p to the day's entry, refreshes updatedAt and persists.
// The day's entry is created first if it does not exist yet.
func (j *Journal) Update(day dates.DayID, p Patch) (Entry, error) {
	e, err := j.GetOrCreate(day)
	if err != nil {
		return Entry{}, err
	}

	if p.Facts != nil {
		e.Facts = *p.Facts
	}
	if p.Worked != nil {
		e.Worked = *p.Worked
	}
	if p.Didnt != nil {
		e.Didnt = *p.Didnt
	}
	if p.ImprovementText != nil {
		e.Improvement.Text = *p.ImprovementText
	}
	if p.ImprovementDomains != nil {
		e.Improvement.Domains = append([]Domain(nil), (*p.ImprovementDomains)...)
	}
	if p.ImprovementStatus != nil {
		e.Improvement.Status = *p.ImprovementStatus
	}
	if p.DomainTags != nil {
		e.DomainTags = append([]Domain(nil), (*p.DomainTags)...)
	}
	if p.SleepQuality != nil {
		e.QuickSignal.SleepQuality = *p.SleepQuality
	}
	if p.MovementDone != nil {
		e.QuickSignal.MovementDone = *p.MovementDone
	}
	if p.DeepWorkDone != nil {
		e.QuickSignal.DeepWorkDone = *p.DeepWorkDone
	}
	if p.SpiritualPracticeDone != nil {
		e.QuickSignal.SpiritualPracticeDone = *p.SpiritualPracticeDone
	}
	if p.MentalEmotionalDone != nil {
		e.QuickSignal.MentalEmotionalDone = *p.MentalEmotionalDone
	}
	if p.Completed != nil {
		e.Completed = *p.Completed
	}

	e.UpdatedAt = j.now()
	if err := j.store.PutEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// SetLensNote adds or overwrites the note for one domain lens.
func (j *Journal) SetLensNote(day dates.DayID, d Domain, text string) (Entry, error) {
	e, err := j.GetOrCreate(day)
	if err != nil {
		return Entry{}, err
	}
	if e.LensNotes == nil {
		e.LensNotes = map[Domain]string{}
	}
	e.LensNotes[d] = text
	e.UpdatedAt = j.now()
	if err := j.store.PutEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// RemoveLensNote drops a domain's note. Removing an absent note is a no-op
// that still persists the refreshed entry.
func (j *Journal) RemoveLensNote(day dates.DayID, d Domain) (Entry, error) {
	e, err := j.GetOrCreate(day)
	if err != nil {
		return Entry{}, err
	}
	delete(e.LensNotes, d)
	e.UpdatedAt = j.now()
	if err := j.store.PutEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}
