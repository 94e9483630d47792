package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramanasai/kaizen/internal/dates"
)

// Status classifies an improvement statement over its test lifecycle.
type Status string

const (
	StatusNeedsTesting Status = "needsTesting"
	StatusKept         Status = "kept"
	StatusRejected     Status = "rejected"
)

// ParseStatus accepts a status name case-insensitively.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusNeedsTesting, StatusKept, StatusRejected} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Improvement is the single behavioral change chosen for a day.
// Every entry carries exactly one, even when its text is still empty.
type Improvement struct {
	ID         string      `json:"id"`
	Text       string      `json:"text"`
	Domains    []Domain    `json:"domains"`
	Status     Status      `json:"status"`
	OriginDate dates.DayID `json:"originDate"`
}

// QuickSignals are the fixed yes/no end-of-day checkboxes plus sleep quality.
// SleepQuality is "" when unset, otherwise "1".."5".
type QuickSignals struct {
	SleepQuality          string `json:"sleepQuality"`
	MovementDone          bool   `json:"movementDone"`
	DeepWorkDone          bool   `json:"deepWorkDone"`
	SpiritualPracticeDone bool   `json:"spiritualPracticeDone"`
	MentalEmotionalDone   bool   `json:"mentalEmotionalDone"`
}

// Entry is one day's journal record, keyed by its Date.
type Entry struct {
	ID          string            `json:"id"`
	Date        dates.DayID       `json:"date"`
	DomainTags  []Domain          `json:"domainTags"`
	Facts       string            `json:"facts"`
	Worked      string            `json:"worked"`
	Didnt       string            `json:"didnt"`
	Improvement Improvement       `json:"improvement"`
	LensNotes   map[Domain]string `json:"lensNotes"`
	QuickSignal QuickSignals      `json:"quickSignals"`
	Completed   bool              `json:"completed"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewEntry builds the default entry for a day: empty narrative, no tags,
// a fresh improvement slot, nothing completed.
func NewEntry(day dates.DayID, now time.Time) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Date:       day,
		DomainTags: []Domain{},
		Improvement: Improvement{
			ID:         uuid.NewString(),
			Text:       "",
			Domains:    []Domain{},
			Status:     StatusNeedsTesting,
			OriginDate: day,
		},
		LensNotes: map[Domain]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
