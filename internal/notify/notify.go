package notify

import (
	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("Kaizen", message, "")
}

// FormatDailyPrompt builds the evening reminder. written reports whether
// today's entry already has any narrative text.
func FormatDailyPrompt(written bool) (string, string) {
	title := "Daily kaizen reminder"
	if written {
		return title, "Today's entry has notes. Close it out with one small improvement?"
	}
	return title, "No entry yet today. Two minutes: facts, what worked, one small improvement."
}
