package journal

import "strings"

// Words that, alone, say nothing observable about the improvement.
var vagueWords = map[string]bool{
	"be": true, "try": true, "improve": true, "better": true,
	"more": true, "less": true, "focus": true, "calm": true,
	"stress": true, "mindful": true, "spiritual": true,
}

// Validation is an advisory classification of an improvement statement.
// It never blocks a save; an empty Hint means the text looks observable.
type Validation struct {
	Hint string
}

func (v Validation) OK() bool { return v.Hint == "" }

// ValidateImprovement nudges vague improvement statements toward
// observable actions ("after X, do Y").
func ValidateImprovement(text string) Validation {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Validation{Hint: "Tip: Make it an observable action (after X, do Y)."}
	}
	if len(trimmed) < 12 || vagueWords[strings.ToLower(trimmed)] {
		return Validation{Hint: "Make it observable: what exactly will you do, and when?"}
	}
	return Validation{}
}

// MakeSmallerSuggestions lists fixed prompts for shrinking an improvement
// into something that fits in a day.
func MakeSmallerSuggestions() []string {
	return []string{
		"Add a trigger: “After coffee, …”",
		"Reduce scope: 10 min → 2 min",
		"Define done: “Done when X is written / completed.”",
		"Make it a single behavior: “Before opening email, write 1 priority.”",
	}
}
