// Package review aggregates a week of entries into theme word counts and
// rule-based pattern hints.
package review

import "strings"

// Common and low-signal words dropped before counting themes.
var stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "were": true, "was": true, "are": true, "but": true,
	"for": true, "not": true, "you": true, "your": true, "into": true,
	"then": true, "they": true, "them": true, "have": true, "had": true,
	"has": true, "just": true, "like": true, "about": true, "what": true,
	"when": true, "where": true, "why": true, "how": true, "did": true,
	"didnt": true, "didn’t": true, "work": true, "worked": true,
	"didn": true, "dont": true, "don’t": true, "very": true, "much": true,
	"more": true, "less": true, "today": true, "yesterday": true,
	"tomorrow": true, "also": true, "because": true, "over": true,
	"under": true, "after": true, "before": true, "during": true,
	"while": true, "again": true, "really": true, "even": true, "still": true,
}

const minTokenLen = 4

// Tokenize lowercases text, normalizes apostrophe variants, strips
// everything outside [a-z0-9 -] and returns the remaining words of at
// least four characters that are not stopwords.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	lowered = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return ' '
		}
	}, strings.ReplaceAll(lowered, "’", "'"))

	var tokens []string
	for _, w := range strings.Fields(lowered) {
		if len(w) >= minTokenLen && !stopwords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
