package journal

import (
	"fmt"
	"strings"
)

// Domain is one of the four fixed life areas used to tag entries and
// improvements. The constants are the only valid values; pattern rules and
// lens prompts reference them directly instead of repeating string literals.
type Domain string

const (
	DomainHealth    Domain = "Health/Fitness"
	DomainWork      Domain = "Work"
	DomainMental    Domain = "Mental/Emotional Health"
	DomainSpiritual Domain = "Spiritual/Inner Life"
)

// Domains lists all domains in display order.
func Domains() []Domain {
	return []Domain{DomainHealth, DomainWork, DomainMental, DomainSpiritual}
}

// Short returns the compact label used in chips and meta lines.
func (d Domain) Short() string {
	switch d {
	case DomainHealth:
		return "Health"
	case DomainWork:
		return "Work"
	case DomainMental:
		return "Mental/Emotional"
	case DomainSpiritual:
		return "Spiritual"
	default:
		return string(d)
	}
}

// LensPrompt returns the reflective prompt shown when adding a lens note.
func (d Domain) LensPrompt() string {
	switch d {
	case DomainMental:
		return "Behavioral: What did you DO when stress showed up? Any pause/boundary/regulating action?"
	case DomainSpiritual:
		return "Operational: What practice did you do (if any)? How long/when? Any intentional pause/reflection?"
	default:
		return "Optional: Any domain-specific notes (keep it concrete)."
	}
}

// ParseDomain accepts a full key or short label, case-insensitively.
func ParseDomain(s string) (Domain, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Domains() {
		if in == strings.ToLower(string(d)) || in == strings.ToLower(d.Short()) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q (want one of: health, work, mental/emotional, spiritual)", s)
}

// ParseDomains parses a comma separated list of domain names.
func ParseDomains(csv string) ([]Domain, error) {
	var out []Domain
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := ParseDomain(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// JoinShort renders domains as "Health • Work" style meta text.
func JoinShort(ds []Domain) string {
	if len(ds) == 0 {
		return "No lenses"
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.Short()
	}
	return strings.Join(parts, " • ")
}
